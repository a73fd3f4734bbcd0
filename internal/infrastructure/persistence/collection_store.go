package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/isp/backend/internal/domain/billing"
)

// CollectionStore adapts any KV backend to the billing.Store contract.
// Each collection is stored as one JSON document under its key, so a
// replace is a single Set and the backend's own write atomicity carries
// over to the collection.
type CollectionStore struct {
	kv KV
}

// NewCollectionStore creates a CollectionStore over the given backend
func NewCollectionStore(kv KV) *CollectionStore {
	return &CollectionStore{kv: kv}
}

// Plans implements billing.Store
func (s *CollectionStore) Plans(ctx context.Context) ([]billing.Plan, error) {
	plans := []billing.Plan{}
	if err := s.read(ctx, KeyPlans, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ReplacePlans implements billing.Store
func (s *CollectionStore) ReplacePlans(ctx context.Context, plans []billing.Plan) error {
	return s.write(ctx, KeyPlans, plans)
}

// Customers implements billing.Store
func (s *CollectionStore) Customers(ctx context.Context) ([]billing.Customer, error) {
	customers := []billing.Customer{}
	if err := s.read(ctx, KeyCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// ReplaceCustomers implements billing.Store
func (s *CollectionStore) ReplaceCustomers(ctx context.Context, customers []billing.Customer) error {
	return s.write(ctx, KeyCustomers, customers)
}

// Usage implements billing.Store
func (s *CollectionStore) Usage(ctx context.Context) ([]billing.UsageRecord, error) {
	records := []billing.UsageRecord{}
	if err := s.read(ctx, KeyUsage, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// ReplaceUsage implements billing.Store
func (s *CollectionStore) ReplaceUsage(ctx context.Context, records []billing.UsageRecord) error {
	return s.write(ctx, KeyUsage, records)
}

// Invoices implements billing.Store
func (s *CollectionStore) Invoices(ctx context.Context) ([]billing.Invoice, error) {
	invoices := []billing.Invoice{}
	if err := s.read(ctx, KeyInvoices, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ReplaceInvoices implements billing.Store
func (s *CollectionStore) ReplaceInvoices(ctx context.Context, invoices []billing.Invoice) error {
	return s.write(ctx, KeyInvoices, invoices)
}

// Profile implements billing.Store. A missing profile reads as the zero
// value so first boot can detect an empty installation.
func (s *CollectionStore) Profile(ctx context.Context) (billing.BusinessProfile, error) {
	var profile billing.BusinessProfile
	if err := s.read(ctx, KeyProfile, &profile); err != nil {
		return billing.BusinessProfile{}, err
	}
	return profile, nil
}

// ReplaceProfile implements billing.Store
func (s *CollectionStore) ReplaceProfile(ctx context.Context, profile billing.BusinessProfile) error {
	return s.write(ctx, KeyProfile, profile)
}

// Reset implements billing.Store
func (s *CollectionStore) Reset(ctx context.Context) error {
	return s.kv.Delete(ctx, AllKeys...)
}

// Close releases the underlying backend
func (s *CollectionStore) Close() error {
	return s.kv.Close()
}

func (s *CollectionStore) read(ctx context.Context, key string, out any) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *CollectionStore) write(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
