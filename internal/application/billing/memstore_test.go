package billing

import (
	"context"

	"github.com/isp/backend/internal/domain/billing"
)

// memStore is an in-memory billing.Store used by the service tests
type memStore struct {
	plans     []billing.Plan
	customers []billing.Customer
	usage     []billing.UsageRecord
	invoices  []billing.Invoice
	profile   billing.BusinessProfile
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) Plans(ctx context.Context) ([]billing.Plan, error) {
	return append([]billing.Plan(nil), m.plans...), nil
}

func (m *memStore) ReplacePlans(ctx context.Context, plans []billing.Plan) error {
	m.plans = append([]billing.Plan(nil), plans...)
	return nil
}

func (m *memStore) Customers(ctx context.Context) ([]billing.Customer, error) {
	return append([]billing.Customer(nil), m.customers...), nil
}

func (m *memStore) ReplaceCustomers(ctx context.Context, customers []billing.Customer) error {
	m.customers = append([]billing.Customer(nil), customers...)
	return nil
}

func (m *memStore) Usage(ctx context.Context) ([]billing.UsageRecord, error) {
	return append([]billing.UsageRecord(nil), m.usage...), nil
}

func (m *memStore) ReplaceUsage(ctx context.Context, records []billing.UsageRecord) error {
	m.usage = append([]billing.UsageRecord(nil), records...)
	return nil
}

func (m *memStore) Invoices(ctx context.Context) ([]billing.Invoice, error) {
	return append([]billing.Invoice(nil), m.invoices...), nil
}

func (m *memStore) ReplaceInvoices(ctx context.Context, invoices []billing.Invoice) error {
	m.invoices = append([]billing.Invoice(nil), invoices...)
	return nil
}

func (m *memStore) Profile(ctx context.Context) (billing.BusinessProfile, error) {
	return m.profile, nil
}

func (m *memStore) ReplaceProfile(ctx context.Context, profile billing.BusinessProfile) error {
	m.profile = profile
	return nil
}

func (m *memStore) Reset(ctx context.Context) error {
	*m = memStore{}
	return nil
}
