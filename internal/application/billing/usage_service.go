package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// UsageService handles metered-usage business operations
type UsageService struct {
	store billing.Store
}

// NewUsageService creates a new UsageService
func NewUsageService(store billing.Store) *UsageService {
	return &UsageService{store: store}
}

// Record logs gigabytes consumed by a customer on a given day. The
// customer must exist.
func (s *UsageService) Record(ctx context.Context, req RecordUsageRequest) (*billing.UsageRecord, error) {
	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Usage date must be formatted YYYY-MM-DD")
	}

	if err := s.ensureCustomerExists(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	record, err := billing.NewUsageRecord(req.CustomerID, req.Gb, date)
	if err != nil {
		return nil, err
	}

	records, err := s.store.Usage(ctx)
	if err != nil {
		return nil, err
	}
	records = append(records, *record)
	if err := s.store.ReplaceUsage(ctx, records); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns usage records, optionally narrowed to a customer and a
// date range. Range bounds are inclusive; a zero bound is open ended.
func (s *UsageService) List(ctx context.Context, filter UsageFilter) ([]billing.UsageRecord, error) {
	records, err := s.store.Usage(ctx)
	if err != nil {
		return nil, err
	}

	start, end, err := parsePeriod(filter.Start, filter.End)
	if err != nil {
		return nil, err
	}

	out := make([]billing.UsageRecord, 0, len(records))
	for i := range records {
		if filter.CustomerID != nil && records[i].CustomerID != *filter.CustomerID {
			continue
		}
		if !records[i].InPeriod(start, end) {
			continue
		}
		out = append(out, records[i])
	}
	return out, nil
}

// Delete removes a single usage record
func (s *UsageService) Delete(ctx context.Context, id uuid.UUID) error {
	records, err := s.store.Usage(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	found := false
	for i := range records {
		if records[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, records[i])
	}
	if !found {
		return shared.ErrNotFound
	}
	return s.store.ReplaceUsage(ctx, kept)
}

// TotalUsage sums the gigabytes a customer consumed inside the period,
// bounds inclusive
func (s *UsageService) TotalUsage(ctx context.Context, customerID uuid.UUID, start, end valueobject.Date) (decimal.Decimal, error) {
	records, err := s.store.Usage(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range records {
		if records[i].CustomerID != customerID {
			continue
		}
		if records[i].InPeriod(start, end) {
			total = total.Add(records[i].Gb)
		}
	}
	return total, nil
}

func (s *UsageService) ensureCustomerExists(ctx context.Context, customerID uuid.UUID) error {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return err
	}
	for i := range customers {
		if customers[i].ID == customerID {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_REFERENCE", "Referenced customer does not exist")
}

func parsePeriod(start, end string) (valueobject.Date, valueobject.Date, error) {
	var from, to valueobject.Date
	var err error
	if start != "" {
		if from, err = valueobject.ParseDate(start); err != nil {
			return from, to, shared.NewDomainError("INVALID_INPUT", "Start date must be formatted YYYY-MM-DD")
		}
	}
	if end != "" {
		if to, err = valueobject.ParseDate(end); err != nil {
			return from, to, shared.NewDomainError("INVALID_INPUT", "End date must be formatted YYYY-MM-DD")
		}
	}
	return from, to, nil
}
