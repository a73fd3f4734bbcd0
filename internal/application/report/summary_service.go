package report

import (
	"context"

	"github.com/isp/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// Summary is the dashboard roll-up of the whole store
type Summary struct {
	Revenue         decimal.Decimal `json:"revenue"`
	OutstandingDue  decimal.Decimal `json:"outstandingDue"`
	UnpaidCount     int             `json:"unpaidCount"`
	ActiveCustomers int             `json:"activeCustomers"`
	CustomerCount   int             `json:"customerCount"`
	PlanCount       int             `json:"planCount"`
	InvoiceCount    int             `json:"invoiceCount"`
	TotalUsageGb    decimal.Decimal `json:"totalUsageGb"`
}

// SummaryService computes dashboard aggregates
type SummaryService struct {
	store billing.Store
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(store billing.Store) *SummaryService {
	return &SummaryService{store: store}
}

// Summary aggregates revenue and headcounts in one pass over each
// collection. Revenue counts paid invoices only; outstanding due is the
// sum of unpaid totals.
func (s *SummaryService) Summary(ctx context.Context) (*Summary, error) {
	plans, err := s.store.Plans(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.store.Usage(ctx)
	if err != nil {
		return nil, err
	}
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Revenue:        decimal.Zero,
		OutstandingDue: decimal.Zero,
		TotalUsageGb:   decimal.Zero,
		PlanCount:      len(plans),
		CustomerCount:  len(customers),
		InvoiceCount:   len(invoices),
	}

	for i := range customers {
		if customers[i].IsActive() {
			summary.ActiveCustomers++
		}
	}
	for i := range records {
		summary.TotalUsageGb = summary.TotalUsageGb.Add(records[i].Gb)
	}
	for i := range invoices {
		if invoices[i].IsPaid() {
			summary.Revenue = summary.Revenue.Add(invoices[i].Total)
		} else {
			summary.OutstandingDue = summary.OutstandingDue.Add(invoices[i].Total)
			summary.UnpaidCount++
		}
	}
	return summary, nil
}
