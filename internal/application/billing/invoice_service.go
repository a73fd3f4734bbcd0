package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
)

// InvoiceService handles invoice pricing and lifecycle operations
type InvoiceService struct {
	store billing.Store
	usage *UsageService
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(store billing.Store, usage *UsageService) *InvoiceService {
	return &InvoiceService{store: store, usage: usage}
}

// List returns all invoices
func (s *InvoiceService) List(ctx context.Context) ([]billing.Invoice, error) {
	return s.store.Invoices(ctx)
}

// Get returns a single invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			return &invoices[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Compute prices a billing period for a customer without persisting
// anything. The breakdown uses the customer's current plan and the
// profile tax rate.
func (s *InvoiceService) Compute(ctx context.Context, req ComputeInvoiceRequest) (*InvoicePreview, error) {
	return s.price(ctx, req.CustomerID, req.StartDate, req.EndDate)
}

// Issue prices a billing period and persists the result as an unpaid
// invoice. The invoice number is derived from the current year and the
// size of the invoice collection.
func (s *InvoiceService) Issue(ctx context.Context, req IssueInvoiceRequest) (*billing.Invoice, error) {
	preview, err := s.price(ctx, req.CustomerID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	var plan *billing.Plan
	if preview.PlanID != nil {
		if plan, err = s.findPlan(ctx, *preview.PlanID); err != nil {
			return nil, err
		}
	}

	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	number := billing.InvoiceNumber(valueobject.Today().Year(), len(invoices)+1)
	invoice, err := billing.NewInvoice(number, req.CustomerID, plan, start, end, req.Notes, preview.Breakdown)
	if err != nil {
		return nil, err
	}

	invoices = append(invoices, *invoice)
	if err := s.store.ReplaceInvoices(ctx, invoices); err != nil {
		return nil, err
	}
	return invoice, nil
}

// MarkPaid transitions an unpaid invoice to paid
func (s *InvoiceService) MarkPaid(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range invoices {
		if invoices[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, shared.ErrNotFound
	}

	if err := invoices[idx].MarkPaid(); err != nil {
		return nil, err
	}
	if err := s.store.ReplaceInvoices(ctx, invoices); err != nil {
		return nil, err
	}
	return &invoices[idx], nil
}

// Delete removes an invoice. Numbers of remaining invoices are never
// rewritten, so the next issued number can collide with one already on
// the books.
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return err
	}

	kept := invoices[:0]
	found := false
	for i := range invoices {
		if invoices[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, invoices[i])
	}
	if !found {
		return shared.ErrNotFound
	}
	return s.store.ReplaceInvoices(ctx, kept)
}

func (s *InvoiceService) price(ctx context.Context, customerID uuid.UUID, startDate, endDate string) (*InvoicePreview, error) {
	start, end, err := parsePeriod(startDate, endDate)
	if err != nil {
		return nil, err
	}
	if start.IsZero() || end.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Billing period requires both start and end dates")
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Billing period end cannot precede start")
	}

	customer, err := s.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	var plan *billing.Plan
	if customer.PlanID != nil {
		// A dangling plan reference prices like no plan at all.
		plan, _ = s.findPlan(ctx, *customer.PlanID)
	}

	usedGb, err := s.usage.TotalUsage(ctx, customerID, start, end)
	if err != nil {
		return nil, err
	}

	profile, err := s.store.Profile(ctx)
	if err != nil {
		return nil, err
	}

	preview := &InvoicePreview{
		CustomerID: customerID,
		StartDate:  start.String(),
		EndDate:    end.String(),
		Breakdown:  billing.Compute(plan, usedGb, profile.TaxRate),
	}
	if plan != nil {
		preview.PlanID = &plan.ID
		preview.PlanName = plan.Name
	}
	return preview, nil
}

func (s *InvoiceService) findCustomer(ctx context.Context, id uuid.UUID) (*billing.Customer, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	// Pricing takes the customer id as a reference in the request body,
	// not a resource path, so a miss is a bad reference rather than a
	// missing resource.
	return nil, shared.NewDomainError("INVALID_REFERENCE", "Referenced customer does not exist")
}

func (s *InvoiceService) findPlan(ctx context.Context, id uuid.UUID) (*billing.Plan, error) {
	plans, err := s.store.Plans(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].ID == id {
			return &plans[i], nil
		}
	}
	return nil, shared.ErrNotFound
}
