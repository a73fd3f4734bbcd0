package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
)

// CustomerService handles subscriber-related business operations
type CustomerService struct {
	store billing.Store
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(store billing.Store) *CustomerService {
	return &CustomerService{store: store}
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]billing.Customer, error) {
	return s.store.Customers(ctx)
}

// Get returns a single customer by ID
func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (*billing.Customer, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Create registers a new customer. A referenced plan must exist.
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*billing.Customer, error) {
	customer, err := billing.NewCustomer(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := customer.Update(req.Name, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.MAC != "" || req.IP != "" {
		customer.SetNetwork(req.MAC, req.IP)
	}
	if req.Status != "" {
		if err := customer.SetStatus(billing.CustomerStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.StartedOn != "" {
		startedOn, err := valueobject.ParseDate(req.StartedOn)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Start date must be formatted YYYY-MM-DD")
		}
		customer.StartedOn = startedOn
	}
	if req.PlanID != nil {
		if err := s.ensurePlanExists(ctx, *req.PlanID); err != nil {
			return nil, err
		}
		if err := customer.AssignPlan(*req.PlanID); err != nil {
			return nil, err
		}
	}

	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	customers = append(customers, *customer)
	if err := s.store.ReplaceCustomers(ctx, customers); err != nil {
		return nil, err
	}
	return customer, nil
}

// Update modifies an existing customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*billing.Customer, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range customers {
		if customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, shared.ErrNotFound
	}
	customer := &customers[idx]

	name := customer.Name
	if req.Name != nil {
		name = *req.Name
	}
	phone := customer.Phone
	if req.Phone != nil {
		phone = *req.Phone
	}
	email := customer.Email
	if req.Email != nil {
		email = *req.Email
	}
	if err := customer.Update(name, phone, email); err != nil {
		return nil, err
	}

	mac := customer.MAC
	if req.MAC != nil {
		mac = *req.MAC
	}
	ip := customer.IP
	if req.IP != nil {
		ip = *req.IP
	}
	if mac != customer.MAC || ip != customer.IP {
		customer.SetNetwork(mac, ip)
	}

	if req.Status != nil {
		if err := customer.SetStatus(billing.CustomerStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	switch {
	case req.ClearPlan:
		customer.ClearPlan()
	case req.PlanID != nil:
		if err := s.ensurePlanExists(ctx, *req.PlanID); err != nil {
			return nil, err
		}
		if err := customer.AssignPlan(*req.PlanID); err != nil {
			return nil, err
		}
	}

	if err := s.store.ReplaceCustomers(ctx, customers); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete removes a customer together with their usage records and
// invoices. Deletion is a hard cascade, matching the export format
// where orphaned records have no meaning.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return err
	}

	kept := customers[:0]
	found := false
	for i := range customers {
		if customers[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, customers[i])
	}
	if !found {
		return shared.ErrNotFound
	}

	records, err := s.store.Usage(ctx)
	if err != nil {
		return err
	}
	keptRecords := records[:0]
	for i := range records {
		if records[i].CustomerID != id {
			keptRecords = append(keptRecords, records[i])
		}
	}

	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return err
	}
	keptInvoices := invoices[:0]
	for i := range invoices {
		if invoices[i].CustomerID != id {
			keptInvoices = append(keptInvoices, invoices[i])
		}
	}

	if err := s.store.ReplaceCustomers(ctx, kept); err != nil {
		return err
	}
	if err := s.store.ReplaceUsage(ctx, keptRecords); err != nil {
		return err
	}
	return s.store.ReplaceInvoices(ctx, keptInvoices)
}

func (s *CustomerService) ensurePlanExists(ctx context.Context, planID uuid.UUID) error {
	plans, err := s.store.Plans(ctx)
	if err != nil {
		return err
	}
	for i := range plans {
		if plans[i].ID == planID {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_REFERENCE", "Referenced plan does not exist")
}
