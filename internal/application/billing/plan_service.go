package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/billing"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
)

// PlanService handles plan-related business operations
type PlanService struct {
	store billing.Store
}

// NewPlanService creates a new PlanService
func NewPlanService(store billing.Store) *PlanService {
	return &PlanService{store: store}
}

// List returns all plans
func (s *PlanService) List(ctx context.Context) ([]billing.Plan, error) {
	return s.store.Plans(ctx)
}

// Get returns a single plan by ID
func (s *PlanService) Get(ctx context.Context, id uuid.UUID) (*billing.Plan, error) {
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

// Create creates a new plan
func (s *PlanService) Create(ctx context.Context, req CreatePlanRequest) (*billing.Plan, error) {
	price := valueobject.NewMoneyKES(req.Price)

	plan, err := billing.NewPlan(req.Name, price, req.SpeedMbps, req.DurationDays)
	if err != nil {
		return nil, err
	}
	if req.CapGb != nil {
		rate := valueobject.ZeroKES()
		if req.OveragePerGb != nil {
			rate = valueobject.NewMoneyKES(*req.OveragePerGb)
		}
		if err := plan.SetCap(*req.CapGb, rate); err != nil {
			return nil, err
		}
	}

	plans, err := s.store.Plans(ctx)
	if err != nil {
		return nil, err
	}
	plans = append(plans, *plan)
	if err := s.store.ReplacePlans(ctx, plans); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update modifies an existing plan
func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req UpdatePlanRequest) (*billing.Plan, error) {
	plans, err := s.store.Plans(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range plans {
		if plans[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, shared.ErrNotFound
	}
	plan := &plans[idx]

	name := plan.Name
	if req.Name != nil {
		name = *req.Name
	}
	price := plan.PriceMoney()
	if req.Price != nil {
		price = valueobject.NewMoneyKES(*req.Price)
	}
	speed := plan.SpeedMbps
	if req.SpeedMbps != nil {
		speed = *req.SpeedMbps
	}
	duration := plan.DurationDays
	if req.DurationDays != nil {
		duration = *req.DurationDays
	}
	if err := plan.Update(name, price, speed, duration); err != nil {
		return nil, err
	}

	switch {
	case req.ClearCap:
		plan.ClearCap()
	case req.CapGb != nil:
		rate := valueobject.NewMoneyKES(plan.OverageRate())
		if req.OveragePerGb != nil {
			rate = valueobject.NewMoneyKES(*req.OveragePerGb)
		}
		if err := plan.SetCap(*req.CapGb, rate); err != nil {
			return nil, err
		}
	case req.OveragePerGb != nil && plan.HasCap():
		if err := plan.SetCap(*plan.CapGb, valueobject.NewMoneyKES(*req.OveragePerGb)); err != nil {
			return nil, err
		}
	}

	if err := s.store.ReplacePlans(ctx, plans); err != nil {
		return nil, err
	}
	return plan, nil
}

// Delete removes a plan and detaches it from any customers subscribed
// to it. Customers keep their other fields and their history.
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	plans, err := s.store.Plans(ctx)
	if err != nil {
		return err
	}

	kept := plans[:0]
	found := false
	for i := range plans {
		if plans[i].ID == id {
			found = true
			continue
		}
		kept = append(kept, plans[i])
	}
	if !found {
		return shared.ErrNotFound
	}

	customers, err := s.store.Customers(ctx)
	if err != nil {
		return err
	}
	detached := false
	for i := range customers {
		if customers[i].PlanID != nil && *customers[i].PlanID == id {
			customers[i].ClearPlan()
			detached = true
		}
	}

	if err := s.store.ReplacePlans(ctx, kept); err != nil {
		return err
	}
	if detached {
		return s.store.ReplaceCustomers(ctx, customers)
	}
	return nil
}
