package billing

import (
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Plan represents a subscription tariff a customer subscribes to.
// A plan referenced by an issued invoice is never read back for pricing;
// invoices snapshot the plan fields they need at issuance time.
type Plan struct {
	shared.BaseEntity
	Name         string           `json:"name"`
	Price        decimal.Decimal  `json:"price"`        // period fee
	SpeedMbps    int              `json:"speedMbps"`    // advertised bandwidth
	CapGb        *decimal.Decimal `json:"capGb"`        // nil = unlimited
	DurationDays int              `json:"durationDays"` // billing period length
	OveragePerGb *decimal.Decimal `json:"overagePerGb"` // nil = overage not billed
}

// NewPlan creates a new plan with required fields
func NewPlan(name string, price valueobject.Money, speedMbps, durationDays int) (*Plan, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Plan name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Plan price cannot be negative")
	}
	if speedMbps <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Plan speed must be positive")
	}
	if durationDays <= 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Plan duration must be positive")
	}

	return &Plan{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Price:        price.Amount(),
		SpeedMbps:    speedMbps,
		DurationDays: durationDays,
	}, nil
}

// Update replaces the plan's basic fields
func (p *Plan) Update(name string, price valueobject.Money, speedMbps, durationDays int) error {
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Plan name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Plan price cannot be negative")
	}
	if speedMbps <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Plan speed must be positive")
	}
	if durationDays <= 0 {
		return shared.NewDomainError("INVALID_INPUT", "Plan duration must be positive")
	}

	p.Name = name
	p.Price = price.Amount()
	p.SpeedMbps = speedMbps
	p.DurationDays = durationDays
	p.Touch()

	return nil
}

// SetCap sets the data cap and the per-gigabyte overage rate
func (p *Plan) SetCap(capGb decimal.Decimal, overagePerGb valueobject.Money) error {
	if capGb.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_INPUT", "Data cap must be positive")
	}
	if overagePerGb.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Overage rate cannot be negative")
	}

	cap := capGb
	rate := overagePerGb.Amount()
	p.CapGb = &cap
	p.OveragePerGb = &rate
	p.Touch()

	return nil
}

// ClearCap makes the plan unlimited; overage is never billed without a cap
func (p *Plan) ClearCap() {
	p.CapGb = nil
	p.OveragePerGb = nil
	p.Touch()
}

// HasCap returns true if the plan has a data cap
func (p *Plan) HasCap() bool {
	return p.CapGb != nil
}

// PriceMoney returns the period fee as Money
func (p *Plan) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyKES(p.Price)
}

// OverageRate returns the per-gigabyte overage rate, zero when absent
func (p *Plan) OverageRate() decimal.Decimal {
	if p.OveragePerGb == nil {
		return decimal.Zero
	}
	return *p.OveragePerGb
}
