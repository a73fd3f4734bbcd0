package billing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	return s == InvoiceStatusUnpaid || s == InvoiceStatusPaid
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// Breakdown is the priced result of a billing period computation.
// All money amounts are in the system currency; TaxRate is a percentage.
type Breakdown struct {
	Base        decimal.Decimal `json:"base"`
	UsedGb      decimal.Decimal `json:"usedGb"`
	OverageGb   decimal.Decimal `json:"overageGb"`
	OverageCost decimal.Decimal `json:"overageCost"`
	TaxRate     decimal.Decimal `json:"taxRate"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Compute prices a billing period. It is a pure function of its inputs:
//
//	base        = plan.price, or 0 without a plan
//	overageGb   = max(0, usedGb - capGb) when the plan has a cap, else 0
//	overageCost = overageGb * overagePerGb (0 when the plan has no rate)
//	tax         = (base + overageCost) * taxRate / 100
//	total       = base + overageCost + tax
//
// A nil plan prices to zero base with no overage regardless of usage.
func Compute(plan *Plan, usedGb decimal.Decimal, taxRate decimal.Decimal) Breakdown {
	base := decimal.Zero
	overageGb := decimal.Zero
	overageCost := decimal.Zero

	if plan != nil {
		base = plan.Price
		if plan.HasCap() {
			overageGb = decimal.Max(decimal.Zero, usedGb.Sub(*plan.CapGb))
			overageCost = overageGb.Mul(plan.OverageRate())
		}
	}

	subtotal := base.Add(overageCost)
	tax := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))

	return Breakdown{
		Base:        base,
		UsedGb:      usedGb,
		OverageGb:   overageGb,
		OverageCost: overageCost,
		TaxRate:     taxRate,
		Tax:         tax,
		Total:       subtotal.Add(tax),
	}
}

// TotalMoney returns the invoice total as Money
func (b Breakdown) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyKES(b.Total)
}

// InvoiceNumber formats a display number for the given year and sequence,
// e.g. INV-2024-0001.
func InvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

// Invoice represents a priced, numbered, stateful bill for one customer and
// one billing period. All pricing fields and the plan snapshot are frozen at
// creation; the only mutation after that is the unpaid -> paid transition.
type Invoice struct {
	shared.BaseEntity
	Number      string            `json:"number"`
	CustomerID  uuid.UUID         `json:"customerId"`
	PlanID      *uuid.UUID        `json:"planId"`   // snapshot, may be nil
	PlanName    string            `json:"planName"` // snapshot at issuance
	StartDate   valueobject.Date  `json:"startDate"`
	EndDate     valueobject.Date  `json:"endDate"`
	CreatedOn   valueobject.Date  `json:"createdOn"`
	Notes       string            `json:"notes"`
	Base        decimal.Decimal   `json:"base"`
	UsedGb      decimal.Decimal   `json:"usedGb"`
	OverageGb   decimal.Decimal   `json:"overageGb"`
	OverageCost decimal.Decimal   `json:"overageCost"`
	TaxRate     decimal.Decimal   `json:"taxRate"`
	Tax         decimal.Decimal   `json:"tax"`
	Total       decimal.Decimal   `json:"total"`
	Status      InvoiceStatus     `json:"status"`
	PaidOn      *valueobject.Date `json:"paidOn,omitempty"` // set once, on payment
}

// NewInvoice creates an unpaid invoice from a computed breakdown,
// snapshotting the plan's identity and name at issuance time.
func NewInvoice(number string, customerID uuid.UUID, plan *Plan, start, end valueobject.Date, notes string, b Breakdown) (*Invoice, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invoice number cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID cannot be empty")
	}
	if start.IsZero() || end.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Billing period is required")
	}
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Billing period end cannot be before start")
	}

	inv := &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		Number:      number,
		CustomerID:  customerID,
		StartDate:   start,
		EndDate:     end,
		CreatedOn:   valueobject.Today(),
		Notes:       notes,
		Base:        b.Base,
		UsedGb:      b.UsedGb,
		OverageGb:   b.OverageGb,
		OverageCost: b.OverageCost,
		TaxRate:     b.TaxRate,
		Tax:         b.Tax,
		Total:       b.Total,
		Status:      InvoiceStatusUnpaid,
	}

	if plan != nil {
		id := plan.ID
		inv.PlanID = &id
		inv.PlanName = plan.Name
	}

	return inv, nil
}

// MarkPaid transitions the invoice from unpaid to paid and stamps PaidOn.
// The transition is one-way; calling it on an already paid invoice fails
// and never changes PaidOn.
func (inv *Invoice) MarkPaid() error {
	if inv.Status != InvoiceStatusUnpaid {
		return shared.NewDomainError("INVALID_TRANSITION",
			fmt.Sprintf("Cannot mark invoice %s paid in %s status", inv.Number, inv.Status))
	}

	paidOn := valueobject.Today()
	inv.Status = InvoiceStatusPaid
	inv.PaidOn = &paidOn
	inv.Touch()

	return nil
}

// IsPaid returns true if the invoice has been paid
func (inv *Invoice) IsPaid() bool {
	return inv.Status == InvoiceStatusPaid
}

// TotalMoney returns the invoice total as Money
func (inv *Invoice) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyKES(inv.Total)
}
