package billing

import (
	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// UsageRecord represents a single metered data-usage event for a customer.
// Records are append-only from the engine's perspective; corrections are
// made with new records, and removal is an external collection operation.
type UsageRecord struct {
	shared.BaseEntity
	CustomerID uuid.UUID        `json:"customerId"`
	Gb         decimal.Decimal  `json:"gb"`
	Date       valueobject.Date `json:"date"`
}

// NewUsageRecord creates a new usage record with validation
func NewUsageRecord(customerID uuid.UUID, gb decimal.Decimal, date valueobject.Date) (*UsageRecord, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer ID cannot be empty")
	}
	if gb.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Usage cannot be negative")
	}
	if date.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Usage date is required")
	}

	return &UsageRecord{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Gb:         gb,
		Date:       date,
	}, nil
}

// InPeriod returns true if the record's date falls within [start, end],
// inclusive on both sides. A zero bound leaves that side open.
func (r *UsageRecord) InPeriod(start, end valueobject.Date) bool {
	return r.Date.InRange(start, end)
}
