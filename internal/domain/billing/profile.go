package billing

import (
	"github.com/isp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// BusinessProfile is the singleton business identity and tax configuration.
// It is owned externally; the invoice calculator only reads TaxRate, and it
// receives the rate as an explicit argument rather than reaching for the
// stored record.
type BusinessProfile struct {
	BusinessName string          `json:"businessName"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	TaxRate      decimal.Decimal `json:"taxRate"` // percentage
}

// NewBusinessProfile creates a profile with validation
func NewBusinessProfile(businessName, address, phone string, taxRate decimal.Decimal) (BusinessProfile, error) {
	if taxRate.IsNegative() {
		return BusinessProfile{}, shared.NewDomainError("INVALID_INPUT", "Tax rate cannot be negative")
	}
	return BusinessProfile{
		BusinessName: businessName,
		Address:      address,
		Phone:        phone,
		TaxRate:      taxRate,
	}, nil
}
