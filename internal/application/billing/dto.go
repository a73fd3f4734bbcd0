package billing

import (
	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Plan DTOs
// =============================================================================

// CreatePlanRequest represents a request to create a new plan
type CreatePlanRequest struct {
	Name         string           `json:"name" binding:"required,min=1,max=200"`
	Price        decimal.Decimal  `json:"price" binding:"required"`
	SpeedMbps    int              `json:"speedMbps" binding:"required,gt=0"`
	CapGb        *decimal.Decimal `json:"capGb"`
	DurationDays int              `json:"durationDays" binding:"required,gt=0"`
	OveragePerGb *decimal.Decimal `json:"overagePerGb"`
}

// UpdatePlanRequest represents a request to update a plan
type UpdatePlanRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Price        *decimal.Decimal `json:"price"`
	SpeedMbps    *int             `json:"speedMbps" binding:"omitempty,gt=0"`
	CapGb        *decimal.Decimal `json:"capGb"`
	DurationDays *int             `json:"durationDays" binding:"omitempty,gt=0"`
	OveragePerGb *decimal.Decimal `json:"overagePerGb"`
	ClearCap     bool             `json:"clearCap"`
}

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to register a new customer
type CreateCustomerRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Phone     string     `json:"phone" binding:"required,min=1,max=50"`
	Email     string     `json:"email" binding:"omitempty,email,max=200"`
	PlanID    *uuid.UUID `json:"planId"`
	MAC       string     `json:"mac" binding:"max=50"`
	IP        string     `json:"ip" binding:"max=50"`
	Status    string     `json:"status" binding:"omitempty,oneof=active inactive"`
	StartedOn string     `json:"startedOn" binding:"omitempty,calendardate"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=200"`
	Phone     *string    `json:"phone" binding:"omitempty,min=1,max=50"`
	Email     *string    `json:"email" binding:"omitempty,max=200"`
	PlanID    *uuid.UUID `json:"planId"`
	ClearPlan bool       `json:"clearPlan"`
	MAC       *string    `json:"mac" binding:"omitempty,max=50"`
	IP        *string    `json:"ip" binding:"omitempty,max=50"`
	Status    *string    `json:"status" binding:"omitempty,oneof=active inactive"`
}

// =============================================================================
// Usage DTOs
// =============================================================================

// RecordUsageRequest represents a request to log metered usage
type RecordUsageRequest struct {
	CustomerID uuid.UUID       `json:"customerId" binding:"required"`
	Gb         decimal.Decimal `json:"gb" binding:"required"`
	Date       string          `json:"date" binding:"required,calendardate"`
}

// UsageFilter narrows usage listings
type UsageFilter struct {
	CustomerID *uuid.UUID
	Start      string
	End        string
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// ComputeInvoiceRequest represents a request to price a billing period
// without persisting anything
type ComputeInvoiceRequest struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	StartDate  string    `json:"startDate" binding:"required,calendardate"`
	EndDate    string    `json:"endDate" binding:"required,calendardate"`
}

// IssueInvoiceRequest represents a request to issue an invoice
type IssueInvoiceRequest struct {
	CustomerID uuid.UUID `json:"customerId" binding:"required"`
	StartDate  string    `json:"startDate" binding:"required,calendardate"`
	EndDate    string    `json:"endDate" binding:"required,calendardate"`
	Notes      string    `json:"notes" binding:"max=1000"`
}

// InvoicePreview pairs a priced breakdown with the context it was
// computed from
type InvoicePreview struct {
	CustomerID uuid.UUID         `json:"customerId"`
	PlanID     *uuid.UUID        `json:"planId"`
	PlanName   string            `json:"planName"`
	StartDate  string            `json:"startDate"`
	EndDate    string            `json:"endDate"`
	Breakdown  billing.Breakdown `json:"breakdown"`
}

// =============================================================================
// Profile DTOs
// =============================================================================

// UpdateProfileRequest represents a request to update the business profile
type UpdateProfileRequest struct {
	BusinessName string          `json:"businessName" binding:"required,min=1,max=200"`
	Address      string          `json:"address" binding:"max=500"`
	Phone        string          `json:"phone" binding:"max=50"`
	TaxRate      decimal.Decimal `json:"taxRate"`
}

// =============================================================================
// Bundle DTOs
// =============================================================================

// Bundle is the full-state export and import payload
type Bundle struct {
	Profile   billing.BusinessProfile `json:"profile"`
	Plans     []billing.Plan          `json:"plans"`
	Customers []billing.Customer      `json:"customers"`
	Usage     []billing.UsageRecord   `json:"usage"`
	Invoices  []billing.Invoice       `json:"invoices"`
}
