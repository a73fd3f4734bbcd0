package billing

import (
	"strings"

	"github.com/google/uuid"
	"github.com/isp/backend/internal/domain/shared"
	"github.com/isp/backend/internal/domain/shared/valueobject"
)

// CustomerStatus represents the status of a subscriber
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValid checks if the status is a valid CustomerStatus
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// String returns the string representation of CustomerStatus
func (s CustomerStatus) String() string {
	return string(s)
}

// Customer represents a subscriber.
// PlanID is a plain value reference that may legitimately point to a plan
// that no longer exists; consumers treat a missing plan as "no plan",
// never as an error.
type Customer struct {
	shared.BaseEntity
	Name      string           `json:"name"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	PlanID    *uuid.UUID       `json:"planId"` // nil = no plan
	MAC       string           `json:"mac"`
	IP        string           `json:"ip"`
	Status    CustomerStatus   `json:"status"`
	StartedOn valueobject.Date `json:"startedOn"`
}

// NewCustomer creates a new active subscriber starting today
func NewCustomer(name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Customer phone cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
		Status:     CustomerStatusActive,
		StartedOn:  valueobject.Today(),
	}, nil
}

// Update replaces the customer's basic information
func (c *Customer) Update(name, phone, email string) error {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer name cannot be empty")
	}
	if phone == "" {
		return shared.NewDomainError("INVALID_INPUT", "Customer phone cannot be empty")
	}

	c.Name = name
	c.Phone = phone
	c.Email = strings.TrimSpace(email)
	c.Touch()

	return nil
}

// SetNetwork sets the subscriber's network identifiers
func (c *Customer) SetNetwork(mac, ip string) {
	c.MAC = strings.TrimSpace(mac)
	c.IP = strings.TrimSpace(ip)
	c.Touch()
}

// AssignPlan points the customer at a plan
func (c *Customer) AssignPlan(planID uuid.UUID) error {
	if planID == uuid.Nil {
		return shared.NewDomainError("INVALID_INPUT", "Plan ID cannot be empty")
	}
	id := planID
	c.PlanID = &id
	c.Touch()
	return nil
}

// ClearPlan detaches the customer from any plan
func (c *Customer) ClearPlan() {
	c.PlanID = nil
	c.Touch()
}

// SetStatus sets the subscriber status
func (c *Customer) SetStatus(status CustomerStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "Customer status must be active or inactive")
	}
	c.Status = status
	c.Touch()
	return nil
}

// Activate marks the subscriber active
func (c *Customer) Activate() {
	c.Status = CustomerStatusActive
	c.Touch()
}

// Deactivate marks the subscriber inactive
func (c *Customer) Deactivate() {
	c.Status = CustomerStatusInactive
	c.Touch()
}

// IsActive returns true if the subscriber is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// HasPlan returns true if the customer points at a plan id.
// The plan itself may still be missing from the plans collection.
func (c *Customer) HasPlan() bool {
	return c.PlanID != nil
}
