// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases, reading the
// database directly instead of going through the aggregates.
package queries

import (
	"time"

	"courier/internal/core/domain/model/kernel"
)

// OrderResponse is the read model for a single order. The same shape serves
// authenticated order retrieval and public barcode tracking.
type OrderResponse struct {
	ID              kernel.UUID
	CustomerID      kernel.UUID
	Barcode         string
	ReceiverName    string
	ReceiverAddress string
	Amount          string
	Status          string
	PaymentStatus   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DeliveryResponse is the read model for a delivery assignment.
type DeliveryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	AgentID     kernel.UUID
	Barcode     string
	Status      string
	AssignedAt  time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Rating      *int
	Feedback    string
	Notes       string
}

// AccountResponse is the read model for an account. The password hash never
// leaves the storage layer.
type AccountResponse struct {
	ID        kernel.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
	Phone     string
	Address   string
	Active    bool
	CreatedAt time.Time
}

// AgentResponse is the read model for a delivery agent profile joined with
// its account.
type AgentResponse struct {
	ID              kernel.UUID
	AccountID       kernel.UUID
	Email           string
	FirstName       string
	LastName        string
	VehicleType     string
	VehicleNumber   string
	LicenseNumber   string
	CurrentLocation string
	Available       bool
	TotalDeliveries int
	Rating          string
}

// Pagination bounds shared by the list queries.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page holds validated pagination parameters.
type Page struct {
	Number int
	Size   int
}

// NewPage normalizes pagination input: non-positive numbers fall back to the
// defaults, oversized pages are clamped.
func NewPage(number, size int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}
