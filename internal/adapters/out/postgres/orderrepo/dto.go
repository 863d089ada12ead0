// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// customer listings and barcode tracking lookups.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID      uuid.UUID `gorm:"type:uuid;index"`
	Barcode         string    `gorm:"uniqueIndex"`
	ReceiverName    string
	ReceiverAddress string
	Amount          decimal.Decimal `gorm:"type:numeric(10,2)"`
	Status          int             `gorm:"index"`
	PaymentStatus   int
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		Barcode:         aggregate.Barcode().String(),
		ReceiverName:    aggregate.ReceiverName(),
		ReceiverAddress: aggregate.ReceiverAddress(),
		Amount:          aggregate.Amount().Decimal(),
		Status:          int(aggregate.Status()),
		PaymentStatus:   int(aggregate.PaymentStatus()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	barcode, err := kernel.BarcodeFromString(dto.Barcode)
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		barcode,
		dto.ReceiverName,
		dto.ReceiverAddress,
		amount,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
