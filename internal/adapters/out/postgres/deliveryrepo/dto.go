// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery assignment persistence. The unique index on order_id is the
// storage-level guarantee that an order never carries two assignments.
package deliveryrepo

import (
	"time"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates.
type DeliveryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	AgentID     uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	AssignedAt  time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
	Rating      *int
	Feedback    string
	Notes       string
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		AgentID:     aggregate.AgentID().Bytes(),
		Status:      int(aggregate.Status()),
		AssignedAt:  aggregate.AssignedAt(),
		PickedUpAt:  aggregate.PickedUpAt(),
		DeliveredAt: aggregate.DeliveredAt(),
		Rating:      aggregate.Rating(),
		Feedback:    aggregate.Feedback(),
		Notes:       aggregate.Notes(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	agentID, err := kernel.UUIDFromBytes(dto.AgentID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		orderID,
		agentID,
		delivery.Status(dto.Status),
		dto.AssignedAt,
		dto.PickedUpAt,
		dto.DeliveredAt,
		dto.Rating,
		dto.Feedback,
		dto.Notes,
	)
}
