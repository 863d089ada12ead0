package ports

import (
	"context"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
)

// AgentDeliveryStats holds aggregates recomputed from the delivery history
// of a single agent. Used by the reconciliation job to correct drift in the
// incrementally maintained agent counters.
type AgentDeliveryStats struct {
	TotalDelivered int
	RatingSum      int
	RatingCount    int
}

// DeliveryRepository defines the persistence contract for delivery
// assignments.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// Storage enforces at most one delivery per order; adding a second one
	// for the same order returns an ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByOrderID retrieves the delivery assigned to the given order,
	// if any.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// StatsByAgent recomputes completed-delivery aggregates for the given
	// agent directly from the delivery rows.
	StatsByAgent(ctx context.Context, agentID kernel.UUID) (AgentDeliveryStats, error)
}
