package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByBarcode retrieves an order aggregate by its tracking barcode.
	// Used for public tracking lookups.
	GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*order.Order, error)
}
