package ports

import (
	"context"
)

// Event names published to the message broker after successful commits.
const (
	EventOrderCreated          = "order.created"
	EventOrderStatusChanged    = "order.status_changed"
	EventOrderPaymentChanged   = "order.payment_changed"
	EventDeliveryAssigned      = "delivery.assigned"
	EventDeliveryStatusChanged = "delivery.status_changed"
)

// Event is a domain event ready for publication. Payload must be
// JSON-serializable; Key routes events for the same entity to the same
// partition.
type Event struct {
	Name    string
	Key     string
	Payload any
}

// EventPublisher publishes domain events to the message broker.
// Publication is best-effort: callers log failures and never fail the
// business operation over them.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}
