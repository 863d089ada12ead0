package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Creates new orders in pending/unpaid state with a freshly generated barcode
// and announces them on the broker after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// The publisher may be nil when event publication is disabled.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order placement command.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ReceiverName(),
		cmd.ReceiverAddress(),
		cmd.Amount(),
	)
	if err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	publishEvent(ctx, h.logger, h.publisher, ports.Event{
		Name: ports.EventOrderCreated,
		Key:  aggregate.ID().String(),
		Payload: map[string]any{
			"order_id":    aggregate.ID().String(),
			"customer_id": aggregate.CustomerID().String(),
			"barcode":     aggregate.Barcode().String(),
			"amount":      aggregate.Amount().String(),
		},
	})

	return nil
}
