package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles order lifecycle transitions
// requested through the API. Customers may only move their own orders;
// operators may move any order.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for order transitions.
// The publisher and cache may be nil when the respective integration is
// disabled.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	cache ports.TrackingCache,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the order transition command.
// A non-operator touching a foreign order gets an ObjectNotFoundError so the
// order's existence is not leaked; illegal targets get an InvalidTransitionError.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !cmd.IsOperator() && !aggregate.CustomerID().IsEqual(cmd.RequestedBy()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID().String())
	}

	previous := aggregate.Status()
	if err := aggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	invalidateTracking(ctx, h.logger, h.cache, aggregate.Barcode().String())
	publishEvent(ctx, h.logger, h.publisher, ports.Event{
		Name: ports.EventOrderStatusChanged,
		Key:  aggregate.ID().String(),
		Payload: map[string]any{
			"order_id": aggregate.ID().String(),
			"barcode":  aggregate.Barcode().String(),
			"from":     previous.String(),
			"to":       aggregate.Status().String(),
		},
	})

	return nil
}
