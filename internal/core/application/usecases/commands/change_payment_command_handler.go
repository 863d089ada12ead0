package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// ChangePaymentCommandHandler handles the two one-way payment operations.
// The payment machine is independent of the order lifecycle: paying or
// refunding never moves the order status.
type ChangePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
	logger     *slog.Logger
}

// NewChangePaymentCommandHandler creates a handler for payment operations.
func NewChangePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	cache ports.TrackingCache,
	logger *slog.Logger,
) ChangePaymentCommandHandler {
	return ChangePaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the payment command.
// A non-operator touching a foreign order gets an ObjectNotFoundError so the
// order's existence is not leaked. Returns an InvalidTransitionError when the
// operation does not apply to the order's current payment status.
func (h *ChangePaymentCommandHandler) Handle(ctx context.Context, cmd ChangePaymentCommand) error {
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

	switch cmd.Action() {
	case PaymentActionPay:
		err = aggregate.MarkPaid()
	case PaymentActionRefund:
		err = aggregate.Refund()
	}
	if err != nil {
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
		Name: ports.EventOrderPaymentChanged,
		Key:  aggregate.ID().String(),
		Payload: map[string]any{
			"order_id":       aggregate.ID().String(),
			"barcode":        aggregate.Barcode().String(),
			"action":         string(cmd.Action()),
			"payment_status": aggregate.PaymentStatus().String(),
		},
	})

	return nil
}
