package commands

import (
	"context"
	"log/slog"

	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler handles the hand-off lifecycle:
// pickup, the optional transit leg, completion, and failure.
//
// Completion is the widest operation: it records the rating and feedback on
// the delivery, moves the order to delivered, and bumps the agent's counters
// incrementally, all inside one transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
	logger     *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// lifecycle operations.
func NewUpdateDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
	cache ports.TrackingCache,
	logger *slog.Logger,
) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the delivery lifecycle command.
// Returns an InvalidTransitionError when the target is not reachable from
// the delivery's current status.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	assignment, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	orderAggregate, err := uow.OrderRepository().Get(ctx, assignment.OrderID())
	if err != nil {
		return err
	}

	previous := assignment.Status()

	switch cmd.Target() {
	case delivery.StatusPickedUp:
		err = assignment.MarkPickedUp()
	case delivery.StatusInTransit:
		err = assignment.MarkInTransit()
	case delivery.StatusDelivered:
		err = h.complete(ctx, uow, assignment, orderAggregate, cmd)
	case delivery.StatusFailed:
		err = assignment.Fail(cmd.Notes())
	}
	if err != nil {
		return err
	}

	if err := deliveryRepo.Update(ctx, assignment); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	invalidateTracking(ctx, h.logger, h.cache, orderAggregate.Barcode().String())
	publishEvent(ctx, h.logger, h.publisher, ports.Event{
		Name: ports.EventDeliveryStatusChanged,
		Key:  assignment.ID().String(),
		Payload: map[string]any{
			"delivery_id": assignment.ID().String(),
			"order_id":    assignment.OrderID().String(),
			"agent_id":    assignment.AgentID().String(),
			"barcode":     orderAggregate.Barcode().String(),
			"from":        previous.String(),
			"to":          assignment.Status().String(),
		},
	})

	return nil
}

func (h *UpdateDeliveryStatusCommandHandler) complete(
	ctx context.Context,
	uow DeliveryUoW,
	assignment *delivery.Delivery,
	orderAggregate *order.Order,
	cmd UpdateDeliveryStatusCommand,
) error {
	if err := assignment.Complete(cmd.Rating(), cmd.Feedback()); err != nil {
		return err
	}

	if err := orderAggregate.ChangeStatus(order.StatusDelivered); err != nil {
		return err
	}
	if err := uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return err
	}

	agentRepo := uow.AgentRepository()
	profile, err := agentRepo.Get(ctx, assignment.AgentID())
	if err != nil {
		return err
	}
	if err := profile.RecordCompletedDelivery(cmd.Rating()); err != nil {
		return err
	}

	return agentRepo.Update(ctx, profile)
}
