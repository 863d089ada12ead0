package commands

import (
	"context"
	"errors"
	"log/slog"

	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// AssignDeliveryCommandHandler handles operator delivery assignment.
// The one-delivery-per-order rule is enforced twice: a pre-check inside the
// transaction for a friendly error, and a storage unique constraint that
// closes the race between two operators assigning simultaneously. The
// constraint violation surfaces as the same ObjectAlreadyExistsError.
//
// Deliverability, agent availability, and the forced in_transit move are
// the AssignmentPolicy domain service's rules.
type AssignDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
	policy     services.AssignmentPolicy
	publisher  ports.EventPublisher
	cache      ports.TrackingCache
	logger     *slog.Logger
}

// NewAssignDeliveryCommandHandler creates a handler for delivery assignment.
func NewAssignDeliveryCommandHandler(
	uowFactory AssignmentUoWFactory,
	publisher ports.EventPublisher,
	cache ports.TrackingCache,
	logger *slog.Logger,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAssignmentPolicy(),
		publisher:  publisher,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the delivery assignment command.
// Returns an ObjectAlreadyExistsError when the order is already assigned and
// an ObjectNotFoundError when the order or agent does not exist.
func (h *AssignDeliveryCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCommand) error {
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
	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	profile, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return err
	}

	existing, err := deliveryRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if existing != nil {
		return errs.NewObjectAlreadyExistsError("orderID", cmd.OrderID())
	}

	assignment, err := h.policy.Assign(cmd.DeliveryID(), aggregate, profile)
	if err != nil {
		return err
	}

	if err := deliveryRepo.Add(ctx, assignment); err != nil {
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
		Name: ports.EventDeliveryAssigned,
		Key:  assignment.ID().String(),
		Payload: map[string]any{
			"delivery_id": assignment.ID().String(),
			"order_id":    cmd.OrderID().String(),
			"agent_id":    cmd.AgentID().String(),
			"barcode":     aggregate.Barcode().String(),
		},
	})

	return nil
}
