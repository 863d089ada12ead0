package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// assignedFixture builds an order forced into in_transit with a picked-up
// delivery, the state completion starts from.
func assignedFixture(t *testing.T) (*order.Order, *delivery.Delivery) {
	t.Helper()
	target := newPaidOrder(t)
	target.ForceInTransit()
	assignment, err := delivery.NewDelivery(kernel.NewUUID(), target.ID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, assignment.MarkPickedUp())
	return target, assignment
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Complete(t *testing.T) {
	ctx := t.Context()
	target, assignment := assignedFixture(t)
	profile := newProfile(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignment.ID(), delivery.StatusDelivered, intPtr(5), "great service", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	agentRepo := new(MockAgentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assignment.OrderID()).Return(target, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, target).Return(nil).Once(),
		uow.On("AgentRepository").Return(agentRepo).Once(),
		agentRepo.On("Get", mock.Anything, assignment.AgentID()).Return(profile, nil).Once(),
		agentRepo.On("Update", mock.Anything, profile).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, assignment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusDelivered, assignment.Status())
	assert.Equal(t, order.StatusDelivered, target.Status())
	assert.Equal(t, 1, profile.TotalDeliveries())
	assert.Equal(t, "5.00", profile.Rating().StringFixed(2))
	deliveryRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_PickupFromAssigned(t *testing.T) {
	ctx := t.Context()
	target := newPaidOrder(t)
	target.ForceInTransit()
	assignment, err := delivery.NewDelivery(kernel.NewUUID(), target.ID(), kernel.NewUUID())
	require.NoError(t, err)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignment.ID(), delivery.StatusPickedUp, nil, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assignment.OrderID()).Return(target, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, assignment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, delivery.StatusPickedUp, assignment.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	target := newPaidOrder(t)
	target.ForceInTransit()
	assignment, err := delivery.NewDelivery(kernel.NewUUID(), target.ID(), kernel.NewUUID())
	require.NoError(t, err)

	// Completion straight from assigned skips pickup and must be rejected.
	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignment.ID(), delivery.StatusDelivered, nil, "", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assignment.OrderID()).Return(target, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil, nil, discardLogger())
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, delivery.StatusAssigned, assignment.Status())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_Fail(t *testing.T) {
	ctx := t.Context()
	target, assignment := assignedFixture(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(
		assignment.ID(), delivery.StatusFailed, nil, "", "receiver unreachable")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", mock.Anything, assignment.ID()).Return(assignment, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, assignment.OrderID()).Return(target, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, assignment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, nil, nil, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusFailed, assignment.Status())
	assert.Equal(t, "receiver unreachable", assignment.Notes())
	assert.Equal(t, order.StatusInTransit, target.Status(), "failure leaves the order untouched")
}
