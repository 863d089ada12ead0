package commands_test

import (
	"errors"
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	amount, err := kernel.NewMoneyFromString("149.90")
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Jane Doe", "1 Main St", amount)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil, discardLogger())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_PublishFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, publisher, discardLogger())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}
