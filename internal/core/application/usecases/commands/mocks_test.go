package commands_test

import (
	"context"
	"io"
	"log/slog"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}
func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}
func (m *MockAccountRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAgentRepository) Update(ctx context.Context, a *agent.Agent) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}
func (m *MockAgentRepository) GetByAccountID(ctx context.Context, accountID kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}
func (m *MockAgentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByBarcode(ctx context.Context, barcode kernel.Barcode) (*order.Order, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) StatsByAgent(ctx context.Context, agentID kernel.UUID) (ports.AgentDeliveryStats, error) {
	args := m.Called(ctx, agentID)
	return args.Get(0).(ports.AgentDeliveryStats), args.Error(1)
}

// MockUoW satisfies every command UoW interface so one mock type serves all
// handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}
func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountUoW)
}

type MockAccountAgentUoWFactory struct{ mock.Mock }

func (m *MockAccountAgentUoWFactory) Create() commands.AccountAgentUoW {
	args := m.Called()
	return args.Get(0).(commands.AccountAgentUoW)
}

type MockAgentUoWFactory struct{ mock.Mock }

func (m *MockAgentUoWFactory) Create() commands.AgentUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockAgentStatsUoWFactory struct{ mock.Mock }

func (m *MockAgentStatsUoWFactory) Create() commands.AgentStatsUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentStatsUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockTrackingCache struct{ mock.Mock }

func (m *MockTrackingCache) Get(ctx context.Context, barcode string) ([]byte, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockTrackingCache) Set(ctx context.Context, barcode string, payload []byte) error {
	args := m.Called(ctx, barcode, payload)
	return args.Error(0)
}
func (m *MockTrackingCache) Invalidate(ctx context.Context, barcode string) error {
	args := m.Called(ctx, barcode)
	return args.Error(0)
}
