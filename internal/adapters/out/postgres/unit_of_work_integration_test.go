package postgres_test

import (
	"context"
	"testing"

	postgres_adapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/accountrepo"
	"courier/internal/adapters/out/postgres/agentrepo"
	"courier/internal/adapters/out/postgres/deliveryrepo"
	"courier/internal/adapters/out/postgres/orderrepo"
	"courier/internal/core/domain/model/account"
	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&agentrepo.AgentDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE accounts, agents, orders, deliveries").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.AccountRepository(), "First instance should provide account repository")
	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow2.AgentRepository(), "Second instance should provide agent repository")
	suite.NotNil(uow2.DeliveryRepository(), "Second instance should provide delivery repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
	suite.Equal(testOrder.Barcode().String(), retrievedOrder.Barcode().String())
}

// TestUnitOfWork_AssignmentWorkflow verifies the assignment workflow touching
// order, agent, and delivery repositories within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testAccount := createTestAccount("agent1@example.com", account.RoleDeliveryAgent)
	testAgent := createTestAgent(testAccount.ID())
	testOrder := createTestOrder(kernel.NewUUID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AccountRepository().Add(ctx, testAccount)
	suite.Require().NoError(err)
	err = uow.AgentRepository().Add(ctx, testAgent)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	assignment, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), testAgent.ID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, assignment)
	suite.Require().NoError(err)

	testOrder.ForceInTransit()
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify persisted state with a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInTransit, retrievedOrder.Status())

	retrievedDelivery, err := newUow.DeliveryRepository().GetByOrderID(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testAgent.ID(), retrievedDelivery.AgentID())
	suite.Equal(delivery.StatusAssigned, retrievedDelivery.Status())
}

// TestUnitOfWork_DuplicateAssignmentRejected verifies the unique index on
// order_id rejects a second delivery for the same order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateAssignmentRejected() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	first, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), kernel.NewUUID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, second)
	suite.Require().Error(err, "Second assignment for the same order should be rejected")
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testAccount := createTestAccount("rollback@example.com", account.RoleCustomer)
	testOrder := createTestOrder(testAccount.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AccountRepository().Add(ctx, testAccount)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Visible within the transaction
	_, err = uow.AccountRepository().Get(ctx, testAccount.ID())
	suite.Require().NoError(err)
	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.AccountRepository().Get(ctx, testAccount.ID())
	suite.Require().Error(err, "Account should not exist after rollback")

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(kernel.NewUUID())
	order2 := createTestOrder(kernel.NewUUID())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	_, err = uow2.OrderRepository().Get(ctx, order2.ID())
	suite.Require().NoError(err, "UOW2 should see order2")

	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "UOW2 should not see order1")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(kernel.NewUUID())

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())

	newUow := suite.factory.Create()
	retrievedOrder, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

// TestUnitOfWork_HandOffWorkflow tests the complete hand-off lifecycle
// involving delivery, order, and agent aggregates within transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_HandOffWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testAccount := createTestAccount("handoff@example.com", account.RoleDeliveryAgent)
	testAgent := createTestAgent(testAccount.ID())
	testOrder := createTestOrder(kernel.NewUUID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.AccountRepository().Add(ctx, testAccount)
	suite.Require().NoError(err)
	err = uow.AgentRepository().Add(ctx, testAgent)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	assignment, err := delivery.NewDelivery(kernel.NewUUID(), testOrder.ID(), testAgent.ID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, assignment)
	suite.Require().NoError(err)

	testOrder.ForceInTransit()
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Progress the hand-off in a second transaction
	uow = suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = assignment.MarkPickedUp()
	suite.Require().NoError(err)
	rating := 5
	err = assignment.Complete(&rating, "fast and friendly")
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Update(ctx, assignment)
	suite.Require().NoError(err)

	err = testOrder.ChangeStatus(order.StatusDelivered)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = testAgent.RecordCompletedDelivery(&rating)
	suite.Require().NoError(err)
	err = uow.AgentRepository().Update(ctx, testAgent)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusDelivered, retrievedOrder.Status())

	retrievedDelivery, err := newUow.DeliveryRepository().Get(ctx, assignment.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusDelivered, retrievedDelivery.Status())
	suite.Require().NotNil(retrievedDelivery.Rating())
	suite.Equal(5, *retrievedDelivery.Rating())
	suite.NotNil(retrievedDelivery.DeliveredAt())

	retrievedAgent, err := newUow.AgentRepository().Get(ctx, testAgent.ID())
	suite.Require().NoError(err)
	suite.Equal(1, retrievedAgent.TotalDeliveries())
	suite.Equal("5.00", retrievedAgent.Rating().StringFixed(2))

	// Recomputed stats agree with the incremental counters
	stats, err := newUow.DeliveryRepository().StatsByAgent(ctx, testAgent.ID())
	suite.Require().NoError(err)
	suite.Equal(1, stats.TotalDelivered)
	suite.Equal(5, stats.RatingSum)
	suite.Equal(1, stats.RatingCount)
}

// createTestAccount creates a valid account for testing purposes.
func createTestAccount(email string, role account.Role) *account.Account {
	testAccount, _ := account.NewAccount(
		kernel.NewUUID(),
		email,
		"s3cret-pass",
		"Test",
		"Account",
		role,
		"+15550100",
		"1 Test Street",
	)
	return testAccount
}

// createTestAgent creates a valid agent profile for testing purposes.
func createTestAgent(accountID kernel.UUID) *agent.Agent {
	testAgent, _ := agent.NewAgent(
		kernel.NewUUID(),
		accountID,
		agent.VehicleBike,
		"AB-1234",
		"DL-99887766",
	)
	return testAgent
}

// createTestOrder creates a valid order for testing purposes.
func createTestOrder(customerID kernel.UUID) *order.Order {
	amount, _ := kernel.NewMoneyFromString("49.90")
	testOrder, _ := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		"Test Receiver",
		"2 Delivery Lane",
		amount,
	)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
