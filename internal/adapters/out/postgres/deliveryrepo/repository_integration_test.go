package deliveryrepo_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres/deliveryrepo"
	"courier/internal/core/domain/model/delivery"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DeliveryRepositoryIntegrationTestSuite provides integration tests for
// DeliveryRepository using PostgreSQL containers, covering the one-per-order
// constraint and the stats recomputation query.
type DeliveryRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *deliveryrepo.GormDeliveryRepository
	tracker    *MockAggregateTracker
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&deliveryrepo.DeliveryDTO{}))
}

func (suite *DeliveryRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE deliveries").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = deliveryrepo.NewGormDeliveryRepository(suite.db, suite.tracker)
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_ValidDelivery_Success() {
	ctx := context.Background()

	assignment := suite.createTestDelivery(kernel.NewUUID(), kernel.NewUUID())
	suite.tracker.On("TrackAggregate", assignment.ID(), assignment).Once()

	err := suite.repository.Add(ctx, assignment)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, assignment.ID())
	suite.Require().NoError(err)
	suite.Equal(assignment.OrderID(), retrieved.OrderID())
	suite.Equal(assignment.AgentID(), retrieved.AgentID())
	suite.Equal(delivery.StatusAssigned, retrieved.Status())
	suite.Nil(retrieved.PickedUpAt())
	suite.Nil(retrieved.Rating())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestAdd_SecondDeliveryForOrder_ReturnsAlreadyExistsError() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	first := suite.createTestDelivery(orderID, kernel.NewUUID())
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	err := suite.repository.Add(ctx, first)
	suite.Require().NoError(err)

	second := suite.createTestDelivery(orderID, kernel.NewUUID())
	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestGetByOrderID() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	assignment := suite.createTestDelivery(orderID, kernel.NewUUID())
	suite.tracker.On("TrackAggregate", assignment.ID(), assignment).Once()
	err := suite.repository.Add(ctx, assignment)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByOrderID(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(assignment.ID(), retrieved.ID())

	_, err = suite.repository.GetByOrderID(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestUpdate_HandOffProgress_PersistsNullableColumns() {
	ctx := context.Background()

	assignment := suite.createTestDelivery(kernel.NewUUID(), kernel.NewUUID())
	suite.tracker.On("TrackAggregate", assignment.ID(), assignment).Twice()

	err := suite.repository.Add(ctx, assignment)
	suite.Require().NoError(err)

	err = assignment.MarkPickedUp()
	suite.Require().NoError(err)
	rating := 4
	err = assignment.Complete(&rating, "left at the door")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, assignment)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, assignment.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.StatusDelivered, retrieved.Status())
	suite.NotNil(retrieved.PickedUpAt())
	suite.NotNil(retrieved.DeliveredAt())
	suite.Require().NotNil(retrieved.Rating())
	suite.Equal(4, *retrieved.Rating())
	suite.Equal("left at the door", retrieved.Feedback())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DeliveryRepositoryIntegrationTestSuite) TestStatsByAgent_CountsOnlyDeliveredRows() {
	ctx := context.Background()
	agentID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	// Two completed deliveries, one rated
	rated := suite.createTestDelivery(kernel.NewUUID(), agentID)
	suite.Require().NoError(rated.MarkPickedUp())
	rating := 5
	suite.Require().NoError(rated.Complete(&rating, ""))
	suite.Require().NoError(suite.repository.Add(ctx, rated))

	unrated := suite.createTestDelivery(kernel.NewUUID(), agentID)
	suite.Require().NoError(unrated.MarkPickedUp())
	suite.Require().NoError(unrated.Complete(nil, ""))
	suite.Require().NoError(suite.repository.Add(ctx, unrated))

	// A failed delivery and another agent's completed one must not count
	failed := suite.createTestDelivery(kernel.NewUUID(), agentID)
	suite.Require().NoError(failed.Fail("receiver unreachable"))
	suite.Require().NoError(suite.repository.Add(ctx, failed))

	other := suite.createTestDelivery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(other.MarkPickedUp())
	suite.Require().NoError(other.Complete(&rating, ""))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	stats, err := suite.repository.StatsByAgent(ctx, agentID)
	suite.Require().NoError(err)
	suite.Equal(2, stats.TotalDelivered)
	suite.Equal(5, stats.RatingSum)
	suite.Equal(1, stats.RatingCount)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestDelivery creates a fresh assignment for the given order and agent.
func (suite *DeliveryRepositoryIntegrationTestSuite) createTestDelivery(
	orderID, agentID kernel.UUID,
) *delivery.Delivery {
	assignment, err := delivery.NewDelivery(kernel.NewUUID(), orderID, agentID)
	suite.Require().NoError(err)
	return assignment
}

func TestDeliveryRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryRepositoryIntegrationTestSuite))
}
