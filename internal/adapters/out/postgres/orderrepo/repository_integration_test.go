package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(aggregate kernel.EventSource) {
	m.Called(aggregate)
}

// OrderRepositoryIntegrationTestSuite runs the repository against a real
// PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndItems() {
	ctx := context.Background()
	o := suite.newOrder("customer-1")
	suite.tracker.On("TrackAggregate", o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.assertCount("orders", 1)
	suite.assertCount("order_items", 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NotConstructedOrder_ReturnsError() {
	err := suite.repository.Add(context.Background(), &order.Order{})

	suite.Require().ErrorIs(err, order.ErrOrderIsNotConstructed)
	suite.assertCount("orders", 0)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RestoresAggregate() {
	ctx := context.Background()
	o := suite.newOrder("customer-1")
	suite.tracker.On("TrackAggregate", o).Once()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal("customer-1", got.CustomerID())
	suite.Equal(order.Pending, got.Status())
	suite.True(decimal.RequireFromString("251.97").Equal(got.TotalAmount()), got.TotalAmount().String())
	suite.Require().Len(got.Items(), 2)
	suite.Equal("sku-1", got.Items()[0].ProductID())
	suite.Equal("sku-2", got.Items()[1].ProductID())
	suite.True(decimal.RequireFromString("25.99").Equal(got.Items()[1].UnitPrice()))
	suite.Empty(got.DomainEvents())
	suite.WithinDuration(o.CreatedAt(), got.CreatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	got, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(got)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChange_PersistsStatusAndUpdatedAt() {
	ctx := context.Background()
	o := suite.newOrder("customer-1")
	suite.tracker.On("TrackAggregate", o).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, got.Status())
	suite.WithinDuration(o.UpdatedAt(), got.UpdatedAt(), time.Millisecond)
	suite.Len(got.Items(), 2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	o := suite.newOrder("customer-1")

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_MixedStatuses_ReturnsNonTerminalOldestFirst() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything)

	first := suite.addOrderIn(ctx, order.Processing, time.Now().Add(-3*time.Hour))
	suite.addOrderIn(ctx, order.Delivered, time.Now().Add(-2*time.Hour))
	second := suite.addOrderIn(ctx, order.Pending, time.Now().Add(-time.Hour))
	suite.addOrderIn(ctx, order.Cancelled, time.Now())

	active, err := suite.repository.GetAllActive(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(active, 2)
	suite.True(active[0].IsEqual(first))
	suite.True(active[1].IsEqual(second))
	suite.Len(active[0].Items(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_NoOrders_ReturnsEmptySlice() {
	active, err := suite.repository.GetAllActive(context.Background())

	suite.Require().NoError(err)
	suite.Empty(active)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(customerID string) *order.Order {
	first, err := order.NewLineItem("sku-1", "Keyboard", 2, decimal.RequireFromString("99.995"))
	suite.Require().NoError(err)
	second, err := order.NewLineItem("sku-2", "Mouse", 2, decimal.RequireFromString("25.99"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{first, second})
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrderIn(ctx context.Context, status order.Status, createdAt time.Time) *order.Order {
	src := suite.newOrder("customer-1")
	o, err := order.RestoreOrder(src.ID(), src.CustomerID(), src.Items(), src.TotalAmount(), status, createdAt.UTC(), createdAt.UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(table string, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Table(table).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
