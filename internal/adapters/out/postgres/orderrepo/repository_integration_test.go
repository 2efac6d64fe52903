package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(number kernel.OrderNumber, aggregate any) {
	m.Called(number, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using PostgreSQL containers.
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.newOrder("ORD-000001")

	suite.tracker.On("TrackAggregate", testOrder.Number(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsDuplicateError() {
	ctx := context.Background()
	first := suite.newOrder("ORD-000001")
	second := suite.newOrder("ORD-000001")

	suite.tracker.On("TrackAggregate", first.Number(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrDuplicateNumber)

	var dup *errs.DuplicateNumberError
	suite.Require().ErrorAs(err, &dup)
	suite.Equal("ORD-000001", dup.Number)

	// The failed insert must leave nothing behind.
	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NumberOfSoftDeletedOrder_StillConflicts() {
	ctx := context.Background()
	first := suite.newOrder("ORD-000001")

	suite.tracker.On("TrackAggregate", first.Number(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.SoftDelete(ctx, first.Number()))

	err := suite.repository.Add(ctx, suite.newOrder("ORD-000001"))
	suite.Require().ErrorIs(err, errs.ErrDuplicateNumber)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()
	number := suite.mustNumber("ORD-000002")
	original, err := order.NewOrder(number, "Alice", "+1 (555) 123-4567", "Green Tea", 3, "leave at door")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", number, original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, number)
	suite.Require().NoError(err)

	suite.Equal("Alice", retrieved.CustomerName())
	suite.Equal("+1 (555) 123-4567", retrieved.Phone())
	suite.Equal("Green Tea", retrieved.Product())
	suite.Equal(3, retrieved.Quantity())
	suite.Equal("leave at door", retrieved.Notes())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Nil(retrieved.CancelledAt())
	suite.Empty(retrieved.CancellationReason())
	suite.False(retrieved.IsDeleted())
	suite.Equal(1, retrieved.Version())
	suite.False(retrieved.CreatedAt().IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), suite.mustNumber("ORD-999999"))

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_SoftDeletedOrder_ReturnsNotFoundError() {
	ctx := context.Background()
	testOrder := suite.addOrder(ctx, "ORD-000003")

	suite.Require().NoError(suite.repository.SoftDelete(ctx, testOrder.Number()))

	_, err := suite.repository.Get(ctx, testOrder.Number())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndCancellation() {
	ctx := context.Background()
	suite.addOrder(ctx, "ORD-000004")

	loaded, err := suite.repository.Get(ctx, suite.mustNumber("ORD-000004"))
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel("wrong address", time.Now()))

	suite.tracker.On("TrackAggregate", loaded.Number(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	retrieved, err := suite.repository.Get(ctx, loaded.Number())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Equal("wrong address", retrieved.CancellationReason())
	suite.Require().NotNil(retrieved.CancelledAt())
	suite.Equal(2, retrieved.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	ctx := context.Background()
	suite.addOrder(ctx, "ORD-000005")

	// Two clients load the same version.
	firstCopy, err := suite.repository.Get(ctx, suite.mustNumber("ORD-000005"))
	suite.Require().NoError(err)
	secondCopy, err := suite.repository.Get(ctx, suite.mustNumber("ORD-000005"))
	suite.Require().NoError(err)

	suite.Require().NoError(firstCopy.ChangeStatus(order.Processing, "", time.Now()))
	suite.tracker.On("TrackAggregate", firstCopy.Number(), firstCopy).Once()
	suite.Require().NoError(suite.repository.Update(ctx, firstCopy))

	// The slower client loses with a conflict, not a silent overwrite.
	suite.Require().NoError(secondCopy.ChangeStatus(order.Cancelled, "", time.Now()))
	err = suite.repository.Update(ctx, secondCopy)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	retrieved, err := suite.repository.Get(ctx, firstCopy.Number())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	err := suite.repository.Update(context.Background(), suite.newOrder("ORD-999998"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPage_FilterSortAndCount() {
	ctx := context.Background()
	suite.addOrder(ctx, "ORD-000010")
	suite.addOrder(ctx, "ORD-000011")
	cancelled := suite.addOrder(ctx, "ORD-000012")

	loaded, err := suite.repository.Get(ctx, cancelled.Number())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Cancel("", time.Now()))
	suite.tracker.On("TrackAggregate", loaded.Number(), loaded).Once()
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	pending := order.Pending
	orders, total, err := suite.repository.GetPage(ctx,
		ports.ListFilter{Status: &pending},
		ports.Sort{Field: ports.SortByNumber, Descending: false},
		kernel.NewPage(1, 10))
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Require().Len(orders, 2)
	suite.Equal("ORD-000010", orders[0].Number().String())
	suite.Equal("ORD-000011", orders[1].Number().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPage_PastTheEnd_ReturnsEmptyWithTotal() {
	ctx := context.Background()
	suite.addOrder(ctx, "ORD-000013")

	orders, total, err := suite.repository.GetPage(ctx,
		ports.ListFilter{}, ports.DefaultSort(), kernel.NewPage(5, 10))
	suite.Require().NoError(err)
	suite.Empty(orders)
	suite.Equal(int64(1), total)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPage_ExcludesSoftDeleted() {
	ctx := context.Background()
	kept := suite.addOrder(ctx, "ORD-000014")
	removed := suite.addOrder(ctx, "ORD-000015")

	suite.Require().NoError(suite.repository.SoftDelete(ctx, removed.Number()))

	orders, total, err := suite.repository.GetPage(ctx,
		ports.ListFilter{}, ports.DefaultSort(), kernel.NewPage(1, 10))
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Require().Len(orders, 1)
	suite.Equal(kept.Number(), orders[0].Number())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDelete_Twice_SecondReturnsNotFound() {
	ctx := context.Background()
	testOrder := suite.addOrder(ctx, "ORD-000016")

	suite.Require().NoError(suite.repository.SoftDelete(ctx, testOrder.Number()))

	err := suite.repository.SoftDelete(ctx, testOrder.Number())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHardDelete_ReachesSoftDeletedRows() {
	ctx := context.Background()
	testOrder := suite.addOrder(ctx, "ORD-000017")

	suite.Require().NoError(suite.repository.SoftDelete(ctx, testOrder.Number()))
	suite.Require().NoError(suite.repository.HardDelete(ctx, testOrder.Number()))
	suite.assertOrderCount(0)

	// The number is free again once the row is gone.
	fresh := suite.newOrder("ORD-000017")
	suite.tracker.On("TrackAggregate", fresh.Number(), fresh).Once()
	suite.Require().NoError(suite.repository.Add(ctx, fresh))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindDeletedBefore_ReturnsOnlyExpiredSoftDeleted() {
	ctx := context.Background()
	expired := suite.addOrder(ctx, "ORD-000018")
	live := suite.addOrder(ctx, "ORD-000019")
	_ = live

	suite.Require().NoError(suite.repository.SoftDelete(ctx, expired.Number()))

	// Recently deleted rows stay within the retention window.
	numbers, err := suite.repository.FindDeletedBefore(ctx, time.Now().Add(-time.Hour), 100)
	suite.Require().NoError(err)
	suite.Empty(numbers)

	numbers, err = suite.repository.FindDeletedBefore(ctx, time.Now().Add(time.Hour), 100)
	suite.Require().NoError(err)
	suite.Require().Len(numbers, 1)
	suite.Equal(expired.Number(), numbers[0])
}

// newOrder creates a valid pending order with the given number.
func (suite *OrderRepositoryIntegrationTestSuite) newOrder(raw string) *order.Order {
	testOrder, err := order.NewOrder(
		suite.mustNumber(raw), "Alice", "+1 555 123 4567", "Green Tea", 2, "")
	suite.Require().NoError(err)
	return testOrder
}

// addOrder creates and persists a pending order, with tracker expectations.
func (suite *OrderRepositoryIntegrationTestSuite) addOrder(ctx context.Context, raw string) *order.Order {
	testOrder := suite.newOrder(raw)
	suite.tracker.On("TrackAggregate", testOrder.Number(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) mustNumber(raw string) kernel.OrderNumber {
	number, err := kernel.NewOrderNumber(raw)
	suite.Require().NoError(err)
	return number
}

// assertOrderCount verifies the number of rows in the orders table,
// soft-deleted included.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
