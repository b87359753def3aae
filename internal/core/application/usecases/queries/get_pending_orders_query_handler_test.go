package queries_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/adapters/out/postgres/accountrepo"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/kernel"
	"campuseats/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repositories.
type mockAggregateTracker struct{}

func (*mockAggregateTracker) TrackAggregate(string, any) {}

// startPostgresDatabase spins up a PostgreSQL container, connects and
// migrates the read-model tables. Shared by the query handler suites.
func startPostgresDatabase(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
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
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &accountrepo.AccountDTO{})
	if err != nil {
		return nil, nil, err
	}

	return container, db, nil
}

// mustUserID is a test helper for building user identifiers.
func mustUserID(s *suite.Suite, id string) kernel.UserID {
	uid, err := kernel.NewUserID(id)
	s.Require().NoError(err)
	return uid
}

// placeOrder persists a pending order for the given customer.
func placeOrder(
	s *suite.Suite, repo *orderrepo.GormOrderRepository,
	customer, customerName, vendor string, createdAt time.Time,
) *order.Order {
	item, err := order.NewItem("Falafel wrap", 35, 1)
	s.Require().NoError(err)

	placed, err := order.NewOrder(
		kernel.NewUUID(), mustUserID(s, customer), customerName, vendor,
		[]order.Item{item}, "Main quad", createdAt)
	s.Require().NoError(err)

	s.Require().NoError(repo.Add(context.Background(), placed))
	return placed
}

// acceptOrder transitions a seeded order to Accepted.
func acceptOrder(
	s *suite.Suite, repo *orderrepo.GormOrderRepository,
	o *order.Order, courier, courierName string,
) {
	s.Require().NoError(o.Accept(mustUserID(s, courier), courierName))
	s.Require().NoError(repo.Update(context.Background(), o, order.Pending))
}

// deliverOrder transitions a seeded accepted order to Delivered.
func deliverOrder(s *suite.Suite, repo *orderrepo.GormOrderRepository, o *order.Order) {
	s.Require().NoError(o.Deliver(*o.Courier(), time.Now().UTC()))
	s.Require().NoError(repo.Update(context.Background(), o, order.Accepted))
}

type GetPendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgresDatabase(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetPendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetPendingOrdersQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_ExcludesViewerOwnOrders() {
	now := time.Now().UTC()
	placeOrder(&suite.Suite, suite.orderRepo, "courier-1", "Lee", "Noodle Bar", now)
	other := placeOrder(&suite.Suite, suite.orderRepo, "customer-2", "Dana", "Taqueria", now)

	query, err := queries.NewGetPendingOrdersQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(other.ID().String(), result[0].ID)
	suite.Equal("Dana", result[0].CustomerName)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_ExcludesClaimedAndDeliveredOrders() {
	now := time.Now().UTC()
	pending := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", now)
	accepted := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Taqueria", now)
	acceptOrder(&suite.Suite, suite.orderRepo, accepted, "courier-2", "Max")
	delivered := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Pizza Cart", now)
	acceptOrder(&suite.Suite, suite.orderRepo, delivered, "courier-2", "Max")
	deliverOrder(&suite.Suite, suite.orderRepo, delivered)

	query, err := queries.NewGetPendingOrdersQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(pending.ID().String(), result[0].ID)
	suite.Equal(order.Pending.String(), result[0].Status)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_NewestFirstWithItems() {
	base := time.Now().UTC().Add(-time.Hour)
	older := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", base)
	newer := placeOrder(&suite.Suite, suite.orderRepo, "customer-2", "Sam", "Taqueria", base.Add(10*time.Minute))

	query, err := queries.NewGetPendingOrdersQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(newer.ID().String(), result[0].ID)
	suite.Equal(older.ID().String(), result[1].ID)

	suite.Require().Len(result[0].Items, 1)
	suite.Equal("Falafel wrap", result[0].Items[0].Name)
	suite.Equal(int64(35), result[0].Items[0].Price)
	suite.Equal(int64(35), result[0].Subtotal)
	suite.Equal(order.FlatDeliveryFee, result[0].DeliveryFee)
	suite.Equal(int64(35)+order.FlatDeliveryFee, result[0].TotalCost)
}

func (suite *GetPendingOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetPendingOrdersQuery{})
	suite.Require().Error(err)
}

func TestGetPendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingOrdersQueryHandlerTestSuite))
}
