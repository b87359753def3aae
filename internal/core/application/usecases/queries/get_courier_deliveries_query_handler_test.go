package queries_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetCourierDeliveriesQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCourierDeliveriesQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgresDatabase(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetCourierDeliveriesQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_ReturnsOnlyCallersDeliveries() {
	now := time.Now().UTC()

	mine := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", now)
	acceptOrder(&suite.Suite, suite.orderRepo, mine, "courier-1", "Lee")

	other := placeOrder(&suite.Suite, suite.orderRepo, "customer-2", "Sam", "Taqueria", now)
	acceptOrder(&suite.Suite, suite.orderRepo, other, "courier-2", "Max")

	placeOrder(&suite.Suite, suite.orderRepo, "customer-3", "Ash", "Pizza Cart", now)

	query, err := queries.NewGetCourierDeliveriesQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(mine.ID().String(), result[0].ID)
	suite.Equal("courier-1", result[0].CourierID)
	suite.Equal("Lee", result[0].CourierName)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_ExcludesCompletedDeliveries() {
	base := time.Now().UTC().Add(-time.Hour)

	active := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", base)
	acceptOrder(&suite.Suite, suite.orderRepo, active, "courier-1", "Lee")

	completed := placeOrder(&suite.Suite, suite.orderRepo, "customer-2", "Sam", "Taqueria", base.Add(time.Minute))
	acceptOrder(&suite.Suite, suite.orderRepo, completed, "courier-1", "Lee")
	deliverOrder(&suite.Suite, suite.orderRepo, completed)

	query, err := queries.NewGetCourierDeliveriesQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	// The delivered order drops out of the feed; only the active one remains.
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID().String(), result[0].ID)
	suite.Equal(order.Accepted.String(), result[0].Status)
	suite.Nil(result[0].DeliveredAt)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_AllDelivered_ReturnsEmptySlice() {
	completed := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", time.Now().UTC())
	acceptOrder(&suite.Suite, suite.orderRepo, completed, "courier-1", "Lee")
	deliverOrder(&suite.Suite, suite.orderRepo, completed)

	query, err := queries.NewGetCourierDeliveriesQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetCourierDeliveriesQueryHandlerTestSuite) TestHandle_NoDeliveries_ReturnsEmptySlice() {
	query, err := queries.NewGetCourierDeliveriesQuery(mustUserID(&suite.Suite, "courier-1"))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestGetCourierDeliveriesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCourierDeliveriesQueryHandlerTestSuite))
}
