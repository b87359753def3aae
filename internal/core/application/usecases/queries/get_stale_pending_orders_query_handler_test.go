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

type GetStalePendingOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetStalePendingOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetStalePendingOrdersQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgresDatabase(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetStalePendingOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetStalePendingOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetStalePendingOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
}

func (suite *GetStalePendingOrdersQueryHandlerTestSuite) TestHandle_ReturnsOnlyOrdersOlderThanCutoff() {
	now := time.Now().UTC()

	stale := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", now.Add(-30*time.Minute))
	placeOrder(&suite.Suite, suite.orderRepo, "customer-2", "Sam", "Taqueria", now.Add(-time.Minute))

	query, err := queries.NewGetStalePendingOrdersQuery(now.Add(-15 * time.Minute))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stale.ID().String(), result[0].ID)
	suite.Equal(order.Pending.String(), result[0].Status)
}

func (suite *GetStalePendingOrdersQueryHandlerTestSuite) TestHandle_IgnoresClaimedOrders() {
	now := time.Now().UTC()

	claimed := placeOrder(&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", now.Add(-30*time.Minute))
	acceptOrder(&suite.Suite, suite.orderRepo, claimed, "courier-1", "Lee")

	query, err := queries.NewGetStalePendingOrdersQuery(now.Add(-15 * time.Minute))
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func TestGetStalePendingOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetStalePendingOrdersQueryHandlerTestSuite))
}
