package queries_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/adapters/out/postgres/accountrepo"
	"campuseats/internal/adapters/out/postgres/orderrepo"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetEarningsMismatchesQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetEarningsMismatchesQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	accountRepo *accountrepo.GormAccountRepository
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgresDatabase(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetEarningsMismatchesQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.accountRepo = accountrepo.NewGormAccountRepository(db, &mockAggregateTracker{})
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)
}

// registerCourier persists an account for the given courier UID.
func (suite *GetEarningsMismatchesQueryHandlerTestSuite) registerCourier(uid string) *account.Account {
	courierAccount, err := account.NewAccount(
		mustUserID(&suite.Suite, uid), uid+"@campus.edu", "", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.accountRepo.Add(context.Background(), courierAccount))
	return courierAccount
}

// completeDelivery seeds one delivered order for the courier.
func (suite *GetEarningsMismatchesQueryHandlerTestSuite) completeDelivery(courier string) {
	delivered := placeOrder(
		&suite.Suite, suite.orderRepo, "customer-1", "Dana", "Noodle Bar", time.Now().UTC())
	acceptOrder(&suite.Suite, suite.orderRepo, delivered, courier, "Courier")
	deliverOrder(&suite.Suite, suite.orderRepo, delivered)
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) TestHandle_BalancedBooks_ReturnsEmptySlice() {
	ctx := context.Background()

	courier := suite.registerCourier("courier-1")
	suite.completeDelivery("courier-1")
	suite.Require().NoError(suite.accountRepo.CreditEarnings(ctx, courier.UID(), order.FlatDeliveryFee))

	result, err := suite.handler.Handle(ctx, queries.NewGetEarningsMismatchesQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) TestHandle_MissingCredit_ReportsMismatch() {
	ctx := context.Background()

	suite.registerCourier("courier-1")
	suite.completeDelivery("courier-1")
	// No credit recorded for the delivery.

	result, err := suite.handler.Handle(ctx, queries.NewGetEarningsMismatchesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("courier-1", result[0].UID)
	suite.Equal(int64(0), result[0].Earnings)
	suite.Equal(int64(1), result[0].Delivered)
	suite.Equal(order.FlatDeliveryFee, result[0].Expected)
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) TestHandle_ExcessCredit_ReportsMismatch() {
	ctx := context.Background()

	courier := suite.registerCourier("courier-1")
	suite.Require().NoError(suite.accountRepo.CreditEarnings(ctx, courier.UID(), order.FlatDeliveryFee))
	// Credited without any delivered order.

	result, err := suite.handler.Handle(ctx, queries.NewGetEarningsMismatchesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("courier-1", result[0].UID)
	suite.Equal(order.FlatDeliveryFee, result[0].Earnings)
	suite.Equal(int64(0), result[0].Delivered)
	suite.Equal(int64(0), result[0].Expected)
}

func (suite *GetEarningsMismatchesQueryHandlerTestSuite) TestHandle_OnlyOffendersReported() {
	ctx := context.Background()

	balanced := suite.registerCourier("courier-1")
	suite.completeDelivery("courier-1")
	suite.Require().NoError(suite.accountRepo.CreditEarnings(ctx, balanced.UID(), order.FlatDeliveryFee))

	suite.registerCourier("courier-2")
	suite.completeDelivery("courier-2")

	result, err := suite.handler.Handle(ctx, queries.NewGetEarningsMismatchesQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("courier-2", result[0].UID)
}

func TestGetEarningsMismatchesQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetEarningsMismatchesQueryHandlerTestSuite))
}
