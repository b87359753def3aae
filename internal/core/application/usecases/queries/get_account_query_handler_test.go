package queries_test

import (
	"context"
	"testing"
	"time"

	"campuseats/internal/adapters/out/postgres/accountrepo"
	"campuseats/internal/core/application/usecases/queries"
	"campuseats/internal/core/domain/model/account"
	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type GetAccountQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetAccountQueryHandler
	accountRepo *accountrepo.GormAccountRepository
}

func (suite *GetAccountQueryHandlerTestSuite) SetupSuite() {
	container, db, err := startPostgresDatabase(context.Background())
	suite.Require().NoError(err)

	suite.container = container
	suite.db = db
	suite.handler = queries.NewGetAccountQueryHandler(db)
	suite.accountRepo = accountrepo.NewGormAccountRepository(db, &mockAggregateTracker{})
}

func (suite *GetAccountQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetAccountQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE accounts").Error)
}

func (suite *GetAccountQueryHandlerTestSuite) TestHandle_ExistingAccount_ReturnsProfileAndEarnings() {
	ctx := context.Background()

	registered, err := account.NewAccount(
		mustUserID(&suite.Suite, "courier-1"), "lee@campus.edu", "Lee", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.accountRepo.Add(ctx, registered))
	suite.Require().NoError(suite.accountRepo.CreditEarnings(ctx, registered.UID(), order.FlatDeliveryFee))

	query, err := queries.NewGetAccountQuery(registered.UID())
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("courier-1", resp.UID)
	suite.Equal("lee@campus.edu", resp.Email)
	suite.Equal("Lee", resp.DisplayName)
	suite.Empty(resp.PhotoURL)
	suite.Equal(order.FlatDeliveryFee, resp.Earnings)
}

func (suite *GetAccountQueryHandlerTestSuite) TestHandle_NonExistentAccount_ReturnsNotFoundError() {
	query, err := queries.NewGetAccountQuery(mustUserID(&suite.Suite, "missing"))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetAccountQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetAccountQuery{})
	suite.Require().Error(err)
}

func TestGetAccountQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAccountQueryHandlerTestSuite))
}
