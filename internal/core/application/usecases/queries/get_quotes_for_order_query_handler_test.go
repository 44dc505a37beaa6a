package queries_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/adapters/out/postgres/orderrepo"
	"freightbid/internal/adapters/out/postgres/quoterepo"
	"freightbid/internal/core/application/usecases/queries"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"
	"freightbid/internal/core/domain/model/quote"
	"freightbid/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetQuotesForOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetQuotesForOrderQueryHandler
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &quoterepo.QuoteDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetQuotesForOrderQueryHandler(db)
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, quotes CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) seedOrder() kernel.UUID {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Central warehouse", "Steel pipes", "12 Harbor Rd", now)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), o))
	return o.ID()
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) seedQuote(
	orderID kernel.UUID, provider string, amount int64, createdAt time.Time,
) {
	price, err := kernel.NewPrice(amount)
	suite.Require().NoError(err)

	q, err := quote.RestoreQuote(
		kernel.NewUUID(), orderID, provider, price,
		createdAt.Add(72*time.Hour), "covered transport", createdAt, createdAt)
	suite.Require().NoError(err)

	repo := quoterepo.NewGormQuoteRepository(suite.db, &mockAggregateTracker{})
	suite.Require().NoError(repo.Upsert(context.Background(), q))
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetQuotesForOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) TestHandle_NoQuotes_ReturnsEmptySlice() {
	orderID := suite.seedOrder()

	query, err := queries.NewGetQuotesForOrderQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) TestHandle_ReturnsQuotesCheapestFirst() {
	orderID := suite.seedOrder()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	suite.seedQuote(orderID, "cargo-masters", 180000, base)
	suite.seedQuote(orderID, "fast-freight", 120000, base.Add(time.Minute))
	suite.seedQuote(orderID, "acme-logistics", 150000, base.Add(2*time.Minute))

	query, err := queries.NewGetQuotesForOrderQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("fast-freight", result[0].Provider)
	suite.Equal("acme-logistics", result[1].Provider)
	suite.Equal("cargo-masters", result[2].Provider)
	suite.Equal("covered transport", result[0].Remarks)
}

func (suite *GetQuotesForOrderQueryHandlerTestSuite) TestHandle_PriceTies_BreakByTimeThenProvider() {
	orderID := suite.seedOrder()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	suite.seedQuote(orderID, "zeta-cargo", 120000, base)
	suite.seedQuote(orderID, "alpha-cargo", 120000, base)
	suite.seedQuote(orderID, "late-bidder", 120000, base.Add(time.Hour))

	query, err := queries.NewGetQuotesForOrderQuery(orderID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("alpha-cargo", result[0].Provider)
	suite.Equal("zeta-cargo", result[1].Provider)
	suite.Equal("late-bidder", result[2].Provider)
}

func TestGetQuotesForOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetQuotesForOrderQueryHandlerTestSuite))
}
