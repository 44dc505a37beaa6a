package quoterepo_test

import (
	"context"
	"testing"
	"time"

	"freightbid/internal/adapters/out/postgres/orderrepo"
	"freightbid/internal/adapters/out/postgres/quoterepo"
	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"
	"freightbid/internal/core/domain/model/quote"
	"freightbid/internal/pkg/errs"

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

// QuoteRepositoryIntegrationTestSuite provides integration tests for QuoteRepository
// using PostgreSQL containers to verify database persistence behavior.
type QuoteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *quoterepo.GormQuoteRepository
	tracker    *MockAggregateTracker
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &quoterepo.QuoteDTO{}))
}

func (suite *QuoteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, quotes CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = quoterepo.NewGormQuoteRepository(suite.db, suite.tracker)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QuoteRepositoryIntegrationTestSuite) seedOrder() kernel.UUID {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"Central warehouse", "Steel pipes", "12 Harbor Rd", now)
	suite.Require().NoError(err)

	orderRepo := orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.Require().NoError(orderRepo.Add(context.Background(), o))
	return o.ID()
}

func (suite *QuoteRepositoryIntegrationTestSuite) newQuote(
	orderID kernel.UUID, provider string, amount int64, createdAt time.Time,
) *quote.Quote {
	price, err := kernel.NewPrice(amount)
	suite.Require().NoError(err)

	q, err := quote.NewQuote(
		kernel.NewUUID(), orderID, provider, price,
		createdAt.Add(72*time.Hour), "covered transport", createdAt)
	suite.Require().NoError(err)
	return q
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestUpsert_NewQuote_Inserts() {
	ctx := context.Background()
	orderID := suite.seedOrder()
	q := suite.newQuote(orderID, "acme-logistics", 150000, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))

	err := suite.repository.Upsert(ctx, q)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByOrderAndProvider(ctx, orderID, "acme-logistics")
	suite.Require().NoError(err)
	suite.Equal(q.ID(), retrieved.ID())
	suite.Equal(int64(150000), retrieved.Price().Amount())
	suite.Equal("covered transport", retrieved.Remarks())
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestUpsert_Resubmission_UpdatesInPlace() {
	ctx := context.Background()
	orderID := suite.seedOrder()
	firstAt := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	first := suite.newQuote(orderID, "acme-logistics", 150000, firstAt)
	suite.Require().NoError(suite.repository.Upsert(ctx, first))

	// A resubmission carries a fresh id; the stored row must keep the
	// original identity and creation time.
	revised := suite.newQuote(orderID, "acme-logistics", 140000, firstAt.Add(time.Hour))
	suite.Require().NoError(suite.repository.Upsert(ctx, revised))

	retrieved, err := suite.repository.GetByOrderAndProvider(ctx, orderID, "acme-logistics")
	suite.Require().NoError(err)
	suite.Equal(first.ID(), retrieved.ID())
	suite.Equal(firstAt, retrieved.CreatedAt().UTC())
	suite.Equal(int64(140000), retrieved.Price().Amount())
	suite.Equal(firstAt.Add(time.Hour), retrieved.UpdatedAt().UTC())

	var count int64
	suite.Require().NoError(suite.db.Model(&quoterepo.QuoteDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestUpsert_DistinctProviders_KeepSeparateRows() {
	ctx := context.Background()
	orderID := suite.seedOrder()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(orderID, "acme-logistics", 150000, base)))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(orderID, "fast-freight", 120000, base)))

	var count int64
	suite.Require().NoError(suite.db.Model(&quoterepo.QuoteDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGetByOrderAndProvider_NoQuote_ReturnsNotFoundError() {
	ctx := context.Background()
	orderID := suite.seedOrder()

	retrieved, err := suite.repository.GetByOrderAndProvider(ctx, orderID, "acme-logistics")

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(retrieved)
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestGetAllByOrder_ReturnsCheapestFirst() {
	ctx := context.Background()
	orderID := suite.seedOrder()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(orderID, "cargo-masters", 180000, base)))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(orderID, "zeta-cargo", 120000, base)))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(orderID, "alpha-cargo", 120000, base)))

	quotes, err := suite.repository.GetAllByOrder(ctx, orderID)

	suite.Require().NoError(err)
	suite.Require().Len(quotes, 3)
	suite.Equal("alpha-cargo", quotes[0].Provider())
	suite.Equal("zeta-cargo", quotes[1].Provider())
	suite.Equal("cargo-masters", quotes[2].Provider())
}

func (suite *QuoteRepositoryIntegrationTestSuite) TestRemoveOrphans_DeletesOnlyQuotesWithoutOrder() {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	keptOrder := suite.seedOrder()
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(keptOrder, "acme-logistics", 150000, base)))

	removedOrder := suite.seedOrder()
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(removedOrder, "fast-freight", 120000, base)))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.newQuote(removedOrder, "cargo-masters", 90000, base)))

	// Administrative removal deletes the order row out-of-band.
	err := suite.db.Exec("DELETE FROM orders WHERE id = ?", removedOrder.Bytes()).Error
	suite.Require().NoError(err)

	removed, err := suite.repository.RemoveOrphans(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)

	quotes, err := suite.repository.GetAllByOrder(ctx, keptOrder)
	suite.Require().NoError(err)
	suite.Len(quotes, 1)

	removed, err = suite.repository.RemoveOrphans(ctx)
	suite.Require().NoError(err)
	suite.Zero(removed)
}

func TestQuoteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteRepositoryIntegrationTestSuite))
}
