package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"yms/internal/adapters/out/postgres/ledgerrepo"
	"yms/internal/core/domain/model/kernel"
	"yms/internal/core/domain/model/ledger"
	"yms/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LedgerRepositoryIntegrationTestSuite provides integration tests for
// LedgerRepository using PostgreSQL containers.
type LedgerRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *ledgerrepo.GormLedgerRepository
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&ledgerrepo.EntryDTO{}))
}

func (suite *LedgerRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE movement_ledger").Error)
	suite.repository = ledgerrepo.NewGormLedgerRepository(suite.db)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LedgerRepositoryIntegrationTestSuite) newEntry(
	orderID kernel.UUID,
	phase order.MovePhase,
) *ledger.Entry {
	entry, err := ledger.NewEntry(
		kernel.NewUUID(), orderID, phase,
		"Truck", "TRK-001",
		kernel.NewUUID(), kernel.NewUUID(),
		"equipment TRK-001 departed",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return entry
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestAddAndExists() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	exists, err := suite.repository.ExistsForOrderAndPhase(ctx, orderID, order.PhaseDepartured)
	suite.Require().NoError(err)
	suite.False(exists)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newEntry(orderID, order.PhaseDepartured)))

	exists, err = suite.repository.ExistsForOrderAndPhase(ctx, orderID, order.PhaseDepartured)
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestExists_DiscriminatesPhase() {
	ctx := context.Background()
	orderID := kernel.NewUUID()

	suite.Require().NoError(suite.repository.Add(ctx, suite.newEntry(orderID, order.PhaseDepartured)))

	exists, err := suite.repository.ExistsForOrderAndPhase(ctx, orderID, order.PhaseArrived)
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *LedgerRepositoryIntegrationTestSuite) TestExists_DiscriminatesOrder() {
	ctx := context.Background()

	suite.Require().NoError(
		suite.repository.Add(ctx, suite.newEntry(kernel.NewUUID(), order.PhaseDepartured)))

	exists, err := suite.repository.ExistsForOrderAndPhase(
		ctx, kernel.NewUUID(), order.PhaseDepartured)
	suite.Require().NoError(err)
	suite.False(exists)
}

func TestLedgerRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerRepositoryIntegrationTestSuite))
}
