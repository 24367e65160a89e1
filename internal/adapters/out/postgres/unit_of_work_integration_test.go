package postgres_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	postgres_adapter "wastepickup/internal/adapters/out/postgres"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/ports"
	"wastepickup/internal/pkg/errs"
	"wastepickup/internal/pkg/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite tests the GORM Unit of Work against a real
// PostgreSQL database migrated with the embedded goose migrations.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	logs      *bytes.Buffer
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))
	// A second run finds nothing pending.
	suite.Require().NoError(postgres_adapter.Migrate(ctx, db))

	suite.logs = &bytes.Buffer{}
	log := logger.New(logger.Options{ServiceName: "test", Level: zerolog.DebugLevel, Output: suite.logs})
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db, log)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pickups").Error)
	suite.logs.Reset()
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func createTestPickup(suite *UnitOfWorkIntegrationTestSuite) *pickup.Pickup {
	p, err := pickup.NewPickup(kernel.NewUUID(), kernel.NewPrincipal("u1", kernel.RoleUser), pickup.Details{
		Name:          "A",
		Address:       "1 Main St",
		ContactNumber: "555",
		PickupDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Items:         "Plastic",
	}, pickup.Options{})
	suite.Require().NoError(err)
	return p
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSchemaVersion() {
	version, err := postgres_adapter.SchemaVersion(context.Background(), suite.db)

	suite.Require().NoError(err)
	suite.Equal(int64(1), version)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.PickupRepository())
	suite.NotNil(uow2.PickupRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Require().NoError(uow.Rollback(ctx), "Rollback without a transaction is a no-op")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin() {
	err := suite.factory.Create().Commit(context.Background())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrStore)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAndLogs() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := createTestPickup(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PickupRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	got, err := suite.factory.Create().PickupRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal(pickup.Scheduled, got.Status())
	suite.Contains(suite.logs.String(), p.ID().String())
	suite.Contains(suite.logs.String(), "aggregate committed")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := createTestPickup(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PickupRepository().Add(ctx, p))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().PickupRepository().Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.NotContains(suite.logs.String(), "aggregate committed")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TrackedAggregates() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := createTestPickup(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PickupRepository().Add(ctx, p))
	suite.Require().NoError(p.Cancel())
	suite.Require().NoError(uow.PickupRepository().Update(ctx, p))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Len(gormUoW.TrackedAggregates(), 2)

	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	p := createTestPickup(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow1.PickupRepository().Add(ctx, p))

	_, err := uow2.PickupRepository().Get(ctx, p.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound, "uncommitted insert must not be visible")

	suite.Require().NoError(uow1.Commit(ctx))

	got, err := uow2.PickupRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(p.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	p := createTestPickup(suite)

	suite.Require().NoError(uow.PickupRepository().Add(ctx, p))

	got, err := suite.factory.Create().PickupRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(got.ID().IsEqual(p.ID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
