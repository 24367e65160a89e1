// Package postgres provides the GORM-based Unit of Work and the embedded
// schema migrations of the pickup store.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, log)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.PickupRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns at most one transaction; goroutines must not
// share an instance.
package postgres

import (
	"context"
	"errors"

	"wastepickup/internal/adapters/out/postgres/pickuprepo"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/ports"
	"wastepickup/internal/pkg/errs"
	"wastepickup/internal/pkg/logger"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. A nil log disables commit logging.
func NewGormUnitOfWorkFactory(db *gorm.DB, log *logger.Logger) *GormUnitOfWorkFactory {
	if log == nil {
		log = logger.Nop()
	}
	return &GormUnitOfWorkFactory{db: db, log: log.Component("unit_of_work")}
}

// Create produces a new UnitOfWork instance.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.newUnitOfWork()
}

func (f *GormUnitOfWorkFactory) newUnitOfWork() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		log:               f.log,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	log               *logger.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStoreError("begin transaction", tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit makes the transaction's changes permanent and closes it.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return errs.NewStoreError("commit transaction", gorm.ErrInvalidTransaction)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewStoreError("commit transaction", err)
	}

	for _, tracked := range uow.trackedAggregates {
		uow.log.Event(ctx, zerolog.DebugLevel).
			Str("aggregate_id", tracked.ID.String()).
			Msg("aggregate committed")
	}
	return nil
}

// Rollback discards the open transaction. Without one it does nothing, so it
// is safe to defer right after Begin.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if err != nil && !errors.Is(err, gorm.ErrInvalidTransaction) {
		return errs.NewStoreError("rollback transaction", err)
	}
	return nil
}

// PickupRepository returns a repository bound to the open transaction, or to
// the plain connection when no transaction is open.
func (uow *GormUnitOfWork) PickupRepository() ports.PickupRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return pickuprepo.NewGormPickupRepository(db, uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the ids of the aggregates written so far.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}
