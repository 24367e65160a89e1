// Package commands contains business operations that modify pickups.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"
	"time"

	"wastepickup/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PickupRepoFactory provides access to the pickup repository within a transaction.
	PickupRepoFactory interface {
		PickupRepository() ports.PickupRepository
	}

	// PickupUoW manages the transaction of a single pickup command.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.PickupRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	PickupUoW interface {
		TxManager
		PickupRepoFactory
	}

	// PickupUoWFactory creates new pickup unit of work instances.
	PickupUoWFactory interface {
		Create() PickupUoW
	}
)

// Clock returns the current time. Handlers that stamp times take one so tests
// can fix it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c()
}
