// Package ports defines the persistence contracts of the pickup domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
)

// PickupRepository defines the write-side persistence contract for pickup
// aggregates. Implementations are bound to the transaction of a UnitOfWork.
type PickupRepository interface {
	// Add persists a new pickup. The store stamps createdAt and updatedAt.
	Add(ctx context.Context, aggregate *pickup.Pickup) error

	// Get loads a pickup by id.
	// Returns *errs.ObjectNotFoundError when no pickup has that id.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error)

	// Update persists status, volunteer assignment and completedAt.
	// The write only applies while the stored status still equals the
	// aggregate's PersistedStatus:
	//   - row gone: *errs.ObjectNotFoundError
	//   - status changed concurrently: *errs.ConflictError
	Update(ctx context.Context, aggregate *pickup.Pickup) error

	// Delete removes the pickup under the same status condition as Update.
	Delete(ctx context.Context, aggregate *pickup.Pickup) error
}

// PickupFilter selects pickups by owner. The zero value selects all pickups.
type PickupFilter struct {
	// OwnerID restricts the result to pickups created by this principal.
	OwnerID *string
	// IncludeOwnerless adds legacy pickups without an owner to an OwnerID match.
	IncludeOwnerless bool
}

// PickupQueryRepository defines the read-side contract used by query handlers.
type PickupQueryRepository interface {
	// Get loads a pickup by id or returns *errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error)

	// ListByPriority returns the pickups matching filter ordered by status
	// priority, then pickupDate ascending.
	//
	// Example:
	//   owner := "u1"
	//   mine, err := repo.ListByPriority(ctx, ports.PickupFilter{OwnerID: &owner, IncludeOwnerless: true})
	ListByPriority(ctx context.Context, filter PickupFilter) ([]*pickup.Pickup, error)

	// ListAssignedToVolunteer returns the pickups whose assigned volunteer is
	// volunteerID, newest pickupDate first.
	ListAssignedToVolunteer(ctx context.Context, volunteerID string) ([]*pickup.Pickup, error)

	// CountByStatus returns the number of pickups per stored status.
	CountByStatus(ctx context.Context) (map[pickup.Status]int64, error)
}
