package queries

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrListUserPickupsQueryIsNotConstructed is returned when a zero-value ListUserPickupsQuery is handled.
var ErrListUserPickupsQueryIsNotConstructed = errors.New(
	"ListUserPickupsQuery must be created via NewListUserPickupsQuery constructor",
)

// ListUserPickupsQuery lists the pickups visible to a principal as their own:
// the ones they created plus legacy pickups without an owner.
//
// Example:
//
//	query := NewListUserPickupsQuery(principal)
//	pickups, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrUnauthenticated) {
//	    // anonymous callers have no pickups of their own
//	}
type ListUserPickupsQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewListUserPickupsQuery builds the query for principal.
func NewListUserPickupsQuery(principal kernel.Principal) ListUserPickupsQuery {
	return ListUserPickupsQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListUserPickupsQuery) Validate() error {
	return q.guard.Validate(ErrListUserPickupsQueryIsNotConstructed)
}

// Principal returns the caller the query runs for.
func (q ListUserPickupsQuery) Principal() kernel.Principal {
	return q.principal
}
