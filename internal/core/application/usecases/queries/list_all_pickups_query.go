package queries

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrListAllPickupsQueryIsNotConstructed is returned when a zero-value ListAllPickupsQuery is handled.
var ErrListAllPickupsQueryIsNotConstructed = errors.New(
	"ListAllPickupsQuery must be created via NewListAllPickupsQuery constructor",
)

// ListAllPickupsQuery lists every pickup. It is meant for administrators; the
// role restriction is applied by the HTTP route, not here.
type ListAllPickupsQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewListAllPickupsQuery builds the query for principal.
func NewListAllPickupsQuery(principal kernel.Principal) ListAllPickupsQuery {
	return ListAllPickupsQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListAllPickupsQuery) Validate() error {
	return q.guard.Validate(ErrListAllPickupsQueryIsNotConstructed)
}

// Principal returns the caller the query runs for.
func (q ListAllPickupsQuery) Principal() kernel.Principal {
	return q.principal
}
