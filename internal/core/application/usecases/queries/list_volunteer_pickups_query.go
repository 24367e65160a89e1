package queries

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrListVolunteerPickupsQueryIsNotConstructed is returned when a zero-value ListVolunteerPickupsQuery is handled.
var ErrListVolunteerPickupsQueryIsNotConstructed = errors.New(
	"ListVolunteerPickupsQuery must be created via NewListVolunteerPickupsQuery constructor",
)

// ListVolunteerPickupsQuery lists the pickups assigned to the principal.
type ListVolunteerPickupsQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

// NewListVolunteerPickupsQuery builds the query for principal.
func NewListVolunteerPickupsQuery(principal kernel.Principal) ListVolunteerPickupsQuery {
	return ListVolunteerPickupsQuery{principal: principal, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListVolunteerPickupsQuery) Validate() error {
	return q.guard.Validate(ErrListVolunteerPickupsQueryIsNotConstructed)
}

// Principal returns the caller the query runs for.
func (q ListVolunteerPickupsQuery) Principal() kernel.Principal {
	return q.principal
}
