package queries

import (
	"errors"

	"wastepickup/internal/pkg/guard"
)

// ErrCountPickupsByStatusQueryIsNotConstructed is returned when a zero-value CountPickupsByStatusQuery is handled.
var ErrCountPickupsByStatusQueryIsNotConstructed = errors.New(
	"CountPickupsByStatusQuery must be created via NewCountPickupsByStatusQuery constructor",
)

// CountPickupsByStatusQuery counts stored pickups per status.
type CountPickupsByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewCountPickupsByStatusQuery builds the query. It has no parameters.
func NewCountPickupsByStatusQuery() CountPickupsByStatusQuery {
	return CountPickupsByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q CountPickupsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountPickupsByStatusQueryIsNotConstructed)
}
