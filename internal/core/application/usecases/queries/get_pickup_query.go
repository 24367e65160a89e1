package queries

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrGetPickupQueryIsNotConstructed is returned when a zero-value GetPickupQuery is handled.
var ErrGetPickupQueryIsNotConstructed = errors.New(
	"GetPickupQuery must be created via NewGetPickupQuery constructor",
)

// GetPickupQuery loads a single pickup by id. Any caller may read any pickup.
type GetPickupQuery struct { //nolint:recvcheck //using for validation
	pickupID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPickupQuery builds the query. The id must be a constructed UUID.
func NewGetPickupQuery(pickupID kernel.UUID) (GetPickupQuery, error) {
	q := GetPickupQuery{guard: guard.NewConstructorGuard()}
	if err := q.setPickupID(pickupID); err != nil {
		return GetPickupQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPickupQuery) Validate() error {
	return q.guard.Validate(ErrGetPickupQueryIsNotConstructed)
}

// PickupID returns the id to look up.
func (q GetPickupQuery) PickupID() kernel.UUID {
	return q.pickupID
}

func (q *GetPickupQuery) setPickupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.pickupID = id
	return nil
}
