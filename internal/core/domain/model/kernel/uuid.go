package kernel

import (
	"fmt"

	"wastepickup/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or UUIDFromGoogle")

// UUID is the identifier value object used for pickups. It wraps
// github.com/google/uuid so the zero value can be detected as invalid.
//
// Example:
//
//	id := kernel.NewUUID()
//
//	id, err := kernel.UUIDFromGoogle(boundPathParam)
//	if err != nil {
//	    // nil UUID: callers report it as a validation failure
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromGoogle wraps an already parsed uuid.UUID, e.g. one bound from a
// request path.
func UUIDFromGoogle(id uuid.UUID) (UUID, error) {
	if id == uuid.Nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("nil UUID is not allowed"))
	}
	return UUID{id: id}, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID for persistence adapters.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
