package commands

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrCancelPickupCommandIsNotConstructed is returned when a zero-value CancelPickupCommand is handled.
var ErrCancelPickupCommandIsNotConstructed = errors.New(
	"CancelPickupCommand must be created via NewCancelPickupCommand constructor",
)

// CancelPickupCommand represents a principal cancelling one of their pickups.
type CancelPickupCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	pickupID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelPickupCommand builds the command. The pickup id must be a constructed UUID.
func NewCancelPickupCommand(principal kernel.Principal, pickupID kernel.UUID) (CancelPickupCommand, error) {
	cmd := CancelPickupCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setPickupID(pickupID); err != nil {
		return CancelPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPickupCommand) Validate() error {
	return c.guard.Validate(ErrCancelPickupCommandIsNotConstructed)
}

// Principal returns the caller the command runs on behalf of.
func (c CancelPickupCommand) Principal() kernel.Principal {
	return c.principal
}

// PickupID returns the id of the target pickup.
func (c CancelPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

func (c *CancelPickupCommand) setPickupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pickupID = id
	return nil
}
