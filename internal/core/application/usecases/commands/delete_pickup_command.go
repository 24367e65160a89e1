package commands

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrDeletePickupCommandIsNotConstructed is returned when a zero-value DeletePickupCommand is handled.
var ErrDeletePickupCommandIsNotConstructed = errors.New(
	"DeletePickupCommand must be created via NewDeletePickupCommand constructor",
)

// DeletePickupCommand represents a principal removing one of their pickups.
type DeletePickupCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	pickupID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePickupCommand builds the command. The pickup id must be a constructed UUID.
func NewDeletePickupCommand(principal kernel.Principal, pickupID kernel.UUID) (DeletePickupCommand, error) {
	cmd := DeletePickupCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setPickupID(pickupID); err != nil {
		return DeletePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeletePickupCommand) Validate() error {
	return c.guard.Validate(ErrDeletePickupCommandIsNotConstructed)
}

// Principal returns the caller the command runs on behalf of.
func (c DeletePickupCommand) Principal() kernel.Principal {
	return c.principal
}

// PickupID returns the id of the target pickup.
func (c DeletePickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

func (c *DeletePickupCommand) setPickupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pickupID = id
	return nil
}
