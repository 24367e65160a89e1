package commands

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/pkg/guard"
)

// ErrAcceptPickupCommandIsNotConstructed is returned when a zero-value AcceptPickupCommand is handled.
var ErrAcceptPickupCommandIsNotConstructed = errors.New(
	"AcceptPickupCommand must be created via NewAcceptPickupCommand constructor",
)

// AcceptPickupCommand represents a volunteer accepting a pickup. Accepting
// completes the pickup immediately.
type AcceptPickupCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	pickupID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptPickupCommand builds the command. The pickup id must be a constructed UUID.
func NewAcceptPickupCommand(principal kernel.Principal, pickupID kernel.UUID) (AcceptPickupCommand, error) {
	cmd := AcceptPickupCommand{
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setPickupID(pickupID); err != nil {
		return AcceptPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptPickupCommand) Validate() error {
	return c.guard.Validate(ErrAcceptPickupCommandIsNotConstructed)
}

// Principal returns the caller the command runs on behalf of.
func (c AcceptPickupCommand) Principal() kernel.Principal {
	return c.principal
}

// PickupID returns the id of the target pickup.
func (c AcceptPickupCommand) PickupID() kernel.UUID {
	return c.pickupID
}

func (c *AcceptPickupCommand) setPickupID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.pickupID = id
	return nil
}
