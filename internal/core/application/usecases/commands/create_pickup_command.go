package commands

import (
	"errors"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/pkg/guard"
)

// ErrCreatePickupCommandIsNotConstructed is returned when a zero-value CreatePickupCommand is handled.
var ErrCreatePickupCommandIsNotConstructed = errors.New(
	"CreatePickupCommand must be created via NewCreatePickupCommand constructor",
)

// CreatePickupCommand represents a request to schedule a new waste pickup.
// The acting principal becomes the owner; an anonymous principal creates an
// ownerless pickup.
//
// Example:
//
//	cmd, err := NewCreatePickupCommand(principal, pickup.Details{
//	    Name:          "A",
//	    Address:       "1 Main St",
//	    ContactNumber: "555",
//	    PickupDate:    date,
//	    Items:         "Plastic",
//	}, pickup.Options{})
//	if err != nil {
//	    return fmt.Errorf("invalid pickup data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreatePickupCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	details   pickup.Details
	options   pickup.Options

	guard guard.ConstructorGuard
}

// NewCreatePickupCommand validates the required fields and reports every
// missing one at once.
func NewCreatePickupCommand(
	principal kernel.Principal,
	details pickup.Details,
	options pickup.Options,
) (CreatePickupCommand, error) {
	cmd := CreatePickupCommand{
		principal: principal,
		options:   options,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setDetails(details); err != nil {
		return CreatePickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePickupCommand) Validate() error {
	return c.guard.Validate(ErrCreatePickupCommandIsNotConstructed)
}

// Principal returns the caller the command runs on behalf of.
func (c CreatePickupCommand) Principal() kernel.Principal {
	return c.principal
}

// Details returns the validated descriptive fields.
func (c CreatePickupCommand) Details() pickup.Details {
	return c.details
}

// Options returns the optional fields as supplied; defaults are applied by the handler.
func (c CreatePickupCommand) Options() pickup.Options {
	return c.options
}

func (c *CreatePickupCommand) setDetails(details pickup.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	c.details = details
	return nil
}
