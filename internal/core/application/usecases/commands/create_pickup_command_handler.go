package commands

import (
	"context"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
)

// CreatePickupCommandHandler stores a new Scheduled pickup.
type CreatePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	defaults   pickup.Defaults
}

// NewCreatePickupCommandHandler creates a handler that fills optional fields
// from defaults.
func NewCreatePickupCommandHandler(uowFactory PickupUoWFactory, defaults pickup.Defaults) CreatePickupCommandHandler {
	return CreatePickupCommandHandler{
		uowFactory: uowFactory,
		defaults:   defaults,
	}
}

// Handle creates the pickup and returns it as stored, with createdAt and
// updatedAt filled in. Nothing is written when validation fails.
func (h CreatePickupCommandHandler) Handle(ctx context.Context, cmd CreatePickupCommand) (*pickup.Pickup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := pickup.NewPickupWithDefaults(
		kernel.NewUUID(),
		cmd.Principal(),
		cmd.Details(),
		cmd.Options(),
		h.defaults,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PickupRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
