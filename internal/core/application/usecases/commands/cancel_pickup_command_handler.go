package commands

import (
	"context"

	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/domain/services"
)

// CancelPickupCommandHandler moves a pickup to Cancelled.
//
// Checks run in this order, and the first failure is returned:
//  1. the pickup exists (NotFound)
//  2. the principal owns it, or it has no owner (Forbidden)
//  3. it is not already cancelled or completed (Conflict)
type CancelPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	policy     services.PickupAccessPolicy
}

// NewCancelPickupCommandHandler returns a handler opening one unit of work per command.
func NewCancelPickupCommandHandler(uowFactory PickupUoWFactory) CancelPickupCommandHandler {
	return CancelPickupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewPickupAccessPolicy(),
	}
}

// Handle cancels the pickup and returns its updated state.
func (h CancelPickupCommandHandler) Handle(ctx context.Context, cmd CancelPickupCommand) (*pickup.Pickup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickupRepository()
	aggregate, err := repo.Get(ctx, cmd.PickupID())
	if err != nil {
		return nil, err
	}

	if err = h.policy.CanModify(cmd.Principal(), aggregate, services.ActionCancel); err != nil {
		return nil, err
	}

	if err = aggregate.Cancel(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
