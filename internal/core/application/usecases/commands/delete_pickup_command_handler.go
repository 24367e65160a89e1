package commands

import (
	"context"

	"wastepickup/internal/core/domain/services"
)

// DeletePickupCommandHandler removes a pickup.
//
// Checks run in this order: the pickup exists (NotFound), the principal owns
// it or it has no owner (Forbidden), it is not completed (Conflict).
// Cancelled pickups may be deleted.
type DeletePickupCommandHandler struct {
	uowFactory PickupUoWFactory
	policy     services.PickupAccessPolicy
}

// NewDeletePickupCommandHandler returns a handler opening one unit of work per command.
func NewDeletePickupCommandHandler(uowFactory PickupUoWFactory) DeletePickupCommandHandler {
	return DeletePickupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewPickupAccessPolicy(),
	}
}

// Handle removes the pickup. Completed pickups are kept and reported as a ConflictError.
func (h DeletePickupCommandHandler) Handle(ctx context.Context, cmd DeletePickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PickupRepository()
	aggregate, err := repo.Get(ctx, cmd.PickupID())
	if err != nil {
		return err
	}

	if err = h.policy.CanModify(cmd.Principal(), aggregate, services.ActionDelete); err != nil {
		return err
	}

	if err = aggregate.ValidateDelete(); err != nil {
		return err
	}

	if err = repo.Delete(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
