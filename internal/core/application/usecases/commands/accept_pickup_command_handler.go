package commands

import (
	"context"

	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/domain/services"
)

// AcceptPickupCommandHandler completes a pickup on behalf of a volunteer.
//
// Checks run in this order:
//  1. the principal is authenticated (Unauthenticated)
//  2. the principal is a volunteer (Forbidden)
//  3. the pickup exists (NotFound)
//  4. it is not cancelled or already completed (Conflict)
//
// The role check comes before the lookup, so a non-volunteer never learns
// whether an id exists.
type AcceptPickupCommandHandler struct {
	uowFactory PickupUoWFactory
	policy     services.PickupAccessPolicy
	clock      Clock
}

// NewAcceptPickupCommandHandler creates the handler. A nil clock uses the
// current UTC time.
func NewAcceptPickupCommandHandler(uowFactory PickupUoWFactory, clock Clock) AcceptPickupCommandHandler {
	return AcceptPickupCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewPickupAccessPolicy(),
		clock:      clock,
	}
}

// Handle accepts the pickup and returns its updated state.
func (h AcceptPickupCommandHandler) Handle(ctx context.Context, cmd AcceptPickupCommand) (*pickup.Pickup, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanAccept(cmd.Principal()); err != nil {
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

	if err = aggregate.Accept(cmd.Principal(), h.clock.now()); err != nil {
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
