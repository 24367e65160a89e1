package commands_test

import (
	"errors"
	"testing"

	"wastepickup/internal/core/application/usecases/commands"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeletePickupCommandHandler_Handle(t *testing.T) {
	owner := kernel.NewPrincipal("u1", kernel.RoleUser)

	for _, status := range []pickup.Status{pickup.Scheduled, pickup.Cancelled} {
		t.Run("should delete a "+status.String()+" pickup", func(t *testing.T) {
			ctx := t.Context()
			p := storedPickup(t, strPtr("u1"), status)
			factory, uow, repo := setupLoad(ctx, p, nil)
			repo.On("Delete", ctx, p).Return(nil).Once()
			uow.On("Commit", ctx).Return(nil).Once()

			cmd, _ := commands.NewDeletePickupCommand(owner, p.ID())
			err := commands.NewDeletePickupCommandHandler(factory).Handle(ctx, cmd)

			require.NoError(t, err)
			repo.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}

	t.Run("should conflict on completed", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Completed)
		factory, _, repo := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewDeletePickupCommand(owner, p.ID())
		err := commands.NewDeletePickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), pickup.MsgCannotDeleteDone)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should forbid deleting another user's pickup", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Scheduled)
		factory, _, repo := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewDeletePickupCommand(kernel.NewPrincipal("u2", kernel.RoleAdmin), p.ID())
		err := commands.NewDeletePickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "you can only delete your own pickups")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		factory, _, _ := setupLoad(ctx, nil, errs.NewObjectNotFoundError("pickup", id))

		cmd, _ := commands.NewDeletePickupCommand(owner, id)
		err := commands.NewDeletePickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should return store errors from delete", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, nil, pickup.Scheduled)
		factory, uow, repo := setupLoad(ctx, p, nil)
		repo.On("Delete", ctx, p).Return(errs.NewStoreError("delete pickup", errors.New("timeout"))).Once()

		cmd, _ := commands.NewDeletePickupCommand(owner, p.ID())
		err := commands.NewDeletePickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrStore)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
