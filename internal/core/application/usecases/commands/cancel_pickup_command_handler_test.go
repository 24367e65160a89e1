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

func TestCancelPickupCommandHandler_Handle(t *testing.T) {
	owner := kernel.NewPrincipal("u1", kernel.RoleUser)

	t.Run("should cancel an owned scheduled pickup", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Scheduled)
		factory, uow, repo := setupLoad(ctx, p, nil)
		repo.On("Update", ctx, p).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, _ := commands.NewCancelPickupCommand(owner, p.ID())
		got, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, pickup.Cancelled, got.Status())
		assert.Nil(t, got.CompletedAt())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should let anyone cancel an ownerless pickup", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, nil, pickup.Scheduled)
		factory, uow, repo := setupLoad(ctx, p, nil)
		repo.On("Update", ctx, p).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, _ := commands.NewCancelPickupCommand(kernel.NewPrincipal("u2", kernel.RoleUser), p.ID())
		got, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, pickup.Cancelled, got.Status())
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		factory, uow, repo := setupLoad(ctx, nil, errs.NewObjectNotFoundError("pickup", id))

		cmd, _ := commands.NewCancelPickupCommand(owner, id)
		_, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should forbid cancelling another user's pickup before checking status", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Completed)
		factory, _, repo := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewCancelPickupCommand(kernel.NewPrincipal("u2", kernel.RoleUser), p.ID())
		_, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrForbidden)
		assert.Contains(t, err.Error(), "you can only cancel your own pickups")
		assert.Equal(t, pickup.Completed, p.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should conflict on already cancelled", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Cancelled)
		factory, _, _ := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewCancelPickupCommand(owner, p.ID())
		_, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), pickup.MsgAlreadyCancelled)
	})

	t.Run("should conflict on completed", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Completed)
		factory, _, _ := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewCancelPickupCommand(owner, p.ID())
		_, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), pickup.MsgCannotCancelDone)
	})

	t.Run("should surface a concurrent update conflict", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Scheduled)
		factory, uow, repo := setupLoad(ctx, p, nil)
		repo.On("Update", ctx, p).Return(errs.NewConflictError("pickup was modified concurrently")).Once()

		cmd, _ := commands.NewCancelPickupCommand(owner, p.ID())
		_, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should return begin errors", func(t *testing.T) {
		ctx := t.Context()
		uow := new(MockPickupUoW)
		factory := new(MockPickupUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		cmd, _ := commands.NewCancelPickupCommand(owner, kernel.NewUUID())
		_, err := commands.NewCancelPickupCommandHandler(factory).Handle(ctx, cmd)

		require.Error(t, err)
		uow.AssertExpectations(t)
	})
}
