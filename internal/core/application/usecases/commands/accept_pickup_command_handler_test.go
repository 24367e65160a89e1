package commands_test

import (
	"testing"
	"time"

	"wastepickup/internal/core/application/usecases/commands"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAcceptPickupCommandHandler_Handle(t *testing.T) {
	volunteer := kernel.NewPrincipal("v1", kernel.RoleVolunteer)
	now := time.Date(2024, 6, 2, 9, 30, 0, 0, time.UTC)
	clock := commands.Clock(func() time.Time { return now })

	t.Run("should complete a scheduled pickup", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, strPtr("u1"), pickup.Scheduled)
		factory, uow, repo := setupLoad(ctx, p, nil)
		repo.On("Update", ctx, p).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()

		cmd, _ := commands.NewAcceptPickupCommand(volunteer, p.ID())
		got, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, pickup.Completed, got.Status())
		assert.Equal(t, "v1", *got.AssignedVolunteerID())
		assert.Equal(t, now, *got.CompletedAt())
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should reject the anonymous principal without loading", func(t *testing.T) {
		factory := new(MockPickupUoWFactory)

		cmd, _ := commands.NewAcceptPickupCommand(kernel.Anonymous(), kernel.NewUUID())
		_, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should forbid non-volunteers regardless of pickup state", func(t *testing.T) {
		factory := new(MockPickupUoWFactory)

		for _, role := range []kernel.Role{kernel.RoleUser, kernel.RoleAdmin, ""} {
			cmd, _ := commands.NewAcceptPickupCommand(kernel.NewPrincipal("u1", role), kernel.NewUUID())
			_, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(t.Context(), cmd)

			assert.ErrorIs(t, err, errs.ErrForbidden)
		}
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("should return not found for a volunteer", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		factory, _, repo := setupLoad(ctx, nil, errs.NewObjectNotFoundError("pickup", id))

		cmd, _ := commands.NewAcceptPickupCommand(volunteer, id)
		_, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should conflict on cancelled", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, nil, pickup.Cancelled)
		factory, _, repo := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewAcceptPickupCommand(volunteer, p.ID())
		_, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), pickup.MsgCannotAcceptCancel)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("should conflict on already completed", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, nil, pickup.Completed)
		factory, _, _ := setupLoad(ctx, p, nil)

		cmd, _ := commands.NewAcceptPickupCommand(volunteer, p.ID())
		_, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Contains(t, err.Error(), pickup.MsgAlreadyCompleted)
	})

	t.Run("should lose a race against a concurrent cancel", func(t *testing.T) {
		ctx := t.Context()
		p := storedPickup(t, nil, pickup.Scheduled)
		factory, uow, repo := setupLoad(ctx, p, nil)
		repo.On("Update", ctx, p).Return(errs.NewConflictError("pickup was modified concurrently")).Once()

		cmd, _ := commands.NewAcceptPickupCommand(volunteer, p.ID())
		_, err := commands.NewAcceptPickupCommandHandler(factory, clock).Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrConflict)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
