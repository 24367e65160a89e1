package queries

import (
	"context"

	"wastepickup/internal/core/domain/services"
	"wastepickup/internal/core/ports"
)

// ListUserPickupsQueryHandler returns a principal's pickups ordered by status
// priority, then pickup date ascending.
type ListUserPickupsQueryHandler struct {
	repo   ports.PickupQueryRepository
	policy services.PickupAccessPolicy
}

// NewListUserPickupsQueryHandler returns a handler reading from repo.
func NewListUserPickupsQueryHandler(repo ports.PickupQueryRepository) ListUserPickupsQueryHandler {
	return ListUserPickupsQueryHandler{repo: repo, policy: services.NewPickupAccessPolicy()}
}

// Handle returns *errs.UnauthenticatedError for the anonymous principal.
func (h ListUserPickupsQueryHandler) Handle(
	ctx context.Context,
	query ListUserPickupsQuery,
) ([]PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if err := h.policy.RequireAuthenticated(principal, "list own pickups"); err != nil {
		return nil, err
	}

	pickups, err := h.repo.ListByPriority(ctx, ports.PickupFilter{
		OwnerID:          principal.OwnerRef(),
		IncludeOwnerless: true,
	})
	if err != nil {
		return nil, err
	}

	return newPickupResponses(pickups), nil
}
