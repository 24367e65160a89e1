package queries

import (
	"context"

	"wastepickup/internal/core/domain/services"
	"wastepickup/internal/core/ports"
)

// ListVolunteerPickupsQueryHandler returns the pickups assigned to a
// volunteer, newest pickup date first. The role is not checked: a principal
// who was never assigned anything gets an empty list.
type ListVolunteerPickupsQueryHandler struct {
	repo   ports.PickupQueryRepository
	policy services.PickupAccessPolicy
}

// NewListVolunteerPickupsQueryHandler returns a handler reading from repo.
func NewListVolunteerPickupsQueryHandler(repo ports.PickupQueryRepository) ListVolunteerPickupsQueryHandler {
	return ListVolunteerPickupsQueryHandler{repo: repo, policy: services.NewPickupAccessPolicy()}
}

// Handle lists the pickups assigned to the calling volunteer, newest pickup date first.
func (h ListVolunteerPickupsQueryHandler) Handle(
	ctx context.Context,
	query ListVolunteerPickupsQuery,
) ([]PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	principal := query.Principal()
	if err := h.policy.RequireAuthenticated(principal, "list assigned pickups"); err != nil {
		return nil, err
	}

	pickups, err := h.repo.ListAssignedToVolunteer(ctx, principal.ID())
	if err != nil {
		return nil, err
	}

	return newPickupResponses(pickups), nil
}
