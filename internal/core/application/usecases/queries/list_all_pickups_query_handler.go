package queries

import (
	"context"

	"wastepickup/internal/core/ports"
)

// ListAllPickupsQueryHandler returns all pickups ordered by status priority,
// then pickup date ascending.
type ListAllPickupsQueryHandler struct {
	repo ports.PickupQueryRepository
}

// NewListAllPickupsQueryHandler returns a handler reading from repo.
func NewListAllPickupsQueryHandler(repo ports.PickupQueryRepository) ListAllPickupsQueryHandler {
	return ListAllPickupsQueryHandler{repo: repo}
}

// Handle lists every pickup by status priority, then pickup date.
func (h ListAllPickupsQueryHandler) Handle(ctx context.Context, query ListAllPickupsQuery) ([]PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pickups, err := h.repo.ListByPriority(ctx, ports.PickupFilter{})
	if err != nil {
		return nil, err
	}

	return newPickupResponses(pickups), nil
}
