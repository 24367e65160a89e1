package queries

import (
	"context"

	"wastepickup/internal/core/ports"
)

// GetPickupQueryHandler loads a single pickup. Reads are not restricted to the owner.
type GetPickupQueryHandler struct {
	repo ports.PickupQueryRepository
}

// NewGetPickupQueryHandler returns a handler reading from repo.
func NewGetPickupQueryHandler(repo ports.PickupQueryRepository) GetPickupQueryHandler {
	return GetPickupQueryHandler{repo: repo}
}

// Handle returns *errs.ObjectNotFoundError for an unknown id.
func (h GetPickupQueryHandler) Handle(ctx context.Context, query GetPickupQuery) (PickupResponse, error) {
	if err := query.Validate(); err != nil {
		return PickupResponse{}, err
	}

	p, err := h.repo.Get(ctx, query.PickupID())
	if err != nil {
		return PickupResponse{}, err
	}

	return NewPickupResponse(p), nil
}
