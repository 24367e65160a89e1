package queries

import (
	"context"

	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/ports"
)

// CountPickupsByStatusQueryHandler reports pickup counts keyed by status
// name. Every valid status is present, with zero when no pickup has it;
// unrecognised stored statuses are reported under their raw value.
type CountPickupsByStatusQueryHandler struct {
	repo ports.PickupQueryRepository
}

// NewCountPickupsByStatusQueryHandler returns a handler reading from repo.
func NewCountPickupsByStatusQueryHandler(repo ports.PickupQueryRepository) CountPickupsByStatusQueryHandler {
	return CountPickupsByStatusQueryHandler{repo: repo}
}

// Handle returns the number of stored pickups per status.
func (h CountPickupsByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountPickupsByStatusQuery,
) (map[string]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts, err := h.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(counts)+len(pickup.Statuses()))
	for _, s := range pickup.Statuses() {
		out[s.String()] = 0
	}
	for s, n := range counts {
		out[s.String()] += n
	}
	return out, nil
}
