package queries_test

import (
	"context"
	"testing"
	"time"

	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPickupQueryRepository struct{ mock.Mock }

func (m *MockPickupQueryRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pickup.Pickup); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPickupQueryRepository) ListByPriority(
	ctx context.Context,
	filter ports.PickupFilter,
) ([]*pickup.Pickup, error) {
	args := m.Called(ctx, filter)
	if ps, ok := args.Get(0).([]*pickup.Pickup); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPickupQueryRepository) ListAssignedToVolunteer(
	ctx context.Context,
	volunteerID string,
) ([]*pickup.Pickup, error) {
	args := m.Called(ctx, volunteerID)
	if ps, ok := args.Get(0).([]*pickup.Pickup); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPickupQueryRepository) CountByStatus(ctx context.Context) (map[pickup.Status]int64, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).(map[pickup.Status]int64); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func storedPickup(t *testing.T, owner *string, status pickup.Status, date time.Time) *pickup.Pickup {
	t.Helper()
	p, err := pickup.RestorePickup(pickup.Snapshot{
		ID:            kernel.NewUUID(),
		OwnerID:       owner,
		Name:          "A",
		Address:       "1 Main St",
		ContactNumber: "555",
		PickupDate:    date,
		Items:         "Plastic",
		Status:        status,
	})
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string {
	return &s
}
