package commands_test

import (
	"context"
	"testing"
	"time"

	"wastepickup/internal/core/application/usecases/commands"
	"wastepickup/internal/core/domain/model/kernel"
	"wastepickup/internal/core/domain/model/pickup"
	"wastepickup/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPickupRepository struct{ mock.Mock }

func (m *MockPickupRepository) Add(ctx context.Context, p *pickup.Pickup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupRepository) Get(ctx context.Context, id kernel.UUID) (*pickup.Pickup, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pickup.Pickup); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPickupRepository) Update(ctx context.Context, p *pickup.Pickup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPickupRepository) Delete(ctx context.Context, p *pickup.Pickup) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockPickupUoW struct{ mock.Mock }

func (m *MockPickupUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPickupUoW) PickupRepository() ports.PickupRepository {
	args := m.Called()
	return args.Get(0).(ports.PickupRepository)
}

type MockPickupUoWFactory struct{ mock.Mock }

func (m *MockPickupUoWFactory) Create() commands.PickupUoW {
	args := m.Called()
	return args.Get(0).(commands.PickupUoW)
}

func storedPickup(t *testing.T, owner *string, status pickup.Status) *pickup.Pickup {
	t.Helper()
	p, err := pickup.RestorePickup(pickup.Snapshot{
		ID:            kernel.NewUUID(),
		OwnerID:       owner,
		Name:          "A",
		Address:       "1 Main St",
		ContactNumber: "555",
		PickupDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Items:         "Plastic",
		Status:        status,
		WasteTypes:    []string{},
	})
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string {
	return &s
}

// setupLoad wires factory -> uow -> repo.Get for handlers that load a pickup.
func setupLoad(
	ctx context.Context,
	p *pickup.Pickup,
	getErr error,
) (*MockPickupUoWFactory, *MockPickupUoW, *MockPickupRepository) {
	repo := new(MockPickupRepository)
	uow := new(MockPickupUoW)
	factory := new(MockPickupUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PickupRepository").Return(repo).Once()
	if p != nil {
		repo.On("Get", ctx, p.ID()).Return(p, getErr).Once()
	} else {
		repo.On("Get", ctx, mock.Anything).Return(nil, getErr).Once()
	}
	uow.On("Rollback", ctx).Return(nil).Once()

	return factory, uow, repo
}
