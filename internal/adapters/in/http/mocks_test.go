package http_test

import (
	"context"

	"wastepickup/internal/core/application/usecases/commands"
	"wastepickup/internal/core/application/usecases/queries"
	"wastepickup/internal/core/domain/model/pickup"

	"github.com/stretchr/testify/mock"
)

type MockCreatePickupHandler struct{ mock.Mock }

func (m *MockCreatePickupHandler) Handle(ctx context.Context, cmd commands.CreatePickupCommand) (*pickup.Pickup, error) {
	args := m.Called(ctx, cmd)
	if p, ok := args.Get(0).(*pickup.Pickup); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCancelPickupHandler struct{ mock.Mock }

func (m *MockCancelPickupHandler) Handle(ctx context.Context, cmd commands.CancelPickupCommand) (*pickup.Pickup, error) {
	args := m.Called(ctx, cmd)
	if p, ok := args.Get(0).(*pickup.Pickup); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockAcceptPickupHandler struct{ mock.Mock }

func (m *MockAcceptPickupHandler) Handle(ctx context.Context, cmd commands.AcceptPickupCommand) (*pickup.Pickup, error) {
	args := m.Called(ctx, cmd)
	if p, ok := args.Get(0).(*pickup.Pickup); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeletePickupHandler struct{ mock.Mock }

func (m *MockDeletePickupHandler) Handle(ctx context.Context, cmd commands.DeletePickupCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockListUserPickupsHandler struct{ mock.Mock }

func (m *MockListUserPickupsHandler) Handle(
	ctx context.Context,
	query queries.ListUserPickupsQuery,
) ([]queries.PickupResponse, error) {
	args := m.Called(ctx, query)
	if list, ok := args.Get(0).([]queries.PickupResponse); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockListAllPickupsHandler struct{ mock.Mock }

func (m *MockListAllPickupsHandler) Handle(
	ctx context.Context,
	query queries.ListAllPickupsQuery,
) ([]queries.PickupResponse, error) {
	args := m.Called(ctx, query)
	if list, ok := args.Get(0).([]queries.PickupResponse); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockListVolunteerPickupsHandler struct{ mock.Mock }

func (m *MockListVolunteerPickupsHandler) Handle(
	ctx context.Context,
	query queries.ListVolunteerPickupsQuery,
) ([]queries.PickupResponse, error) {
	args := m.Called(ctx, query)
	if list, ok := args.Get(0).([]queries.PickupResponse); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGetPickupHandler struct{ mock.Mock }

func (m *MockGetPickupHandler) Handle(ctx context.Context, query queries.GetPickupQuery) (queries.PickupResponse, error) {
	args := m.Called(ctx, query)
	if r, ok := args.Get(0).(queries.PickupResponse); ok {
		return r, args.Error(1)
	}
	return queries.PickupResponse{}, args.Error(1)
}
