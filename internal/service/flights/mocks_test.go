package flights

import (
	"context"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockFlightRegistry struct {
	mock.Mock
}

func (m *MockFlightRegistry) Get(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRegistry) Add(ctx context.Context, flight domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRegistry) Update(ctx context.Context, flight domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

type MockAircraftRegistry struct {
	mock.Mock
}

func (m *MockAircraftRegistry) Get(ctx context.Context, id string) (*domain.Aircraft, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Aircraft), args.Error(1)
}

func (m *MockAircraftRegistry) Add(ctx context.Context, aircraft domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

func (m *MockAircraftRegistry) Update(ctx context.Context, aircraft domain.Aircraft) error {
	args := m.Called(ctx, aircraft)
	return args.Error(0)
}

type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockFlightCache struct {
	mock.Mock
}

func (m *MockFlightCache) GetFlight(ctx context.Context, id string) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightCache) SetFlight(ctx context.Context, flight domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightCache) SetFlightIfAbsent(ctx context.Context, flight domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightCache) InvalidateFlight(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
