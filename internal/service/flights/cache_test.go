package flights

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCache mirrors the Redis cache: SET overwrites, SET NX only fills.
type memoryCache struct {
	mu    sync.Mutex
	items map[string]domain.Flight
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string]domain.Flight)}
}

func (c *memoryCache) GetFlight(_ context.Context, id string) (*domain.Flight, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.items[id]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (c *memoryCache) SetFlight(_ context.Context, flight domain.Flight) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[flight.ID] = flight
	return nil
}

func (c *memoryCache) SetFlightIfAbsent(_ context.Context, flight domain.Flight) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[flight.ID]; !ok {
		c.items[flight.ID] = flight
	}
	return nil
}

func (c *memoryCache) InvalidateFlight(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

// pausingRegistry holds the first Get after it has read from the store until
// release is closed.
type pausingRegistry struct {
	registry.FlightRegistry
	paused  atomic.Bool
	fetched chan struct{}
	release chan struct{}
}

func (r *pausingRegistry) Get(ctx context.Context, id string) (*domain.Flight, error) {
	f, err := r.FlightRegistry.Get(ctx, id)
	if r.paused.CompareAndSwap(false, true) {
		close(r.fetched)
		<-r.release
	}
	return f, err
}

func TestFlightService_GetFlight_SlowReadDoesNotOverwriteAssignment(t *testing.T) {
	ctx := context.Background()
	flights := registry.NewMemoryFlightRegistry()
	aircraft := registry.NewMemoryAircraftRegistry()

	flight := domain.NewFlight("SY001-01-15-29", "SY001", domain.Route{Origin: "SYD", Destination: "MEL", Schedule: testSchedule})
	require.NoError(t, flights.Add(ctx, flight))
	require.NoError(t, aircraft.Add(ctx, domain.Aircraft{ID: "Aircraft-001"}))

	slow := &pausingRegistry{FlightRegistry: flights, fetched: make(chan struct{}), release: make(chan struct{})}
	service := newTestService(slow, aircraft, nil, WithCache(newMemoryCache()))

	readDone := make(chan *domain.Flight, 1)
	go func() {
		f, err := service.GetFlight(ctx, flight.ID)
		assert.NoError(t, err)
		readDone <- f
	}()

	select {
	case <-slow.fetched:
	case <-time.After(5 * time.Second):
		t.Fatal("read never reached the registry")
	}

	require.NoError(t, service.AssignAircraft(ctx, flight.ID, "Aircraft-001"))
	close(slow.release)

	stale := <-readDone
	assert.False(t, stale.Assigned())

	got, err := service.GetFlight(ctx, flight.ID)
	require.NoError(t, err)
	assert.Equal(t, "Aircraft-001", got.AircraftID())
}

func TestFlightService_ReassignRefreshesCache(t *testing.T) {
	ctx := context.Background()
	flights := registry.NewMemoryFlightRegistry()
	aircraft := registry.NewMemoryAircraftRegistry()
	service := newTestService(flights, aircraft, nil, WithCache(newMemoryCache()))

	flightID, err := service.CreateFlight(ctx, sy001())
	require.NoError(t, err)
	require.NoError(t, aircraft.Add(ctx, domain.Aircraft{ID: "Aircraft-001"}))
	require.NoError(t, aircraft.Add(ctx, domain.Aircraft{ID: "Aircraft-002"}))

	got, err := service.GetFlight(ctx, flightID)
	require.NoError(t, err)
	assert.False(t, got.Assigned())

	require.NoError(t, service.AssignAircraft(ctx, flightID, "Aircraft-001"))
	require.NoError(t, service.AssignAircraft(ctx, flightID, "Aircraft-002"))

	got, err = service.GetFlight(ctx, flightID)
	require.NoError(t, err)
	assert.Equal(t, "Aircraft-002", got.AircraftID())
}
