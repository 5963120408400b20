package flights

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/events"
	"github.com/Domenick1991/airline/internal/registry"
)

type FlightUseCase interface {
	CreateFlight(ctx context.Context, input CreateFlightInput) (string, error)
	AssignAircraft(ctx context.Context, flightID, aircraftID string) error
	GetFlight(ctx context.Context, flightID string) (*domain.Flight, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
}

var ErrListUnsupported = errors.New("flight registry cannot list flights")

type CreateFlightInput struct {
	FlightNumber string    `json:"flight_number"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Schedule     time.Time `json:"schedule"`
}

// FlightCache is an optional read-through cache for GetFlight.
type FlightCache interface {
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
	SetFlight(ctx context.Context, flight domain.Flight) error
	SetFlightIfAbsent(ctx context.Context, flight domain.Flight) error
	InvalidateFlight(ctx context.Context, id string) error
}

type FlightService struct {
	flights  registry.FlightRegistry
	aircraft registry.AircraftRegistry
	emitter  events.Emitter
	cache    FlightCache
	now      func() time.Time
	logger   *slog.Logger
}

type FlightServiceOption func(*FlightService)

func WithCache(cache FlightCache) FlightServiceOption {
	return func(s *FlightService) {
		s.cache = cache
	}
}

func WithClock(now func() time.Time) FlightServiceOption {
	return func(s *FlightService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger *slog.Logger) FlightServiceOption {
	return func(s *FlightService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewFlightService(
	flights registry.FlightRegistry,
	aircraft registry.AircraftRegistry,
	emitter events.Emitter,
	opts ...FlightServiceOption,
) *FlightService {
	s := &FlightService{
		flights:  flights,
		aircraft: aircraft,
		emitter:  emitter,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateFlight validates the schedule, stores a new unassigned flight and
// emits FlightCreated once the registry has accepted it.
func (s *FlightService) CreateFlight(ctx context.Context, input CreateFlightInput) (string, error) {
	if err := domain.ValidateSchedule(input.Schedule, s.now()); err != nil {
		s.logger.InfoContext(ctx, "create flight rejected",
			"operation", "create_flight", "outcome", "schedule_in_past", "flight_number", input.FlightNumber)
		return "", err
	}

	flightID := domain.GenerateFlightID(input.FlightNumber, input.Schedule)
	flight := domain.NewFlight(flightID, input.FlightNumber, domain.Route{
		Origin:      input.Origin,
		Destination: input.Destination,
		Schedule:    input.Schedule,
	})

	if err := s.flights.Add(ctx, flight); err != nil {
		s.logger.WarnContext(ctx, "create flight failed",
			"operation", "create_flight", "outcome", "registry_error", "flight_id", flightID, "error", err)
		return "", domain.NewError(domain.ErrRegistry, err)
	}

	s.emit(ctx, domain.NewFlightCreated(flightID))
	s.logger.InfoContext(ctx, "flight created", "operation", "create_flight", "outcome", "success", "flight_id", flightID)
	return flightID, nil
}

// AssignAircraft points the flight at an existing aircraft, overwriting any
// previous assignment.
func (s *FlightService) AssignAircraft(ctx context.Context, flightID, aircraftID string) error {
	flight, err := s.flights.Get(ctx, flightID)
	if err != nil {
		return s.lookupFailed(ctx, err, domain.ErrFlightNotFound, flightID, aircraftID)
	}
	if _, err := s.aircraft.Get(ctx, aircraftID); err != nil {
		return s.lookupFailed(ctx, err, domain.ErrAircraftNotFound, flightID, aircraftID)
	}

	previous := flight.AircraftID()
	flight.AssignAircraft(aircraftID)

	if err := s.flights.Update(ctx, *flight); err != nil {
		s.logger.WarnContext(ctx, "assign aircraft failed",
			"operation", "assign_aircraft", "outcome", "registry_error", "flight_id", flightID, "aircraft_id", aircraftID, "error", err)
		return domain.NewError(domain.ErrRegistry, err)
	}

	s.writeThrough(ctx, *flight)

	s.emit(ctx, domain.NewAircraftAssigned(flightID, aircraftID))
	s.logger.InfoContext(ctx, "aircraft assigned",
		"operation", "assign_aircraft", "outcome", "success", "flight_id", flightID, "aircraft_id", aircraftID, "previous_aircraft_id", previous)
	return nil
}

func (s *FlightService) GetFlight(ctx context.Context, flightID string) (*domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlight(ctx, flightID); err == nil && cached != nil {
			return cached, nil
		}
	}

	flight, err := s.flights.Get(ctx, flightID)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, domain.NewError(domain.ErrFlightNotFound, err)
		}
		return nil, domain.NewError(domain.ErrRegistry, err)
	}
	if s.cache != nil {
		// Only fill an empty slot: an assignment that finished while this read
		// was in flight has already written the newer flight.
		_ = s.cache.SetFlightIfAbsent(ctx, *flight)
	}
	return flight, nil
}

// writeThrough stores the updated flight in the cache. If that fails the entry
// is dropped so no older copy is served.
func (s *FlightService) writeThrough(ctx context.Context, flight domain.Flight) {
	if s.cache == nil {
		return
	}
	err := s.cache.SetFlight(ctx, flight)
	if err == nil {
		return
	}
	s.logger.WarnContext(ctx, "flight cache write failed", "flight_id", flight.ID, "error", err)
	if err := s.cache.InvalidateFlight(ctx, flight.ID); err != nil {
		s.logger.WarnContext(ctx, "flight cache invalidation failed", "flight_id", flight.ID, "error", err)
	}
}

// ListFlights is served straight from the registry, bypassing the cache.
func (s *FlightService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	lister, ok := s.flights.(registry.Lister[domain.Flight])
	if !ok {
		return nil, ErrListUnsupported
	}
	flights, err := lister.List(ctx)
	if err != nil {
		return nil, domain.NewError(domain.ErrRegistry, err)
	}
	return flights, nil
}

func (s *FlightService) lookupFailed(ctx context.Context, err, notFound error, flightID, aircraftID string) error {
	kind := domain.ErrRegistry
	if errors.Is(err, registry.ErrNotFound) {
		kind = notFound
	}
	s.logger.InfoContext(ctx, "assign aircraft rejected",
		"operation", "assign_aircraft", "outcome", kind.Error(), "flight_id", flightID, "aircraft_id", aircraftID)
	return domain.NewError(kind, err)
}

func (s *FlightService) emit(ctx context.Context, event domain.Event) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "event emission failed", "event_type", event.EventType(), "flight_id", event.FlightKey(), "error", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
