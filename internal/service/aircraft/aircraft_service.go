package aircraft

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/registry"
)

type AircraftUseCase interface {
	Register(ctx context.Context, aircraft domain.Aircraft) error
	Get(ctx context.Context, id string) (*domain.Aircraft, error)
}

type AircraftService struct {
	aircraft registry.AircraftRegistry
	logger   *slog.Logger
}

func NewAircraftService(aircraft registry.AircraftRegistry, logger *slog.Logger) *AircraftService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AircraftService{aircraft: aircraft, logger: logger}
}

func (s *AircraftService) Register(ctx context.Context, a domain.Aircraft) error {
	if err := validate(a); err != nil {
		return err
	}
	if err := s.aircraft.Add(ctx, a); err != nil {
		s.logger.WarnContext(ctx, "register aircraft failed", "operation", "register_aircraft", "aircraft_id", a.ID, "error", err)
		return domain.NewError(domain.ErrRegistry, err)
	}
	s.logger.InfoContext(ctx, "aircraft registered", "operation", "register_aircraft", "outcome", "success", "aircraft_id", a.ID)
	return nil
}

func (s *AircraftService) Get(ctx context.Context, id string) (*domain.Aircraft, error) {
	a, err := s.aircraft.Get(ctx, id)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return nil, domain.NewError(domain.ErrAircraftNotFound, err)
		}
		return nil, domain.NewError(domain.ErrRegistry, err)
	}
	return a, nil
}

func validate(a domain.Aircraft) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("%w: aircraft id is required", domain.ErrInvalidAircraft)
	}
	if a.FirstClassSeats < 0 || a.BusinessClassSeats < 0 || a.EconomyClassSeats < 0 {
		return fmt.Errorf("%w: seat counts must not be negative", domain.ErrInvalidAircraft)
	}
	return nil
}

var _ AircraftUseCase = (*AircraftService)(nil)
