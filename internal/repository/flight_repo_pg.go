package repository

import (
	"context"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/registry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	registry.FlightRegistry
	List(ctx context.Context) ([]domain.Flight, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, alias_flight_number, origin, destination, schedule, aircraft_id`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY schedule`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		flights = append(flights, *f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Get(ctx context.Context, id string) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	f, err := scanFlight(row)
	if err != nil {
		return nil, translateErr(err, registry.FlightCollection, id)
	}
	return f, nil
}

func (r *PGFlightRepository) Add(ctx context.Context, f domain.Flight) error {
	_, err := r.db.Exec(ctx, `INSERT INTO flights (`+flightColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		f.ID, f.FlightNumber, aliases(f), f.Route.Origin, f.Route.Destination, f.Route.Schedule, aircraftID(f))
	return translateErr(err, registry.FlightCollection, f.ID)
}

func (r *PGFlightRepository) Update(ctx context.Context, f domain.Flight) error {
	res, err := r.db.Exec(ctx, `UPDATE flights
		SET flight_number=$2, alias_flight_number=$3, origin=$4, destination=$5, schedule=$6, aircraft_id=$7, updated_at=now()
		WHERE id=$1`,
		f.ID, f.FlightNumber, aliases(f), f.Route.Origin, f.Route.Destination, f.Route.Schedule, aircraftID(f))
	if err != nil {
		return translateErr(err, registry.FlightCollection, f.ID)
	}
	if res.RowsAffected() == 0 {
		return registry.NewNotFoundError(registry.FlightCollection, f.ID)
	}
	return nil
}

func scanFlight(row pgx.Row) (*domain.Flight, error) {
	var (
		f          domain.Flight
		aircraftID *string
	)
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.AliasFlightNumber, &f.Route.Origin, &f.Route.Destination, &f.Route.Schedule, &aircraftID); err != nil {
		return nil, err
	}
	if f.AliasFlightNumber == nil {
		f.AliasFlightNumber = []string{}
	}
	if aircraftID != nil {
		f.AssignAircraft(*aircraftID)
	}
	return &f, nil
}

func aliases(f domain.Flight) []string {
	if f.AliasFlightNumber == nil {
		return []string{}
	}
	return f.AliasFlightNumber
}

func aircraftID(f domain.Flight) *string {
	if f.Aircraft == nil {
		return nil
	}
	id := f.Aircraft.ID
	return &id
}

var _ FlightRepository = (*PGFlightRepository)(nil)
