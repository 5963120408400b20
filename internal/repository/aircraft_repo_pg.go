package repository

import (
	"context"

	"github.com/Domenick1991/airline/internal/domain"
	"github.com/Domenick1991/airline/internal/registry"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AircraftRepository interface {
	registry.AircraftRegistry
}

type PGAircraftRepository struct {
	db *pgxpool.Pool
}

func NewAircraftRepository(db *pgxpool.Pool) AircraftRepository {
	return &PGAircraftRepository{db: db}
}

func (r *PGAircraftRepository) Get(ctx context.Context, id string) (*domain.Aircraft, error) {
	row := r.db.QueryRow(ctx, `SELECT id, first_class_seats, business_class_seats, economy_class_seats FROM aircraft WHERE id=$1`, id)
	var a domain.Aircraft
	if err := row.Scan(&a.ID, &a.FirstClassSeats, &a.BusinessClassSeats, &a.EconomyClassSeats); err != nil {
		return nil, translateErr(err, registry.AircraftCollection, id)
	}
	return &a, nil
}

func (r *PGAircraftRepository) Add(ctx context.Context, a domain.Aircraft) error {
	_, err := r.db.Exec(ctx, `INSERT INTO aircraft (id, first_class_seats, business_class_seats, economy_class_seats) VALUES ($1, $2, $3, $4)`,
		a.ID, a.FirstClassSeats, a.BusinessClassSeats, a.EconomyClassSeats)
	return translateErr(err, registry.AircraftCollection, a.ID)
}

func (r *PGAircraftRepository) Update(ctx context.Context, a domain.Aircraft) error {
	res, err := r.db.Exec(ctx, `UPDATE aircraft SET first_class_seats=$2, business_class_seats=$3, economy_class_seats=$4, updated_at=now() WHERE id=$1`,
		a.ID, a.FirstClassSeats, a.BusinessClassSeats, a.EconomyClassSeats)
	if err != nil {
		return translateErr(err, registry.AircraftCollection, a.ID)
	}
	if res.RowsAffected() == 0 {
		return registry.NewNotFoundError(registry.AircraftCollection, a.ID)
	}
	return nil
}

var _ AircraftRepository = (*PGAircraftRepository)(nil)
