package repository

import (
	"errors"

	"github.com/Domenick1991/airline/internal/registry"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// translateErr maps driver errors onto the registry error contract.
func translateErr(err error, collection, id string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return registry.NewNotFoundError(collection, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return registry.NewDuplicateError(collection, id)
	}
	return err
}
