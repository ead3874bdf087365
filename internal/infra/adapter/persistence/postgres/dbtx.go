// Package postgres provides PostgreSQL implementations of the repository
// interfaces.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"pressroom/internal/domain/entity"
)

// DBTX is the query surface the repositories need. Both *sql.DB and the
// circuit breaker wrapper in internal/resilience/circuitbreaker satisfy it.
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// mapDuplicate converts a unique constraint violation into the domain
// duplicate error. Other errors pass through untouched.
func mapDuplicate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return entity.ErrDuplicate
	}
	return err
}
