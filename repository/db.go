package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the SQLSTATE Postgres reports for unique index conflicts
const uniqueViolationCode = "23505"

var (
	// ErrNotFound is returned when the requested row does not exist
	ErrNotFound = errors.New("not found")

	// ErrUniqueViolation is returned when an insert hits a unique constraint.
	// The original *pgconn.PgError stays reachable through errors.As.
	ErrUniqueViolation = errors.New("unique violation")
)

// DBTX is the subset of pgx used by the repositories.
// *pgxpool.Pool, *pgx.Conn and pgx.Tx all satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// uniqueViolationError keeps both the sentinel and the driver error in the chain
type uniqueViolationError struct {
	pgErr *pgconn.PgError
}

func (e *uniqueViolationError) Error() string {
	return "unique violation: " + e.pgErr.ConstraintName
}

func (e *uniqueViolationError) Is(target error) bool {
	return target == ErrUniqueViolation
}

func (e *uniqueViolationError) Unwrap() error {
	return e.pgErr
}

// translateError maps driver errors onto the repository sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &uniqueViolationError{pgErr: pgErr}
	}
	return err
}
