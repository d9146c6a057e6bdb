package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

type ErrorKind string

const (
	KindNotFound            ErrorKind = "not-found"
	KindConstraintViolation ErrorKind = "constraint-violation"
	KindUnavailable         ErrorKind = "unavailable"
)

// StorageError classifies a persistent-store failure. The gateway never
// retries; callers decide what the classification means for their response.
type StorageError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// classify wraps a pgx error into a StorageError. No-rows maps to not-found,
// integrity errors (SQLSTATE class 23) to constraint-violation, everything
// else to unavailable.
func classify(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return &StorageError{Kind: KindNotFound, Op: op, Err: ErrNotFound}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return &StorageError{Kind: KindConstraintViolation, Op: op, Err: err}
	}

	return &StorageError{Kind: KindUnavailable, Op: op, Err: err}
}
