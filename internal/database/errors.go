package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when no row matches the requested id or key.
var ErrNotFound = errors.New("not found")

// ErrValidation matches any *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports input the store refused: a taken username, a booking
// for a user that does not exist, or a patch with nothing in it.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// SQLSTATE codes surfaced as domain errors.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
)

// classify turns constraint violations into ValidationErrors and passes
// everything else through untouched.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		if pgErr.ConstraintName == "users_username_key" {
			return &ValidationError{Field: "username", Reason: "already taken", Err: err}
		}
		return &ValidationError{Reason: "duplicate value", Err: err}
	case foreignKeyViolation:
		return &ValidationError{Field: "userId", Reason: "user does not exist", Err: err}
	case notNullViolation:
		return &ValidationError{Field: pgErr.ColumnName, Reason: "required", Err: err}
	}
	return err
}
