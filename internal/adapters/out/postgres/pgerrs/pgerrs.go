// Package pgerrs translates PostgreSQL constraint violations into domain errors.
package pgerrs

import (
	"errors"

	"printshop/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
	uniqueViolation     = "23505"
)

// Translate maps constraint violations to a ValueIsInvalidError on field.
// Any other error is returned unchanged.
func Translate(err error, field string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case foreignKeyViolation, checkViolation, uniqueViolation:
		return errs.NewValueIsInvalidErrorWithCause(field, errors.New(pgErr.Message))
	default:
		return err
	}
}
