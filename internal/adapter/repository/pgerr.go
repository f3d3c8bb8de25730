package repository

import (
	stdErrors "errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meetpulse-team/meetpulse/errors"
)

// Postgres error codes the repositories map onto application errors.
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
	pgCodeInsufficientPrivs   = "42501"
)

// mapError translates engine errors into AppErrors. An insufficient
// privilege error on a row-restricted table is the WITH CHECK failure the
// policies raise when the inserted row's identity column does not match
// app.current_name.
func mapError(table, operation string, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if stdErrors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeInsufficientPrivs:
			return errors.ErrPolicyViolation(table, err)
		case pgCodeUniqueViolation:
			return errors.ErrDBConstraintViolation(pgErr.ConstraintName, err)
		case pgCodeForeignKeyViolation:
			return errors.ErrDBConstraintViolation(pgErr.ConstraintName, err)
		}
	}
	return errors.ErrDBQueryFailed(operation, err)
}
