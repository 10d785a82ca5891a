package dbx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// pgUniqueViolation is the SQLSTATE raised on a unique constraint conflict.
	pgUniqueViolation = "23505"
	// pgInvalidText is raised when a value cannot be cast to the column type,
	// e.g. a malformed UUID.
	pgInvalidText = "22P02"
)

// IsUniqueViolation reports whether err carries a PostgreSQL unique_violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsInvalidText reports whether err carries a PostgreSQL
// invalid_text_representation.
func IsInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidText
}
