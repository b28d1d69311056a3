package db

import (
	"errors"

	"github.com/jackc/pgconn"
)

const (
	codeUniqueViolation = "23505"
	codeInvalidText     = "22P02"
)

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsInvalidTextRepresentation reports malformed input such as a non-uuid id.
func IsInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidText
}
