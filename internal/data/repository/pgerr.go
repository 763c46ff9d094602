package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// IsForeignKeyViolation reports whether err is a referential
// integrity failure (RESTRICT on delete, missing parent on insert).
func IsForeignKeyViolation(err error) bool {
	return isPgErr(err, pgForeignKeyViolation)
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	return isPgErr(err, pgUniqueViolation)
}

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
