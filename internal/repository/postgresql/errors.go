package postgresql

import (
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// constraintViolation returns the violated constraint name when err is a
// PostgreSQL error with the given SQLSTATE.
func constraintViolation(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func isUniqueViolation(err error) (string, bool) {
	return constraintViolation(err, codeUniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	_, ok := constraintViolation(err, codeForeignKeyViolation)
	return ok
}

// newID returns a time-ordered UUIDv7 primary key.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
