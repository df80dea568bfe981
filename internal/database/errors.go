package database

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateEntry is returned when an insert violates a unique constraint,
// e.g. a second review for the same (user_id, train_id) pair.
var ErrDuplicateEntry = errors.New("duplicate entry")

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
