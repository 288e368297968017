package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("row not found")
	// ErrDuplicate is returned when an insert hits a unique constraint. It is
	// the authoritative already-exists signal; the read-then-insert pre-checks
	// in the services are only a courtesy and can race.
	ErrDuplicate = errors.New("duplicate row")
)

const uniqueViolation = "23505"

func translateInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
