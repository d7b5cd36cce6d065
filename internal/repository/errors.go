package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

var (
	// ErrNotFound means the row is absent or not visible to the caller
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate means a unique constraint was violated
	ErrDuplicate = errors.New("record already exists")
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translate maps driver-level failures onto the repository's sentinel
// errors so raw pq errors never cross the package boundary. A foreign
// key violation reads as not-found: the referenced parent is gone.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return ErrDuplicate
		case pgForeignKeyViolation:
			return ErrNotFound
		}
	}
	return fmt.Errorf("database error: %w", err)
}
