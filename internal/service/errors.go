package service

import (
	"errors"
	"fmt"

	"github.com/skillforge/journey-service/internal/repository"
)

var (
	// ErrValidation marks missing or malformed required fields
	ErrValidation = errors.New("validation failed")
	// ErrConflict marks a unique-constraint collision on registration
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials covers every credential failure; callers
	// cannot tell an unknown login from a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound covers both absent resources and resources owned by
	// another user
	ErrNotFound = errors.New("resource not found")
	// ErrUnavailable marks storage failures that are safe to retry
	ErrUnavailable = errors.New("storage unavailable")
)

// mapStoreErr translates repository sentinels into the service's error
// taxonomy; anything unrecognized is treated as a transient storage
// failure.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrDuplicate):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
