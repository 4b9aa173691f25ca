package my_errors

import (
	"errors"
	"fmt"
)

// Error categories. Every business error wraps exactly one category so that
// handlers can map it to an HTTP status with errors.Is without knowing the
// specific sentinel.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrStore      = errors.New("store error")
)

// Sentinel my_errors for business logic
var (
	// Score my_errors
	ErrTeamRequired      = fmt.Errorf("teamId is required: %w", ErrValidation)
	ErrNonPositivePoints = fmt.Errorf("points must be a positive integer: %w", ErrValidation)
	ErrActorRequired     = fmt.Errorf("actor identity is required: %w", ErrValidation)

	// Team my_errors
	ErrTeamNameRequired  = fmt.Errorf("team name is required: %w", ErrValidation)
	ErrTeamNotFound      = fmt.Errorf("team not found: %w", ErrNotFound)
	ErrTeamAlreadyExists = fmt.Errorf("team name already exists: %w", ErrConflict)
	ErrTeamHasAwards     = fmt.Errorf("team has recorded awards and cannot be deleted: %w", ErrConflict)

	// Event my_errors
	ErrUnknownEventType = fmt.Errorf("unknown event type: %w", ErrValidation)

	// Auth my_errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// StoreFailure wraps an infrastructure error from the storage layer so it
// carries the ErrStore category alongside the original cause.
func StoreFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
