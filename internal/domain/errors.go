package domain

import "errors"

// Domain errors represent error conditions in the friendship domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrSaveLimitReached is returned when a save targets a new slot while
	// the slot count is already at the configured maximum.
	ErrSaveLimitReached = errors.New("friendship: save slot limit reached")

	// ErrSlotNotFound is returned when a slot ID has no stored save.
	ErrSlotNotFound = errors.New("friendship: save slot not found")

	// ErrLoadInProgress is returned when a save could not start because a
	// load was still running after all deferral attempts.
	ErrLoadInProgress = errors.New("friendship: load in progress")

	// ErrMalformedSnapshot is returned when a stored blob cannot be split
	// or decoded. The in-memory game state is left untouched.
	ErrMalformedSnapshot = errors.New("friendship: malformed snapshot")

	// ErrStaleCompletion is returned when an operation finishes after a
	// newer request of the same kind has been issued.
	ErrStaleCompletion = errors.New("friendship: stale request completion")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("friendship: invalid configuration")
)
