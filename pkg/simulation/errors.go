package simulation

import (
	"errors"
)

// Common sentinel errors
var (
	// ErrDidNotTerminate is returned when a trial exceeds the configured
	// hop-count safety limit. The trial is discarded, never truncated.
	ErrDidNotTerminate = errors.New("simulation did not terminate within hop limit")

	// ErrInvalidCount is returned when a requested population size is
	// negative.
	ErrInvalidCount = errors.New("population count must be non-negative")
)
