package sampling

import (
	"errors"
)

// Common sentinel errors
var (
	// ErrInvalidWeights is returned by the weighted sampler when the item
	// sequence is empty, contains a negative weight, or has a
	// non-positive total weight.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrInvalidParameter is returned by the duration sampler when the
	// mean duration is not positive.
	ErrInvalidParameter = errors.New("invalid parameter")
)
