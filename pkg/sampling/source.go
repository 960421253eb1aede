package sampling

import (
	"math/rand"
	"time"
)

// Source yields uniform variates in [0, 1). It is the single point where
// randomness enters the engine, so tests can substitute a deterministic
// implementation.
//
// Implementations are not required to be safe for concurrent use; give
// each worker its own Source, or serialize access externally.
type Source interface {
	Float64() float64
}

// NewSource returns a Source backed by math/rand with the given seed.
// Two sources built from the same seed produce identical draw sequences,
// which is what makes whole simulation runs reproducible.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSource returns a Source seeded from the current time, for
// callers that do not need reproducibility.
func NewTimeSource() Source {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
