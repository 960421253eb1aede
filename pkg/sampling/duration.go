package sampling

import (
	"fmt"
	"math"
)

// durationPrecision is the decimal precision of sampled durations.
const durationPrecision = 1000 // 3 decimal digits

// Duration draws a treatment time for one traversed edge from an
// exponential distribution with rate 1/mean, via the inverse transform
// -mean * ln(1 - u). The result is always >= 0 and is rounded to 3
// decimal digits using round-half-to-even.
//
// Returns ErrInvalidParameter if mean is not positive.
func Duration(src Source, mean float64) (float64, error) {
	if mean <= 0 {
		return 0, fmt.Errorf("%w: mean duration %v must be positive", ErrInvalidParameter, mean)
	}

	// u is in [0, 1), so 1-u is in (0, 1] and the log is finite.
	u := src.Float64()
	return Round3(-mean * math.Log(1-u)), nil
}

// Round3 rounds a value to 3 decimal digits with round-half-to-even
// semantics. Rounding is done on the floating value itself, never through
// string formatting.
func Round3(v float64) float64 {
	return math.RoundToEven(v*durationPrecision) / durationPrecision
}
