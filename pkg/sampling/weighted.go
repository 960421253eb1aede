package sampling

import (
	"fmt"
)

// WeightedItem pairs a candidate value with its non-negative weight.
type WeightedItem[T any] struct {
	Item   T
	Weight float64
}

// Weighted draws one item with probability proportional to its weight.
// Weights need not pre-sum to 1; the draw is a uniform variate over
// [0, total) resolved by a linear scan of cumulative weights, so the
// declared item order determines cumulative assignment deterministically.
// A single item of positive weight is always returned.
//
// Returns ErrInvalidWeights if the sequence is empty, contains a negative
// weight, or the total weight is not positive. These indicate a
// misconfigured input and are never retried.
func Weighted[T any](src Source, items []WeightedItem[T]) (T, error) {
	var zero T

	if len(items) == 0 {
		return zero, fmt.Errorf("%w: empty item sequence", ErrInvalidWeights)
	}

	total := 0.0
	for i, it := range items {
		if it.Weight < 0 {
			return zero, fmt.Errorf("%w: negative weight %v at index %d", ErrInvalidWeights, it.Weight, i)
		}
		total += it.Weight
	}
	if total <= 0 {
		return zero, fmt.Errorf("%w: total weight %v is not positive", ErrInvalidWeights, total)
	}

	target := src.Float64() * total
	cumulative := 0.0
	for _, it := range items {
		cumulative += it.Weight
		if target < cumulative {
			return it.Item, nil
		}
	}

	// Floating-point accumulation can leave target a hair past the final
	// cumulative sum; fall back to the last positively weighted item.
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].Weight > 0 {
			return items[i].Item, nil
		}
	}
	return zero, fmt.Errorf("%w: no positively weighted item", ErrInvalidWeights)
}
