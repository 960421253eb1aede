package model

import (
	"fmt"
)

// Outcome is one labeled value of a categorical distribution. DisplayName
// is the human-readable form used by presentation layers; it defaults to
// Name when empty.
type Outcome struct {
	Name        string
	DisplayName string
	Weight      float64
}

// CategoricalDistribution is a finite weighted choice over labeled
// outcomes, used for severity and priority assignment. It is immutable
// once built; outcome order is the declared order.
type CategoricalDistribution struct {
	name     string
	outcomes []Outcome
}

// NewCategoricalDistribution builds a distribution from declared outcomes.
// Outcome names must be unique and non-empty, weights must be
// non-negative, and the total weight must be positive. Weights are not
// required to sum to exactly 1; the sampler normalizes by total weight.
func NewCategoricalDistribution(name string, outcomes []Outcome) (*CategoricalDistribution, error) {
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("distribution %q: %w", name, ErrNoOutcomes)
	}

	total := 0.0
	seen := make(map[string]bool)
	cloned := make([]Outcome, len(outcomes))

	for i, o := range outcomes {
		if o.Name == "" {
			return nil, fmt.Errorf("distribution %q: outcome %d has empty name", name, i)
		}
		if seen[o.Name] {
			return nil, fmt.Errorf("distribution %q: outcome %q: %w", name, o.Name, ErrDuplicateOutcome)
		}
		seen[o.Name] = true
		if o.Weight < 0 {
			return nil, fmt.Errorf("distribution %q: outcome %q: %w", name, o.Name, ErrInvalidWeight)
		}
		total += o.Weight
		if o.DisplayName == "" {
			o.DisplayName = o.Name
		}
		cloned[i] = o
	}

	if total <= 0 {
		return nil, fmt.Errorf("distribution %q: %w", name, ErrZeroTotalWeight)
	}

	return &CategoricalDistribution{name: name, outcomes: cloned}, nil
}

// Name returns the distribution's name (e.g. "severity").
func (d *CategoricalDistribution) Name() string {
	return d.name
}

// Outcomes returns the outcomes in declared order.
func (d *CategoricalDistribution) Outcomes() []Outcome {
	out := make([]Outcome, len(d.outcomes))
	copy(out, d.outcomes)
	return out
}

// DisplayName returns the display name for an outcome, or the raw name if
// the outcome is not part of this distribution.
func (d *CategoricalDistribution) DisplayName(name string) string {
	for _, o := range d.outcomes {
		if o.Name == name {
			return o.DisplayName
		}
	}
	return name
}
