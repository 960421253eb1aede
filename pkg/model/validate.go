package model

import (
	"math"
)

// ProbabilityEpsilon is the tolerance used when checking that per-state
// outgoing probabilities sum to 1.
const ProbabilityEpsilon = 1e-9

// StateSum pairs a state with the computed sum of its outgoing edge
// probabilities. Reported for states that failed the sum-to-1 check.
type StateSum struct {
	State State
	Sum   float64
}

// ValidationReport is the result of validating a model. It is returned as
// data rather than an error so the caller decides whether to proceed.
type ValidationReport struct {
	Valid    bool
	Failures []StateSum
}

// Validate checks, for every state that has outgoing edges, that those
// edge probabilities sum to 1 within ProbabilityEpsilon. States that only
// appear as edge targets are terminal and vacuously valid. Validation is
// pure: it never mutates the model and can be re-run at any time.
//
// Note this is a local check only. Global termination of the chain (a
// path from start to a terminal state with probability 1) is trusted to
// the declared model; see the simulator's hop-limit option.
func (m *TransitionModel) Validate() ValidationReport {
	report := ValidationReport{Valid: true}

	for _, s := range m.states {
		edges := m.outgoing[s]
		if len(edges) == 0 {
			continue
		}
		sum := 0.0
		for _, e := range edges {
			sum += e.Probability
		}
		if math.Abs(sum-1.0) > ProbabilityEpsilon {
			report.Valid = false
			report.Failures = append(report.Failures, StateSum{State: s, Sum: sum})
		}
	}

	return report
}
