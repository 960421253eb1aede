package simulation

import (
	"fmt"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
	"github.com/dd0wney/cluso-defectsim/pkg/sampling"
)

// Trajectory is the result of one simulated walk through the model: the
// visited-state sequence from the start state to the first terminal state
// reached, the number of edges traversed, and the total treatment time.
type Trajectory struct {
	Path          []model.State
	Hops          int
	TotalDuration float64
}

// SimulatorOptions configures a path simulator.
type SimulatorOptions struct {
	// MaxHops is an optional safety limit on edges traversed per trial.
	// Zero disables the limit and trusts the declared model to reach a
	// terminal state. When the limit is exceeded the trial fails with
	// ErrDidNotTerminate rather than returning a truncated path.
	MaxHops int
}

// Simulator walks a transition model from its start state until a state
// with no outgoing edges is reached. Dead ends therefore halt a walk the
// same way intended terminal states do. A Simulator owns its random
// source and is not safe for concurrent use.
type Simulator struct {
	model *model.TransitionModel
	src   sampling.Source
	opts  SimulatorOptions
}

// NewSimulator creates a simulator over the given model and random source.
func NewSimulator(m *model.TransitionModel, src sampling.Source, opts SimulatorOptions) *Simulator {
	return &Simulator{model: m, src: src, opts: opts}
}

// Run simulates one trajectory. At each state the next edge is drawn by
// weighted choice over the outgoing edges' probabilities, in declared
// edge order; the traversed edge's mean duration parameterizes one
// exponential draw added to the running total. The total is rounded to 3
// decimal digits, matching the per-edge samples.
func (s *Simulator) Run() (Trajectory, error) {
	current := s.model.Start()
	path := []model.State{current}
	total := 0.0
	hops := 0

	for {
		edges := s.model.OutgoingEdges(current)
		if len(edges) == 0 {
			break
		}

		if s.opts.MaxHops > 0 && hops >= s.opts.MaxHops {
			return Trajectory{}, fmt.Errorf("%w: state %q after %d hops", ErrDidNotTerminate, current, hops)
		}

		items := make([]sampling.WeightedItem[model.Edge], len(edges))
		for i, e := range edges {
			items[i] = sampling.WeightedItem[model.Edge]{Item: e, Weight: e.Probability}
		}

		chosen, err := sampling.Weighted(s.src, items)
		if err != nil {
			return Trajectory{}, fmt.Errorf("choosing transition from %q: %w", current, err)
		}

		d, err := sampling.Duration(s.src, chosen.MeanDuration)
		if err != nil {
			return Trajectory{}, fmt.Errorf("sampling duration for %q -> %q: %w", chosen.From, chosen.To, err)
		}

		total += d
		current = chosen.To
		path = append(path, current)
		hops++
	}

	return Trajectory{
		Path:          path,
		Hops:          hops,
		TotalDuration: sampling.Round3(total),
	}, nil
}
