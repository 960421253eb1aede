package model

import (
	"sort"
)

// State is an opaque label identifying one stage of the defect workflow.
// States are distinguished only by identity; the state set of a model is
// exactly the union of all edge endpoints.
type State string

// Edge is a directed transition between two states. Probability is the
// branch probability out of From; MeanDuration is the expected time to
// traverse the edge, in the model's time unit.
type Edge struct {
	From         State
	To           State
	Probability  float64
	MeanDuration float64
}

// TransitionModel is an immutable Markov-chain description of a defect
// workflow: the full edge set plus the distinguished start state. The
// adjacency index keyed by From is built once at construction, so
// outgoing-edge lookup never rescans the edge list.
type TransitionModel struct {
	start    State
	edges    []Edge
	outgoing map[State][]Edge
	states   []State
}

// NewTransitionModel builds a model from a declared edge list. Edges are
// checked locally at construction: probabilities must lie in [0, 1], mean
// durations must be positive, and (from, to) pairs must be unique. The
// start state must appear as an endpoint of at least one edge.
//
// Construction does not check that per-state probabilities sum to 1; that
// is the job of Validate, whose result is returned as data so the caller
// decides whether to proceed.
func NewTransitionModel(start State, edges []Edge) (*TransitionModel, error) {
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}

	outgoing := make(map[State][]Edge)
	seen := make(map[[2]State]bool)
	stateSet := make(map[State]bool)

	for _, e := range edges {
		if e.Probability < 0 || e.Probability > 1 {
			return nil, edgeError(e.From, e.To, ErrInvalidProbability)
		}
		if e.MeanDuration <= 0 {
			return nil, edgeError(e.From, e.To, ErrInvalidDuration)
		}
		pair := [2]State{e.From, e.To}
		if seen[pair] {
			return nil, edgeError(e.From, e.To, ErrDuplicateEdge)
		}
		seen[pair] = true

		outgoing[e.From] = append(outgoing[e.From], e)
		stateSet[e.From] = true
		stateSet[e.To] = true
	}

	if !stateSet[start] {
		return nil, ErrUnknownStart
	}

	states := make([]State, 0, len(stateSet))
	for s := range stateSet {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	m := &TransitionModel{
		start:    start,
		edges:    make([]Edge, len(edges)),
		outgoing: outgoing,
		states:   states,
	}
	copy(m.edges, edges)
	return m, nil
}

// Start returns the distinguished start state.
func (m *TransitionModel) Start() State {
	return m.start
}

// OutgoingEdges returns all edges whose From equals the given state, in
// declared order. Terminal states return an empty slice.
func (m *TransitionModel) OutgoingEdges(s State) []Edge {
	src := m.outgoing[s]
	out := make([]Edge, len(src))
	copy(out, src)
	return out
}

// Edges returns every edge in declared order.
func (m *TransitionModel) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// States returns every state appearing as either endpoint of any edge,
// sorted lexically for deterministic iteration.
func (m *TransitionModel) States() []State {
	out := make([]State, len(m.states))
	copy(out, m.states)
	return out
}

// IsTerminal reports whether the state has no outgoing edges. A simulated
// trajectory stops at the first terminal state it reaches.
func (m *TransitionModel) IsTerminal(s State) bool {
	return len(m.outgoing[s]) == 0
}

// TerminalStates returns every state with no outgoing edges, in the same
// order as States.
func (m *TransitionModel) TerminalStates() []State {
	var out []State
	for _, s := range m.states {
		if len(m.outgoing[s]) == 0 {
			out = append(out, s)
		}
	}
	return out
}
