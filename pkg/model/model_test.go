package model

import (
	"errors"
	"testing"
)

func twoStateModel(t *testing.T) *TransitionModel {
	t.Helper()
	m, err := NewTransitionModel("a", []Edge{
		{From: "a", To: "b", Probability: 1.0, MeanDuration: 1.0},
	})
	if err != nil {
		t.Fatalf("NewTransitionModel failed: %v", err)
	}
	return m
}

func TestNewTransitionModel_RejectsEmptyEdgeList(t *testing.T) {
	_, err := NewTransitionModel("a", nil)
	if !errors.Is(err, ErrNoEdges) {
		t.Errorf("Expected ErrNoEdges, got %v", err)
	}
}

func TestNewTransitionModel_RejectsDuplicateEdge(t *testing.T) {
	_, err := NewTransitionModel("a", []Edge{
		{From: "a", To: "b", Probability: 0.5, MeanDuration: 1.0},
		{From: "a", To: "b", Probability: 0.5, MeanDuration: 2.0},
	})
	if !errors.Is(err, ErrDuplicateEdge) {
		t.Errorf("Expected ErrDuplicateEdge, got %v", err)
	}
}

func TestNewTransitionModel_RejectsBadProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1} {
		_, err := NewTransitionModel("a", []Edge{
			{From: "a", To: "b", Probability: p, MeanDuration: 1.0},
		})
		if !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("Probability %v: expected ErrInvalidProbability, got %v", p, err)
		}
	}
}

func TestNewTransitionModel_RejectsNonPositiveDuration(t *testing.T) {
	for _, d := range []float64{0, -1} {
		_, err := NewTransitionModel("a", []Edge{
			{From: "a", To: "b", Probability: 1.0, MeanDuration: d},
		})
		if !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Duration %v: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

func TestNewTransitionModel_RejectsUnknownStart(t *testing.T) {
	_, err := NewTransitionModel("missing", []Edge{
		{From: "a", To: "b", Probability: 1.0, MeanDuration: 1.0},
	})
	if !errors.Is(err, ErrUnknownStart) {
		t.Errorf("Expected ErrUnknownStart, got %v", err)
	}
}

func TestOutgoingEdges_DeclaredOrder(t *testing.T) {
	m, err := NewTransitionModel("a", []Edge{
		{From: "a", To: "c", Probability: 0.3, MeanDuration: 1.0},
		{From: "a", To: "b", Probability: 0.7, MeanDuration: 1.0},
		{From: "b", To: "c", Probability: 1.0, MeanDuration: 1.0},
	})
	if err != nil {
		t.Fatalf("NewTransitionModel failed: %v", err)
	}

	edges := m.OutgoingEdges("a")
	if len(edges) != 2 {
		t.Fatalf("Expected 2 outgoing edges, got %d", len(edges))
	}
	if edges[0].To != "c" || edges[1].To != "b" {
		t.Errorf("Outgoing edges not in declared order: %v", edges)
	}
}

func TestOutgoingEdges_EmptyForTerminal(t *testing.T) {
	m := twoStateModel(t)
	if edges := m.OutgoingEdges("b"); len(edges) != 0 {
		t.Errorf("Expected no outgoing edges for terminal state, got %v", edges)
	}
	if !m.IsTerminal("b") {
		t.Error("Expected b to be terminal")
	}
	if m.IsTerminal("a") {
		t.Error("Expected a not to be terminal")
	}
}

func TestStates_UnionOfEndpoints(t *testing.T) {
	m := ReferenceModel()
	states := m.States()

	want := map[State]bool{
		StateStart: true, StateNew: true, StateOpen: true, StateInFix: true,
		StateFixed: true, StateRetest: true, StateClosed: true,
		StateRejected: true, StateDeferred: true, StateReopened: true,
		StateEnd: true,
	}
	if len(states) != len(want) {
		t.Fatalf("Expected %d states, got %d: %v", len(want), len(states), states)
	}
	for _, s := range states {
		if !want[s] {
			t.Errorf("Unexpected state %q", s)
		}
	}
}

func TestTerminalStates_ReferenceModel(t *testing.T) {
	m := ReferenceModel()
	terminals := m.TerminalStates()
	if len(terminals) != 1 || terminals[0] != StateEnd {
		t.Errorf("Expected single terminal state %q, got %v", StateEnd, terminals)
	}
}

func TestModelImmutability_AccessorsReturnCopies(t *testing.T) {
	m := twoStateModel(t)

	edges := m.Edges()
	edges[0].Probability = 0.123
	if m.Edges()[0].Probability != 1.0 {
		t.Error("Mutating the Edges result leaked into the model")
	}

	out := m.OutgoingEdges("a")
	out[0].To = "z"
	if m.OutgoingEdges("a")[0].To != "b" {
		t.Error("Mutating the OutgoingEdges result leaked into the model")
	}
}
