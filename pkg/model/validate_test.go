package model

import (
	"testing"
)

func TestValidate_ReferenceModelIsValid(t *testing.T) {
	report := ReferenceModel().Validate()
	if !report.Valid {
		t.Errorf("Expected reference model to be valid, failures: %v", report.Failures)
	}
	if len(report.Failures) != 0 {
		t.Errorf("Expected no failures, got %v", report.Failures)
	}
}

func TestValidate_NamesTheFailingState(t *testing.T) {
	// Take the reference edge list and perturb a single edge weight so
	// exactly one state stops summing to 1.
	edges := ReferenceModel().Edges()
	for i := range edges {
		if edges[i].From == StateRetest && edges[i].To == StateClosed {
			edges[i].Probability = 0.80 // was 0.85; retest now sums to 0.95
		}
	}

	m, err := NewTransitionModel(StateStart, edges)
	if err != nil {
		t.Fatalf("NewTransitionModel failed: %v", err)
	}

	report := m.Validate()
	if report.Valid {
		t.Fatal("Expected perturbed model to be invalid")
	}
	if len(report.Failures) != 1 {
		t.Fatalf("Expected exactly 1 failure, got %v", report.Failures)
	}
	if report.Failures[0].State != StateRetest {
		t.Errorf("Expected failure to name %q, got %q", StateRetest, report.Failures[0].State)
	}
	if got := report.Failures[0].Sum; got < 0.94 || got > 0.96 {
		t.Errorf("Expected reported sum near 0.95, got %v", got)
	}
}

func TestValidate_WithinEpsilonPasses(t *testing.T) {
	m, err := NewTransitionModel("a", []Edge{
		{From: "a", To: "b", Probability: 0.5, MeanDuration: 1.0},
		{From: "a", To: "c", Probability: 0.5 + 1e-12, MeanDuration: 1.0},
	})
	if err != nil {
		t.Fatalf("NewTransitionModel failed: %v", err)
	}
	if report := m.Validate(); !report.Valid {
		t.Errorf("Expected sum within epsilon to pass, failures: %v", report.Failures)
	}
}

func TestValidate_TerminalStatesVacuouslyValid(t *testing.T) {
	m, err := NewTransitionModel("a", []Edge{
		{From: "a", To: "b", Probability: 1.0, MeanDuration: 1.0},
	})
	if err != nil {
		t.Fatalf("NewTransitionModel failed: %v", err)
	}
	if report := m.Validate(); !report.Valid {
		t.Errorf("Terminal-only target should not fail validation: %v", report.Failures)
	}
}

func TestValidate_IsRerunnableAndPure(t *testing.T) {
	m := ReferenceModel()
	first := m.Validate()
	second := m.Validate()
	if first.Valid != second.Valid || len(first.Failures) != len(second.Failures) {
		t.Error("Validate is not stable across repeated runs")
	}
}
