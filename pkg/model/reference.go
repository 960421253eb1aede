package model

// Workflow states of the reference defect lifecycle.
const (
	StateStart    State = "start"
	StateNew      State = "new"
	StateOpen     State = "open"
	StateInFix    State = "in_fix"
	StateFixed    State = "fixed"
	StateRetest   State = "retest"
	StateClosed   State = "closed"
	StateRejected State = "rejected"
	StateDeferred State = "deferred"
	StateReopened State = "reopened"
	StateEnd      State = "end"
)

// ReferenceModel returns the built-in defect lifecycle:
// start -> new -> open -> in_fix -> fixed -> retest -> closed -> end, with
// side branches for rejection, deferral and reopening. Mean durations are
// in days. The single terminal state is "end".
func ReferenceModel() *TransitionModel {
	m, err := NewTransitionModel(StateStart, []Edge{
		{From: StateStart, To: StateNew, Probability: 1.0, MeanDuration: 0.25},
		{From: StateNew, To: StateOpen, Probability: 0.9, MeanDuration: 1.0},
		{From: StateNew, To: StateRejected, Probability: 0.1, MeanDuration: 0.5},
		{From: StateOpen, To: StateInFix, Probability: 0.8, MeanDuration: 2.0},
		{From: StateOpen, To: StateDeferred, Probability: 0.1, MeanDuration: 1.0},
		{From: StateOpen, To: StateRejected, Probability: 0.1, MeanDuration: 0.5},
		{From: StateDeferred, To: StateOpen, Probability: 1.0, MeanDuration: 14.0},
		{From: StateInFix, To: StateFixed, Probability: 0.95, MeanDuration: 3.0},
		{From: StateInFix, To: StateOpen, Probability: 0.05, MeanDuration: 1.0},
		{From: StateFixed, To: StateRetest, Probability: 1.0, MeanDuration: 1.0},
		{From: StateRetest, To: StateClosed, Probability: 0.85, MeanDuration: 1.5},
		{From: StateRetest, To: StateReopened, Probability: 0.15, MeanDuration: 0.5},
		{From: StateReopened, To: StateOpen, Probability: 1.0, MeanDuration: 0.5},
		{From: StateRejected, To: StateClosed, Probability: 1.0, MeanDuration: 0.25},
		{From: StateClosed, To: StateEnd, Probability: 1.0, MeanDuration: 0.1},
	})
	if err != nil {
		// The reference edge list is a compile-time constant; a failure
		// here is a bug in this file.
		panic(err)
	}
	return m
}

// ReferenceSeverity returns the built-in severity distribution.
func ReferenceSeverity() *CategoricalDistribution {
	d, err := NewCategoricalDistribution("severity", []Outcome{
		{Name: "minor", DisplayName: "Minor", Weight: 0.3},
		{Name: "major", DisplayName: "Major", Weight: 0.4},
		{Name: "critical", DisplayName: "Critical", Weight: 0.2},
		{Name: "blocker", DisplayName: "Blocker", Weight: 0.1},
	})
	if err != nil {
		panic(err)
	}
	return d
}

// ReferencePriority returns the built-in priority distribution.
func ReferencePriority() *CategoricalDistribution {
	d, err := NewCategoricalDistribution("priority", []Outcome{
		{Name: "low", DisplayName: "Low", Weight: 0.25},
		{Name: "medium", DisplayName: "Medium", Weight: 0.45},
		{Name: "high", DisplayName: "High", Weight: 0.3},
	})
	if err != nil {
		panic(err)
	}
	return d
}
