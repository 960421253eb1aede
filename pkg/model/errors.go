package model

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNoEdges            = errors.New("model has no edges")
	ErrDuplicateEdge      = errors.New("duplicate edge")
	ErrInvalidProbability = errors.New("probability must be in [0, 1]")
	ErrInvalidDuration    = errors.New("mean duration must be positive")
	ErrUnknownStart       = errors.New("start state does not appear in any edge")
	ErrNoOutcomes         = errors.New("distribution has no outcomes")
	ErrDuplicateOutcome   = errors.New("duplicate outcome name")
	ErrInvalidWeight      = errors.New("weight must be non-negative")
	ErrZeroTotalWeight    = errors.New("total weight must be positive")
)

// EdgeError wraps a model construction failure with the offending edge.
type EdgeError struct {
	From  State
	To    State
	Cause error
}

// Error implements the error interface.
func (e *EdgeError) Error() string {
	return fmt.Sprintf("edge %s -> %s: %v", e.From, e.To, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *EdgeError) Unwrap() error {
	return e.Cause
}

func edgeError(from, to State, cause error) error {
	return &EdgeError{From: from, To: to, Cause: cause}
}
