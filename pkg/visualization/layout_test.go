package visualization

import (
	"testing"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
)

func TestComputeLayeredLayout_CoversAllStates(t *testing.T) {
	m := model.ReferenceModel()
	cfg := DefaultLayoutConfig()
	positions := ComputeLayeredLayout(m, cfg)

	if len(positions) != len(m.States()) {
		t.Fatalf("Expected positions for %d states, got %d", len(m.States()), len(positions))
	}
	for s, p := range positions {
		if p.X < 0 || p.X > cfg.Width || p.Y < 0 || p.Y > cfg.Height {
			t.Errorf("State %q positioned off-canvas: %+v", s, p)
		}
	}
}

func TestComputeLayeredLayout_WorkflowReadsLeftToRight(t *testing.T) {
	m := model.ReferenceModel()
	positions := ComputeLayeredLayout(m, DefaultLayoutConfig())

	if positions[model.StateStart].X >= positions[model.StateNew].X {
		t.Error("start should be left of new")
	}
	if positions[model.StateNew].X >= positions[model.StateOpen].X {
		t.Error("new should be left of open")
	}
	if positions[model.StateOpen].X >= positions[model.StateInFix].X {
		t.Error("open should be left of in_fix")
	}
}

func TestComputeLayeredLayout_UnreachableStatesGetALayer(t *testing.T) {
	m, err := model.NewTransitionModel("a", []model.Edge{
		{From: "a", To: "b", Probability: 1.0, MeanDuration: 1.0},
		{From: "orphan", To: "island", Probability: 1.0, MeanDuration: 1.0},
	})
	if err != nil {
		t.Fatalf("NewTransitionModel failed: %v", err)
	}

	positions := ComputeLayeredLayout(m, DefaultLayoutConfig())
	if _, ok := positions["orphan"]; !ok {
		t.Error("Unreachable state missing from layout")
	}
	if _, ok := positions["island"]; !ok {
		t.Error("Unreachable state missing from layout")
	}
}
