package visualization

import (
	"sort"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width   float64 // Canvas width
	Height  float64 // Canvas height
	Padding float64 // Padding from canvas edges
}

// DefaultLayoutConfig returns a layout sized for a typical canvas.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Width:   1000,
		Height:  600,
		Padding: 40,
	}
}

// ComputeLayeredLayout assigns each state a 2D position by layering the
// graph: a state's layer is its BFS depth from the start state, so the
// workflow reads left to right. States unreachable from start are placed
// in a final layer of their own. Within a layer states are ordered
// lexically and spread evenly over the canvas height.
func ComputeLayeredLayout(m *model.TransitionModel, cfg LayoutConfig) map[model.State]Position {
	depths := bfsDepths(m)

	maxDepth := 0
	for _, d := range depths {
		if d > maxDepth {
			maxDepth = d
		}
	}

	// Unreachable states go one layer past the deepest reachable one.
	layers := make(map[int][]model.State)
	for _, s := range m.States() {
		d, ok := depths[s]
		if !ok {
			d = maxDepth + 1
		}
		layers[d] = append(layers[d], s)
	}

	layerCount := len(layers)
	positions := make(map[model.State]Position, len(m.States()))

	layerKeys := make([]int, 0, layerCount)
	for d := range layers {
		layerKeys = append(layerKeys, d)
	}
	sort.Ints(layerKeys)

	for col, d := range layerKeys {
		states := layers[d]
		sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

		x := cfg.Padding
		if layerCount > 1 {
			x += float64(col) * (cfg.Width - 2*cfg.Padding) / float64(layerCount-1)
		}

		for row, s := range states {
			y := cfg.Padding
			if len(states) > 1 {
				y += float64(row) * (cfg.Height - 2*cfg.Padding) / float64(len(states)-1)
			} else {
				y = cfg.Height / 2
			}
			positions[s] = Position{X: x, Y: y}
		}
	}

	return positions
}

// bfsDepths returns the BFS depth of every state reachable from start.
func bfsDepths(m *model.TransitionModel) map[model.State]int {
	depths := map[model.State]int{m.Start(): 0}
	queue := []model.State{m.Start()}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, e := range m.OutgoingEdges(current) {
			if _, seen := depths[e.To]; !seen {
				depths[e.To] = depths[current] + 1
				queue = append(queue, e.To)
			}
		}
	}

	return depths
}
