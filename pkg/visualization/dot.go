// Package visualization renders transition models for human inspection:
// Graphviz DOT export and a layered 2D layout for clients that draw the
// chain themselves. It only reads the model; the simulation core never
// depends on it.
package visualization

import (
	"fmt"
	"strings"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	GraphName     string
	RankDir       string // "LR" or "TB"
	ShowDurations bool
}

// DefaultDOTOptions returns sensible export defaults.
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		GraphName:     "defect_lifecycle",
		RankDir:       "LR",
		ShowDurations: true,
	}
}

// ExportDOT renders the model as a Graphviz digraph. The start state is
// drawn bold, terminal states as double circles, and every edge carries
// its probability (and optionally mean duration) as a label.
func ExportDOT(m *model.TransitionModel, opts DOTOptions) string {
	var b strings.Builder

	fmt.Fprintf(&b, "digraph %s {\n", opts.GraphName)
	fmt.Fprintf(&b, "  rankdir=%s;\n", opts.RankDir)
	b.WriteString("  node [shape=circle];\n")

	for _, s := range m.States() {
		switch {
		case s == m.Start():
			fmt.Fprintf(&b, "  %q [style=bold];\n", s)
		case m.IsTerminal(s):
			fmt.Fprintf(&b, "  %q [shape=doublecircle];\n", s)
		}
	}

	for _, e := range m.Edges() {
		label := fmt.Sprintf("p=%.2f", e.Probability)
		if opts.ShowDurations {
			label = fmt.Sprintf("%s t=%.2f", label, e.MeanDuration)
		}
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.From, e.To, label)
	}

	b.WriteString("}\n")
	return b.String()
}
