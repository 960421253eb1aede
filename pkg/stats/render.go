package stats

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
)

// FormatSummary renders a summary as plain text for terminal output.
// Severity/priority display names come from the distributions when
// provided; pass nil to print raw outcome names.
func FormatSummary(s Summary, severity, priority *model.CategoricalDistribution) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Population: %d defects\n", s.Count)
	if s.Count == 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "Hops:       mean %.2f, max %d\n", s.MeanHops, s.MaxHops)
	fmt.Fprintf(&b, "Treatment:  mean %.3f, min %.3f, max %.3f\n",
		s.Duration.Mean, s.Duration.Min, s.Duration.Max)
	fmt.Fprintf(&b, "            p50 %.3f, p90 %.3f, p99 %.3f\n",
		s.Duration.P50, s.Duration.P90, s.Duration.P99)

	b.WriteString("\nSeverity:\n")
	writeCounts(&b, s.BySeverity, s.Count, severity)
	b.WriteString("\nPriority:\n")
	writeCounts(&b, s.ByPriority, s.Count, priority)

	b.WriteString("\nTerminal states:\n")
	for _, st := range sortedStates(s.TerminalCounts) {
		n := s.TerminalCounts[st]
		fmt.Fprintf(&b, "  %-12s %6d  (%.1f%%)\n", st, n, 100*float64(n)/float64(s.Count))
	}

	b.WriteString("\nState visits:\n")
	for _, st := range sortedStates(s.StateVisits) {
		fmt.Fprintf(&b, "  %-12s %6d\n", st, s.StateVisits[st])
	}

	return b.String()
}

func writeCounts(b *strings.Builder, counts map[string]int, total int, dist *model.CategoricalDistribution) {
	// Preserve distribution order when known, otherwise sort by name.
	var names []string
	if dist != nil {
		for _, o := range dist.Outcomes() {
			if _, ok := counts[o.Name]; ok {
				names = append(names, o.Name)
			}
		}
	} else {
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	for _, name := range names {
		label := name
		if dist != nil {
			label = dist.DisplayName(name)
		}
		n := counts[name]
		fmt.Fprintf(b, "  %-12s %6d  (%.1f%%)\n", label, n, 100*float64(n)/float64(total))
	}
}

func sortedStates(counts map[model.State]int) []model.State {
	states := make([]model.State, 0, len(counts))
	for st := range counts {
		states = append(states, st)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	return states
}
