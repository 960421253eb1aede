// Package stats computes population summaries over generated defect
// records. It is a consumer of the simulation core: everything here is
// derived from finished DefectRecords and never feeds back into a run.
package stats

import (
	"math"
	"sort"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
	"github.com/dd0wney/cluso-defectsim/pkg/simulation"
)

// DurationStats summarizes the total treatment times of a population.
type DurationStats struct {
	Mean float64
	Min  float64
	Max  float64
	P50  float64
	P90  float64
	P99  float64
}

// Summary aggregates one generated population.
type Summary struct {
	Count          int
	MeanHops       float64
	MaxHops        int
	Duration       DurationStats
	BySeverity     map[string]int
	ByPriority     map[string]int
	StateVisits    map[model.State]int
	TerminalCounts map[model.State]int
}

// Summarize computes a Summary over the given records. An empty
// population yields a zero-valued summary with initialized maps.
func Summarize(records []simulation.DefectRecord) Summary {
	s := Summary{
		Count:          len(records),
		BySeverity:     make(map[string]int),
		ByPriority:     make(map[string]int),
		StateVisits:    make(map[model.State]int),
		TerminalCounts: make(map[model.State]int),
	}
	if len(records) == 0 {
		return s
	}

	durations := make([]float64, 0, len(records))
	totalHops := 0
	for _, r := range records {
		s.BySeverity[r.Severity]++
		s.ByPriority[r.Priority]++
		for _, st := range r.Path {
			s.StateVisits[st]++
		}
		s.TerminalCounts[r.Path[len(r.Path)-1]]++
		totalHops += r.Hops
		if r.Hops > s.MaxHops {
			s.MaxHops = r.Hops
		}
		durations = append(durations, r.TotalDuration)
	}

	s.MeanHops = float64(totalHops) / float64(len(records))
	s.Duration = summarizeDurations(durations)
	return s
}

func summarizeDurations(durations []float64) DurationStats {
	sort.Float64s(durations)

	sum := 0.0
	for _, d := range durations {
		sum += d
	}

	return DurationStats{
		Mean: sum / float64(len(durations)),
		Min:  durations[0],
		Max:  durations[len(durations)-1],
		P50:  Percentile(durations, 0.50),
		P90:  Percentile(durations, 0.90),
		P99:  Percentile(durations, 0.99),
	}
}

// Percentile returns the p-th percentile (p in [0, 1]) of an ascending
// sorted slice using nearest-rank interpolation.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}

	rank := p * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
