package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initTrialMetrics() {
	r.TrialsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "defectsim_trials_total",
			Help: "Total number of simulated trials",
		},
		[]string{"status"},
	)

	r.TrialHops = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "defectsim_trial_hops",
			Help:    "Number of edges traversed per trial",
			Buckets: []float64{1, 2, 4, 8, 12, 16, 24, 32, 64},
		},
	)

	r.TrialDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "defectsim_trial_treatment_time",
			Help:    "Total treatment time per trial, in model time units",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
		},
	)

	r.TrialTerminals = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "defectsim_trial_terminal_states_total",
			Help: "Terminal state reached per trial",
		},
		[]string{"state"},
	)

	r.DefectsBySeverity = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "defectsim_defects_by_severity_total",
			Help: "Generated defects by severity",
		},
		[]string{"severity"},
	)

	r.DefectsByPriority = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "defectsim_defects_by_priority_total",
			Help: "Generated defects by priority",
		},
		[]string{"priority"},
	)
}

func (r *Registry) initBatchMetrics() {
	r.BatchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "defectsim_batches_total",
			Help: "Total number of generation batches",
		},
		[]string{"status"},
	)

	r.BatchSize = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "defectsim_batch_size",
			Help:    "Requested population size per batch",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000},
		},
	)

	r.BatchDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "defectsim_batch_duration_seconds",
			Help:    "Wall-clock duration of a generation batch in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
}
