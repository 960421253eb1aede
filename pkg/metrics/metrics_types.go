package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the simulator
type Registry struct {
	// Trial metrics
	TrialsTotal       *prometheus.CounterVec
	TrialHops         prometheus.Histogram
	TrialDuration     prometheus.Histogram
	TrialTerminals    *prometheus.CounterVec
	DefectsBySeverity *prometheus.CounterVec
	DefectsByPriority *prometheus.CounterVec

	// Batch metrics
	BatchesTotal  *prometheus.CounterVec
	BatchSize     prometheus.Histogram
	BatchDuration prometheus.Histogram

	// Model metrics
	ModelStatesTotal      prometheus.Gauge
	ModelEdgesTotal       prometheus.Gauge
	ModelValidationsTotal *prometheus.CounterVec
	SamplerErrorsTotal    prometheus.Counter

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initTrialMetrics()
	r.initBatchMetrics()
	r.initModelMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
