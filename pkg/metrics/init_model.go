package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initModelMetrics() {
	r.ModelStatesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "defectsim_model_states_total",
			Help: "Number of states in the loaded transition model",
		},
	)

	r.ModelEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "defectsim_model_edges_total",
			Help: "Number of edges in the loaded transition model",
		},
	)

	r.ModelValidationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "defectsim_model_validations_total",
			Help: "Model validation runs by outcome",
		},
		[]string{"outcome"},
	)

	r.SamplerErrorsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "defectsim_sampler_errors_total",
			Help: "Sampler failures caused by misconfigured inputs",
		},
	)
}
