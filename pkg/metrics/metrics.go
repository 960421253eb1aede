package metrics

import (
	"time"
)

// RecordTrial records one completed trial: its hop count, total treatment
// time and the terminal state it reached.
func (r *Registry) RecordTrial(terminalState string, hops int, treatmentTime float64) {
	r.TrialsTotal.WithLabelValues("ok").Inc()
	r.TrialHops.Observe(float64(hops))
	r.TrialDuration.Observe(treatmentTime)
	r.TrialTerminals.WithLabelValues(terminalState).Inc()
}

// RecordTrialError records a trial that failed to complete.
func (r *Registry) RecordTrialError() {
	r.TrialsTotal.WithLabelValues("error").Inc()
}

// RecordDefect records the categorical attributes of one generated defect.
func (r *Registry) RecordDefect(severity, priority string) {
	r.DefectsBySeverity.WithLabelValues(severity).Inc()
	r.DefectsByPriority.WithLabelValues(priority).Inc()
}

// RecordBatch records one generation batch with its outcome and wall-clock
// duration.
func (r *Registry) RecordBatch(status string, size int, duration time.Duration) {
	r.BatchesTotal.WithLabelValues(status).Inc()
	r.BatchSize.Observe(float64(size))
	r.BatchDuration.Observe(duration.Seconds())
}

// SetModelSize publishes the dimensions of the loaded model.
func (r *Registry) SetModelSize(states, edges int) {
	r.ModelStatesTotal.Set(float64(states))
	r.ModelEdgesTotal.Set(float64(edges))
}

// RecordValidation records a model validation run.
func (r *Registry) RecordValidation(valid bool) {
	outcome := "valid"
	if !valid {
		outcome = "invalid"
	}
	r.ModelValidationsTotal.WithLabelValues(outcome).Inc()
}

// RecordSamplerError records a sampler failure.
func (r *Registry) RecordSamplerError() {
	r.SamplerErrorsTotal.Inc()
}
