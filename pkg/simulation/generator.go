package simulation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-defectsim/pkg/logging"
	"github.com/dd0wney/cluso-defectsim/pkg/metrics"
	"github.com/dd0wney/cluso-defectsim/pkg/model"
	"github.com/dd0wney/cluso-defectsim/pkg/parallel"
	"github.com/dd0wney/cluso-defectsim/pkg/sampling"
)

// workerSeedStride offsets the base seed per worker so parallel workers
// draw from independent sequences.
const workerSeedStride = 0x9e3779b9

// DefectRecord is the complete output of one trial: the simulated path,
// its hop count and total treatment time, plus the drawn severity and
// priority labels. Records are never mutated after creation.
type DefectRecord struct {
	ID            uuid.UUID     `json:"id"`
	Path          []model.State `json:"path"`
	Hops          int           `json:"hops"`
	TotalDuration float64       `json:"total_duration"`
	Severity      string        `json:"severity"`
	Priority      string        `json:"priority"`
}

// GeneratorOptions configures a defect generator.
type GeneratorOptions struct {
	// MaxHops is the per-trial hop safety limit; see SimulatorOptions.
	MaxHops int

	// Seed is the base seed used to derive independent per-worker
	// sources in GenerateParallel. Serial generation uses the Source
	// passed to NewGenerator instead.
	Seed int64

	// Logger defaults to a no-op logger.
	Logger logging.Logger

	// Metrics defaults to the global registry.
	Metrics *metrics.Registry
}

// Generator produces populations of independent simulated defects. Each
// trial draws severity, then priority, then one trajectory, in that
// order; the draw order is part of the reproducibility contract.
//
// The generator does not validate the model itself: validation results
// are data for the caller to act on before generating (see
// TransitionModel.Validate).
type Generator struct {
	model    *model.TransitionModel
	severity *model.CategoricalDistribution
	priority *model.CategoricalDistribution
	src      sampling.Source
	opts     GeneratorOptions
	logger   logging.Logger
	metrics  *metrics.Registry
}

// NewGenerator creates a generator. The source drives serial generation;
// it must not be shared with other concurrent users.
func NewGenerator(m *model.TransitionModel, severity, priority *model.CategoricalDistribution, src sampling.Source, opts GeneratorOptions) *Generator {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}
	return &Generator{
		model:    m,
		severity: severity,
		priority: priority,
		src:      src,
		opts:     opts,
		logger:   logger,
		metrics:  reg,
	}
}

// Generate produces count independent defect records in trial order.
// count of zero yields an empty, non-nil slice.
func (g *Generator) Generate(count int) ([]DefectRecord, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	start := time.Now()
	records := make([]DefectRecord, 0, count)
	sim := NewSimulator(g.model, g.src, SimulatorOptions{MaxHops: g.opts.MaxHops})

	for i := 0; i < count; i++ {
		rec, err := g.generateOne(g.src, sim)
		if err != nil {
			g.metrics.RecordBatch("error", count, time.Since(start))
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}
		records = append(records, rec)
	}

	g.metrics.RecordBatch("ok", count, time.Since(start))
	g.logger.Info("generated defect population",
		logging.Trials(count),
		logging.Latency(time.Since(start)))
	return records, nil
}

// GenerateParallel distributes count trials across the given number of
// workers. Each worker owns a disjoint range of the population and an
// independently seeded source derived from Seed, so results are
// reproducible for a fixed (seed, workers) pair and records stay ordered
// by trial index.
func (g *Generator) GenerateParallel(count, workers int) ([]DefectRecord, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if workers <= 1 || count <= 1 {
		return g.Generate(count)
	}
	if workers > count {
		workers = count
	}

	start := time.Now()
	records := make([]DefectRecord, count)

	chunk := count / workers
	extra := count % workers

	tasks := make([]func() error, 0, workers)
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + chunk
		if w < extra {
			hi++
		}
		w, lo, hi := w, lo, hi
		tasks = append(tasks, func() error {
			src := sampling.NewSource(g.opts.Seed + int64(w)*workerSeedStride)
			sim := NewSimulator(g.model, src, SimulatorOptions{MaxHops: g.opts.MaxHops})
			for i := lo; i < hi; i++ {
				rec, err := g.generateOne(src, sim)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				records[i] = rec
			}
			return nil
		})
		lo = hi
	}

	if err := parallel.Run(workers, g.logger, tasks); err != nil {
		g.metrics.RecordBatch("error", count, time.Since(start))
		return nil, err
	}

	g.metrics.RecordBatch("ok", count, time.Since(start))
	g.logger.Info("generated defect population",
		logging.Trials(count),
		logging.Workers(workers),
		logging.Seed(g.opts.Seed),
		logging.Latency(time.Since(start)))
	return records, nil
}

// generateOne runs a single trial against the given source and simulator.
func (g *Generator) generateOne(src sampling.Source, sim *Simulator) (DefectRecord, error) {
	severity, err := drawOutcome(src, g.severity)
	if err != nil {
		g.metrics.RecordSamplerError()
		return DefectRecord{}, err
	}

	priority, err := drawOutcome(src, g.priority)
	if err != nil {
		g.metrics.RecordSamplerError()
		return DefectRecord{}, err
	}

	traj, err := sim.Run()
	if err != nil {
		g.metrics.RecordTrialError()
		return DefectRecord{}, err
	}

	terminal := traj.Path[len(traj.Path)-1]
	g.metrics.RecordTrial(string(terminal), traj.Hops, traj.TotalDuration)
	g.metrics.RecordDefect(severity, priority)

	return DefectRecord{
		ID:            uuid.New(),
		Path:          traj.Path,
		Hops:          traj.Hops,
		TotalDuration: traj.TotalDuration,
		Severity:      severity,
		Priority:      priority,
	}, nil
}

func drawOutcome(src sampling.Source, dist *model.CategoricalDistribution) (string, error) {
	outcomes := dist.Outcomes()
	items := make([]sampling.WeightedItem[string], len(outcomes))
	for i, o := range outcomes {
		items[i] = sampling.WeightedItem[string]{Item: o.Name, Weight: o.Weight}
	}
	name, err := sampling.Weighted(src, items)
	if err != nil {
		return "", fmt.Errorf("drawing %s: %w", dist.Name(), err)
	}
	return name, nil
}
