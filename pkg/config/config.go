// Package config loads declarative simulation models from YAML files.
// A file declares the transition model (edge list plus start state), the
// severity and priority distributions, and the simulation options. The
// core packages never read files themselves; they consume the built
// values this package produces.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-defectsim/pkg/model"
	"github.com/dd0wney/cluso-defectsim/pkg/validation"
)

// EdgeSpec declares one transition in the YAML model.
type EdgeSpec struct {
	From         string  `yaml:"from" validate:"required"`
	To           string  `yaml:"to" validate:"required"`
	Probability  float64 `yaml:"probability" validate:"gte=0,lte=1"`
	MeanDuration float64 `yaml:"mean_duration" validate:"gt=0"`
}

// ModelSpec declares the transition model.
type ModelSpec struct {
	Name  string     `yaml:"name"`
	Start string     `yaml:"start" validate:"required"`
	Edges []EdgeSpec `yaml:"edges" validate:"required,min=1,dive"`
}

// OutcomeSpec declares one outcome of a categorical distribution.
type OutcomeSpec struct {
	Name        string  `yaml:"name" validate:"required"`
	DisplayName string  `yaml:"display_name"`
	Weight      float64 `yaml:"weight" validate:"gte=0"`
}

// SimulationSpec declares runtime options for a generation batch.
type SimulationSpec struct {
	Count   int   `yaml:"count"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
	MaxHops int   `yaml:"max_hops"`
}

// Config is the root of a simulation config file.
type Config struct {
	Model      ModelSpec      `yaml:"model"`
	Severity   []OutcomeSpec  `yaml:"severity" validate:"required,min=1,dive"`
	Priority   []OutcomeSpec  `yaml:"priority" validate:"required,min=1,dive"`
	Simulation SimulationSpec `yaml:"simulation"`
}

// DefaultSimulationSpec returns the options used when the simulation
// section is omitted or partially filled.
func DefaultSimulationSpec() SimulationSpec {
	return SimulationSpec{
		Count:   1000,
		Seed:    1,
		Workers: 1,
		MaxHops: 0, // trust the declared model
	}
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML into a Config, applies defaults and validates every
// section. Unknown keys are rejected so typos fail loudly.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultSimulationSpec()
	// An omitted count decodes to zero and takes the default; a negative
	// count is preserved so validation can reject it.
	if c.Simulation.Count == 0 {
		c.Simulation.Count = defaults.Count
	}
	c.Simulation.Seed = validation.DefaultOrInt64(c.Simulation.Seed, defaults.Seed)
	c.Simulation.Workers = validation.DefaultOrInt(c.Simulation.Workers, defaults.Workers)
	if c.Model.Name == "" {
		c.Model.Name = "custom"
	}
}

// Validate checks the whole config: struct tags first, then state and
// outcome name rules, then the simulation options.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}

	if err := validation.ValidateStateName(c.Model.Start); err != nil {
		return fmt.Errorf("model.start: %w", err)
	}
	for i, e := range c.Model.Edges {
		if err := validation.ValidateStateName(e.From); err != nil {
			return fmt.Errorf("model.edges[%d].from: %w", i, err)
		}
		if err := validation.ValidateStateName(e.To); err != nil {
			return fmt.Errorf("model.edges[%d].to: %w", i, err)
		}
	}
	for i, o := range c.Severity {
		if err := validation.ValidateOutcomeName(o.Name); err != nil {
			return fmt.Errorf("severity[%d]: %w", i, err)
		}
	}
	for i, o := range c.Priority {
		if err := validation.ValidateOutcomeName(o.Name); err != nil {
			return fmt.Errorf("priority[%d]: %w", i, err)
		}
	}

	return c.Simulation.Validate()
}

// Validate checks the simulation options.
func (s *SimulationSpec) Validate() error {
	return validation.NewConfigValidator("simulation").
		NonNegative("count", s.Count).
		Positive("workers", s.Workers).
		NonNegative("max_hops", s.MaxHops).
		Validate()
}

// BuildModel constructs the immutable transition model from the spec.
func (c *Config) BuildModel() (*model.TransitionModel, error) {
	edges := make([]model.Edge, len(c.Model.Edges))
	for i, e := range c.Model.Edges {
		edges[i] = model.Edge{
			From:         model.State(e.From),
			To:           model.State(e.To),
			Probability:  e.Probability,
			MeanDuration: e.MeanDuration,
		}
	}
	return model.NewTransitionModel(model.State(c.Model.Start), edges)
}

// BuildSeverity constructs the severity distribution from the spec.
func (c *Config) BuildSeverity() (*model.CategoricalDistribution, error) {
	return buildDistribution("severity", c.Severity)
}

// BuildPriority constructs the priority distribution from the spec.
func (c *Config) BuildPriority() (*model.CategoricalDistribution, error) {
	return buildDistribution("priority", c.Priority)
}

func buildDistribution(name string, specs []OutcomeSpec) (*model.CategoricalDistribution, error) {
	outcomes := make([]model.Outcome, len(specs))
	for i, o := range specs {
		outcomes[i] = model.Outcome{
			Name:        o.Name,
			DisplayName: o.DisplayName,
			Weight:      o.Weight,
		}
	}
	return model.NewCategoricalDistribution(name, outcomes)
}
