package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
model:
  name: minimal
  start: start
  edges:
    - from: start
      to: open
      probability: 1.0
      mean_duration: 0.5
    - from: open
      to: closed
      probability: 0.9
      mean_duration: 2.0
    - from: open
      to: end
      probability: 0.1
      mean_duration: 1.0
    - from: closed
      to: end
      probability: 1.0
      mean_duration: 0.1
severity:
  - name: minor
    display_name: Minor
    weight: 0.6
  - name: major
    weight: 0.4
priority:
  - name: low
    weight: 0.5
  - name: high
    weight: 0.5
simulation:
  count: 50
  seed: 7
  workers: 2
`

func TestParse_ValidConfig(t *testing.T) {
	cfg, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "minimal", cfg.Model.Name)
	assert.Equal(t, 50, cfg.Simulation.Count)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.Equal(t, 2, cfg.Simulation.Workers)

	m, err := cfg.BuildModel()
	require.NoError(t, err)
	assert.Len(t, m.Edges(), 4)

	report := m.Validate()
	assert.True(t, report.Valid, "failures: %v", report.Failures)

	sev, err := cfg.BuildSeverity()
	require.NoError(t, err)
	assert.Equal(t, "Minor", sev.DisplayName("minor"))

	pri, err := cfg.BuildPriority()
	require.NoError(t, err)
	assert.Len(t, pri.Outcomes(), 2)
}

func TestParse_AppliesDefaults(t *testing.T) {
	yaml := `
model:
  start: a
  edges:
    - from: a
      to: b
      probability: 1.0
      mean_duration: 1.0
severity:
  - name: s
    weight: 1
priority:
  - name: p
    weight: 1
`
	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	defaults := DefaultSimulationSpec()
	assert.Equal(t, defaults.Count, cfg.Simulation.Count)
	assert.Equal(t, defaults.Seed, cfg.Simulation.Seed)
	assert.Equal(t, defaults.Workers, cfg.Simulation.Workers)
	assert.Equal(t, "custom", cfg.Model.Name)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	yaml := `
model:
  start: a
  edgess:
    - from: a
      to: b
`
	_, err := Parse([]byte(yaml))
	assert.Error(t, err)
}

func TestParse_RejectsMissingStart(t *testing.T) {
	yaml := `
model:
  edges:
    - from: a
      to: b
      probability: 1.0
      mean_duration: 1.0
severity:
  - name: s
    weight: 1
priority:
  - name: p
    weight: 1
`
	_, err := Parse([]byte(yaml))
	assert.ErrorContains(t, err, "Start")
}

func TestParse_RejectsBadProbability(t *testing.T) {
	yaml := `
model:
  start: a
  edges:
    - from: a
      to: b
      probability: 1.5
      mean_duration: 1.0
severity:
  - name: s
    weight: 1
priority:
  - name: p
    weight: 1
`
	_, err := Parse([]byte(yaml))
	assert.Error(t, err)
}

func TestParse_RejectsBadStateName(t *testing.T) {
	yaml := `
model:
  start: a
  edges:
    - from: a
      to: "has space"
      probability: 1.0
      mean_duration: 1.0
severity:
  - name: s
    weight: 1
priority:
  - name: p
    weight: 1
`
	_, err := Parse([]byte(yaml))
	assert.ErrorContains(t, err, "invalid characters")
}

func TestParse_RejectsNegativeCount(t *testing.T) {
	yaml := `
model:
  start: a
  edges:
    - from: a
      to: b
      probability: 1.0
      mean_duration: 1.0
severity:
  - name: s
    weight: 1
priority:
  - name: p
    weight: 1
simulation:
  count: -5
`
	_, err := Parse([]byte(yaml))
	assert.ErrorContains(t, err, "non-negative")
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "minimal", cfg.Model.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
