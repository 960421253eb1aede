package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dd0wney/cluso-defectsim/pkg/config"
	"github.com/dd0wney/cluso-defectsim/pkg/logging"
	"github.com/dd0wney/cluso-defectsim/pkg/metrics"
	"github.com/dd0wney/cluso-defectsim/pkg/model"
	"github.com/dd0wney/cluso-defectsim/pkg/sampling"
	"github.com/dd0wney/cluso-defectsim/pkg/simulation"
	"github.com/dd0wney/cluso-defectsim/pkg/stats"
	"github.com/dd0wney/cluso-defectsim/pkg/visualization"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML model file (empty = built-in reference model)")
		count      = flag.Int("count", 1000, "Number of defects to generate")
		seed       = flag.Int64("seed", 1, "Random seed")
		workers    = flag.Int("workers", 1, "Worker goroutines for generation")
		maxHops    = flag.Int("max-hops", 0, "Per-trial hop safety limit (0 = unlimited)")
		dotPath    = flag.String("dot", "", "Write the transition graph as Graphviz DOT to this file")
		jsonPath   = flag.String("json", "", "Write generated records as JSON to this file")
		quiet      = flag.Bool("quiet", false, "Suppress the summary printout")
	)
	flag.Parse()

	var (
		m        *model.TransitionModel
		severity *model.CategoricalDistribution
		priority *model.CategoricalDistribution
		name     = "reference"
		err      error
	)

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		name = cfg.Model.Name
		if m, err = cfg.BuildModel(); err != nil {
			log.Fatalf("Failed to build model: %v", err)
		}
		if severity, err = cfg.BuildSeverity(); err != nil {
			log.Fatalf("Failed to build severity distribution: %v", err)
		}
		if priority, err = cfg.BuildPriority(); err != nil {
			log.Fatalf("Failed to build priority distribution: %v", err)
		}
		// Flag defaults defer to the config's simulation section.
		if !flagSet("count") {
			*count = cfg.Simulation.Count
		}
		if !flagSet("seed") {
			*seed = cfg.Simulation.Seed
		}
		if !flagSet("workers") {
			*workers = cfg.Simulation.Workers
		}
		if !flagSet("max-hops") {
			*maxHops = cfg.Simulation.MaxHops
		}
	} else {
		m = model.ReferenceModel()
		severity = model.ReferenceSeverity()
		priority = model.ReferencePriority()
	}

	logger := logging.NewDefaultLogger()
	reg := metrics.DefaultRegistry()
	reg.SetModelSize(len(m.States()), len(m.Edges()))

	fmt.Printf("🐛 Cluso DefectSim - Defect Lifecycle Monte Carlo\n")
	fmt.Printf("=================================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Model:   %s (%d states, %d edges)\n", name, len(m.States()), len(m.Edges()))
	fmt.Printf("  Count:   %d\n", *count)
	fmt.Printf("  Seed:    %d\n", *seed)
	fmt.Printf("  Workers: %d\n\n", *workers)

	report := m.Validate()
	reg.RecordValidation(report.Valid)
	if !report.Valid {
		fmt.Printf("❌ Model is invalid:\n")
		for _, f := range report.Failures {
			fmt.Printf("  state %q: outgoing probabilities sum to %.9f\n", f.State, f.Sum)
		}
		os.Exit(1)
	}
	fmt.Printf("✅ Model valid: every branching state sums to 1.0\n")

	if *dotPath != "" {
		dot := visualization.ExportDOT(m, visualization.DefaultDOTOptions())
		if err = os.WriteFile(*dotPath, []byte(dot), 0o644); err != nil {
			log.Fatalf("Failed to write DOT file: %v", err)
		}
		fmt.Printf("✅ Wrote transition graph to %s\n", *dotPath)
	}

	fmt.Printf("\n📊 Generating %d defects...\n", *count)
	start := time.Now()

	gen := simulation.NewGenerator(m, severity, priority, sampling.NewSource(*seed), simulation.GeneratorOptions{
		MaxHops: *maxHops,
		Seed:    *seed,
		Logger:  logger,
		Metrics: reg,
	})

	var records []simulation.DefectRecord
	if *workers > 1 {
		records, err = gen.GenerateParallel(*count, *workers)
	} else {
		records, err = gen.Generate(*count)
	}
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}

	fmt.Printf("✅ Generated %d defects in %v\n\n", len(records), time.Since(start))

	if !*quiet {
		summary := stats.Summarize(records)
		fmt.Println(stats.FormatSummary(summary, severity, priority))
	}

	if *jsonPath != "" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			log.Fatalf("Failed to marshal records: %v", err)
		}
		if err := os.WriteFile(*jsonPath, data, 0o644); err != nil {
			log.Fatalf("Failed to write JSON file: %v", err)
		}
		fmt.Printf("✅ Wrote %d records to %s\n", len(records), *jsonPath)
	}
}

// flagSet reports whether the named flag was given on the command line.
func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
