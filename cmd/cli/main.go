// Command cli runs a model-comparison session from the terminal: it
// loads recorded learning curves (or generates demo data), prints the
// comparison tables as markdown and optionally exports an xlsx report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"curveval/adapters/curves"
	"curveval/adapters/report"
	"curveval/adapters/rng"
	"curveval/domain/core"
	"curveval/domain/eval"
	"curveval/internal"
	"curveval/internal/config"
	"curveval/internal/testkit"
	"curveval/ports"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := internal.NewDefaultLogger()

	var (
		curvesFile = flag.String("curves", cfg.Data.CurvesFile, "JSON file with recorded learning curves")
		demo       = flag.Bool("demo", false, "use generated demo data instead of a curve file")
		baseline   = flag.String("baseline", "", "switch the baseline case before comparing")
		xlsxPath   = flag.String("xlsx", "", "also export the tables to this xlsx file")
		seed       = flag.Int64("seed", cfg.Stats.BootstrapSeed, "bootstrap resampling seed")
	)
	flag.Parse()

	results, err := loadResults(*curvesFile, *demo, *seed)
	if err != nil {
		log.Error("failed to load evaluation data: %v", err)
		os.Exit(1)
	}

	if *baseline != "" {
		if err := results.SetBaselineCase(core.ExecutionCase(*baseline)); err != nil {
			log.Error("failed to switch baseline: %v", err)
			os.Exit(1)
		}
	}

	tables, err := results.ComputeAllComparisons(context.Background())
	if err != nil {
		log.Error("comparison failed: %v", err)
		os.Exit(1)
	}

	renderer := report.NewMarkdownRenderer()
	fmt.Print(renderer.Session(results.MetricNames(), tables))

	for _, name := range results.MetricNames() {
		result, err := results.MetricResult(name)
		if err != nil {
			continue
		}
		for _, c := range result.Cases() {
			caseResult, err := result.CaseResult(c)
			if err != nil {
				continue
			}
			log.Info("fit quality for %s on %s: %s", c, name, caseResult.EstimateFitQuality())
		}
	}

	if *xlsxPath != "" {
		exporter := report.NewExcelExporter()
		if err := exporter.Export(*xlsxPath, results.MetricNames(), tables); err != nil {
			log.Error("xlsx export failed: %v", err)
			os.Exit(1)
		}
		log.Info("wrote %s", *xlsxPath)
	}
}

// loadResults builds the session and seeds each aggregator's resampling
// stream so repeated runs produce identical tables.
func loadResults(curvesFile string, demo bool, seed int64) (*eval.Results, error) {
	var (
		results *eval.Results
		err     error
	)
	switch {
	case demo:
		results, err = testkit.NewKit(seed).DemoResults()
	case curvesFile != "":
		results, err = curves.Load(curvesFile)
	default:
		return nil, fmt.Errorf("either -curves or -demo is required")
	}
	if err != nil {
		return nil, err
	}

	var streams ports.RNG = rng.New()
	for _, name := range results.MetricNames() {
		result, err := results.MetricResult(name)
		if err != nil {
			return nil, err
		}
		result.SetRNG(streams.Stream("bootstrap/"+name, seed))
	}
	return results, nil
}
