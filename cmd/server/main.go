// Command server starts the results viewer over a curve file (or demo
// data when none is configured).
package main

import (
	"os"

	"github.com/joho/godotenv"

	"curveval/adapters/curves"
	"curveval/adapters/rng"
	"curveval/domain/eval"
	"curveval/internal"
	"curveval/internal/config"
	"curveval/internal/testkit"
	"curveval/ui"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := internal.NewDefaultLogger()

	var (
		results *eval.Results
		err     error
	)
	if cfg.Data.CurvesFile != "" {
		results, err = curves.Load(cfg.Data.CurvesFile)
	} else {
		log.Warn("CURVES_FILE not set, serving generated demo data")
		results, err = testkit.NewKit(cfg.Stats.BootstrapSeed).DemoResults()
	}
	if err != nil {
		log.Error("failed to load evaluation data: %v", err)
		os.Exit(1)
	}

	streams := rng.New()
	for _, name := range results.MetricNames() {
		result, err := results.MetricResult(name)
		if err != nil {
			log.Error("%v", err)
			os.Exit(1)
		}
		result.SetRNG(streams.Stream("bootstrap/"+name, cfg.Stats.BootstrapSeed))
	}

	server := ui.NewServer(cfg.Server, results)
	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Error("server stopped: %v", err)
		os.Exit(1)
	}
}
