package main

import (
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"pulseboard/internal/api"
	"pulseboard/internal/config"
	"pulseboard/internal/logger"
	"pulseboard/internal/mockdata"
	"pulseboard/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Log.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Log.Level)

	seed := cfg.Data.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	now := time.Now()
	generator := mockdata.NewGenerator(mockdata.GeneratorConfig{
		RecordCount: cfg.Data.RecordCount,
		Now:         now,
		Seed:        seed,
	})
	records := generator.Generate()
	logger.Log.Infof("Generated %d synthetic project records (seed=%d)", len(records), seed)

	app, err := ui.NewApp(ui.Config{
		Records:          records,
		Now:              now,
		SimulatedLatency: cfg.UI.SimulatedLatency,
	})
	if err != nil {
		logger.Log.Fatalf("Failed to initialize UI: %v", err)
	}

	apiServer := api.NewServer(records, now, seed)

	var g errgroup.Group
	g.Go(func() error {
		return app.Start(cfg.Server.UIPort)
	})
	g.Go(func() error {
		return apiServer.Start(cfg.Server.APIPort)
	})
	if err := g.Wait(); err != nil {
		logger.Log.Fatalf("Server exited: %v", err)
	}
}
