package main

import (
	"context"
	"os"

	"skyhunt-service/internal/infrastructure/config"
	"skyhunt-service/internal/infrastructure/persistence"
	"skyhunt-service/internal/interface/dataset"
	"skyhunt-service/internal/interface/repository"
	"skyhunt-service/internal/usecase"
	"skyhunt-service/pkg/logger"
)

// Offline batch: reduce the historical fare dataset into baseline_metrics.
// Safe to re-run; existing keys are never overwritten.
func main() {
	log := logger.NewLogger()
	log.Info("Starting baseline seeding")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	path := cfg.DatasetPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := gormDB.AutoMigrate(&repository.BaselineMetrics{}); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	source := dataset.NewCSVFareSource(path, log)
	builder := usecase.NewBaselineBuilder(source, repository.NewGormBaselineRepository(gormDB), usecase.DefaultCityMap, log)

	report, err := builder.Build(context.Background())
	if err != nil {
		log.Fatal("Baseline build failed", "error", err)
	}

	log.Info("Baseline seeding finished",
		"recordsRead", report.RecordsRead,
		"skipped", report.Skipped,
		"groups", report.Groups,
		"inserted", report.Inserted)
}
