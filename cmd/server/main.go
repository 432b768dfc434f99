package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"datadash/adapters/pdf"
	"datadash/adapters/postgres"
	"datadash/adapters/storage"
	"datadash/adapters/tabular"
	"datadash/app"
	"datadash/internal/config"
	"datadash/internal/errors"
	"datadash/internal/graphs"
	"datadash/internal/insights"
	"datadash/internal/migration"
	"datadash/internal/report"
	"datadash/ui"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	runner := migration.NewRunner()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Printf("[Main] Database schema ready (migration version %s)", runner.Version())

	ensureDir(cfg.Paths.UploadDir)
	ensureDir(cfg.Paths.ReportsDir)

	datasetRepo := postgres.NewDatasetRepository(db)
	insightRepo := postgres.NewInsightRepository(db)
	cleanedRepo := postgres.NewCleanedRowRepository(db)
	fileStore := storage.NewLocalFileStore(cfg.Paths.UploadDir)
	reader := tabular.NewDataReader()

	datasetService := app.NewDatasetService(datasetRepo, insightRepo, cleanedRepo, fileStore, reader)
	insightService := app.NewInsightService(datasetRepo, insightRepo, fileStore, reader, insights.NewEngine())
	reportService := app.NewReportService(datasetRepo, insightRepo, report.NewBuilder(), pdf.NewRenderer(), cfg.Paths.ReportsDir)
	graphService := app.NewGraphService(datasetRepo, fileStore, reader, graphs.NewExtractor())

	server := ui.NewServer(cfg, datasetService, insightService, reportService, graphService)

	log.Printf("[Main] Starting Smart Data Dashboard API on :%s", cfg.Server.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDatabase initializes the PostgreSQL database connection
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	return db, nil
}

func ensureDir(path string) {
	if err := os.MkdirAll(path, 0755); err != nil {
		log.Fatalf("Failed to create directory %s: %v", path, err)
	}
}
