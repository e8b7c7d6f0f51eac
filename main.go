package main

import (
	"context"
	"log"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"fourcast/adapters/excel"
	"fourcast/adapters/postgres"
	"fourcast/app"
	"fourcast/domain/backtest"
	"fourcast/internal"
	"fourcast/internal/api"
	"fourcast/internal/config"
	"fourcast/ports"
)

func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := internal.NewDefaultLogger()

	if cfg.Data.File == "" {
		log.Fatal("DRAW_FILE is required to serve backtests")
	}
	provider := excel.NewDrawReader(cfg.Data.File)

	var repo ports.DrawRepository
	if cfg.Database.Enabled {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := postgres.EnsureSchema(db); err != nil {
			log.Fatalf("failed to ensure schema: %v", err)
		}
		repo = postgres.NewDrawRepository(db)
		logger.Info("postgres persistence enabled")

		// Mirror the source file into the store so stored sweeps can be
		// related back to the exact history they ran against.
		history, err := provider.History(context.Background())
		if err != nil {
			log.Fatalf("failed to load draw history: %v", err)
		}
		if err := repo.SaveHistory(context.Background(), history); err != nil {
			log.Fatalf("failed to persist draw history: %v", err)
		}
	}

	defaults := backtest.DefaultSweepConfig()
	defaults.WindowSizes = cfg.Backtest.WindowSizes
	defaults.TopK = cfg.Backtest.TopK
	defaults.Alpha = cfg.Backtest.Alpha

	server := api.NewServer(app.NewSweepService(logger), provider, repo, defaults, logger)

	addr := ":" + cfg.Server.Port
	logger.Info("listening on %s", addr)
	if err := http.ListenAndServe(addr, server.Handler()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
