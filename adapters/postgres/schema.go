package postgres

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the tables this adapter needs if they do not exist.
func EnsureSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS draws (
			seq INTEGER NOT NULL,
			draw_date TIMESTAMPTZ NOT NULL,
			tier TEXT NOT NULL,
			digit SMALLINT NOT NULL CHECK (digit BETWEEN 0 AND 9),
			PRIMARY KEY (seq, tier)
		)`,
		`CREATE TABLE IF NOT EXISTS backtest_summaries (
			id BIGSERIAL PRIMARY KEY,
			sweep_id TEXT NOT NULL,
			window_size INTEGER NOT NULL,
			fingerprint TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_backtest_summaries_window
			ON backtest_summaries (window_size, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
