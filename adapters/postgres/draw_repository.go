package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
	"fourcast/ports"
)

// drawRepository implements ports.DrawRepository on postgres.
type drawRepository struct {
	db *sqlx.DB
}

// NewDrawRepository creates a new draw repository.
func NewDrawRepository(db *sqlx.DB) ports.DrawRepository {
	return &drawRepository{db: db}
}

// SaveHistory replaces the stored draw history with the given one. History is
// append-only in practice; a full rewrite keeps the store in lockstep with
// the validated in-memory sequence.
func (r *drawRepository) SaveHistory(ctx context.Context, history *draw.History) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM draws`); err != nil {
		return fmt.Errorf("failed to clear draws: %w", err)
	}

	insert := `INSERT INTO draws (seq, draw_date, tier, digit) VALUES ($1, $2, $3, $4)`
	for i := 0; i < history.Len(); i++ {
		rec := history.At(i)
		for _, tier := range draw.AllTiers {
			digit, ok := rec.DigitFor(tier)
			if !ok {
				continue
			}
			if _, err := tx.ExecContext(ctx, insert, rec.Seq, rec.Date, string(tier), int(digit)); err != nil {
				return fmt.Errorf("failed to insert draw seq %d: %w", rec.Seq, err)
			}
		}
	}

	return tx.Commit()
}

// LoadHistory reads the stored draw history ordered by sequence index.
func (r *drawRepository) LoadHistory(ctx context.Context) (*draw.History, error) {
	rows, err := r.db.QueryxContext(ctx,
		`SELECT seq, draw_date, tier, digit FROM draws ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query draws: %w", err)
	}
	defer rows.Close()

	var records []draw.DrawRecord
	for rows.Next() {
		var (
			seq   int
			date  sql.NullTime
			tier  string
			digit int
		)
		if err := rows.Scan(&seq, &date, &tier, &digit); err != nil {
			return nil, fmt.Errorf("failed to scan draw row: %w", err)
		}
		prizeTier, err := draw.ParsePrizeTier(tier)
		if err != nil {
			return nil, fmt.Errorf("stored draw seq %d: %w", seq, err)
		}
		if len(records) == 0 || records[len(records)-1].Seq != seq {
			records = append(records, draw.DrawRecord{
				Seq:    seq,
				Date:   date.Time,
				Digits: make(map[draw.PrizeTier]draw.Digit),
			})
		}
		records[len(records)-1].Digits[prizeTier] = draw.Digit(digit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate draws: %w", err)
	}

	return draw.NewHistory(records)
}

// SaveSweep persists every successful summary of a sweep as one row per
// window size, with the full summary as a JSON payload.
func (r *drawRepository) SaveSweep(ctx context.Context, result *backtest.SweepResult) error {
	insert := `INSERT INTO backtest_summaries (sweep_id, window_size, fingerprint, payload)
		VALUES ($1, $2, $3, $4)`
	for _, outcome := range result.Outcomes {
		if outcome.Summary == nil {
			continue
		}
		payload, err := json.Marshal(outcome.Summary)
		if err != nil {
			return fmt.Errorf("failed to marshal summary for window %d: %w", outcome.WindowSize, err)
		}
		if _, err := r.db.ExecContext(ctx, insert,
			result.SweepID.String(), outcome.WindowSize, result.Fingerprint.String(), payload); err != nil {
			return fmt.Errorf("failed to insert summary for window %d: %w", outcome.WindowSize, err)
		}
	}
	return nil
}

// ListSummaries returns stored summaries for a window size, newest first.
// windowSize 0 lists every stored summary.
func (r *drawRepository) ListSummaries(ctx context.Context, windowSize int) ([]backtest.BacktestSummary, error) {
	query := `SELECT payload FROM backtest_summaries ORDER BY created_at DESC`
	args := []interface{}{}
	if windowSize > 0 {
		query = `SELECT payload FROM backtest_summaries WHERE window_size = $1 ORDER BY created_at DESC`
		args = append(args, windowSize)
	}

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var summaries []backtest.BacktestSummary
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		var summary backtest.BacktestSummary
		if err := json.Unmarshal(payload, &summary); err != nil {
			return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}
