package ports

import (
	"context"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

// HistoryProvider yields the ordered, already validated sequence of draw
// records. Parsing of raw source formats lives behind this boundary.
type HistoryProvider interface {
	History(ctx context.Context) (*draw.History, error)
}

// NumberProvider yields the full winning numbers of the same source, used by
// the number filter and payout simulation.
type NumberProvider interface {
	WinningNumbers(ctx context.Context) ([]draw.WinningNumber, error)
}

// DrawRepository persists draw history and backtest outcomes.
type DrawRepository interface {
	SaveHistory(ctx context.Context, history *draw.History) error
	LoadHistory(ctx context.Context) (*draw.History, error)
	SaveSweep(ctx context.Context, result *backtest.SweepResult) error
	ListSummaries(ctx context.Context, windowSize int) ([]backtest.BacktestSummary, error)
}

// ReportRenderer turns a sweep result into a presentable document.
type ReportRenderer interface {
	Render(result *backtest.SweepResult) (string, error)
	RenderHTML(result *backtest.SweepResult) (string, error)
}
