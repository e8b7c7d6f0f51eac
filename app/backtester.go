package app

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fourcast/adapters/stats"
	"fourcast/domain/backtest"
	"fourcast/domain/draw"
	"fourcast/internal/errors"
)

// Backtester walks forward through a draw history for one window
// configuration. Each tested draw i trains on draws[i-W .. i-1] only; the
// window never contains draw i or anything after it, which is the sole
// mechanism preventing look-ahead bias.
type Backtester struct{}

// NewBacktester creates a backtester.
func NewBacktester() *Backtester {
	return &Backtester{}
}

// Run evaluates every eligible draw and returns prediction records in
// strictly increasing draw-index order. Records are independent of each other
// once their training windows are fixed, so they are computed in parallel and
// placed by index; the output is identical to a sequential walk.
func (b *Backtester) Run(ctx context.Context, history *draw.History, cfg backtest.WindowConfig) ([]backtest.PredictionRecord, error) {
	total := history.Len()
	if total <= cfg.WindowSize {
		return nil, errors.InsufficientData(
			fmt.Sprintf("window size %d requires more than %d draws", cfg.WindowSize, total))
	}

	records := make([]backtest.PredictionRecord, total-cfg.WindowSize)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := cfg.WindowSize; i < total; i++ {
		i := i
		g.Go(func() error {
			rec, err := b.step(history, cfg, i)
			if err != nil {
				return err
			}
			records[i-cfg.WindowSize] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}

// step evaluates a single draw index against its training window.
func (b *Backtester) step(history *draw.History, cfg backtest.WindowConfig, i int) (backtest.PredictionRecord, error) {
	window := history.Window(i-cfg.WindowSize, i)
	tested := history.At(i)

	actual, ok := tested.DigitFor(cfg.TargetTier)
	if !ok {
		return backtest.PredictionRecord{}, errors.DataFormat(
			fmt.Sprintf("draw index %d missing target tier %s", i, cfg.TargetTier))
	}

	freq := stats.WeightedDigitFrequencies(window, cfg.Weights)

	chiInput := freq
	if cfg.ChiSquareSource == backtest.ChiSquareTargetTier {
		chiInput = stats.TierDigitFrequencies(window, cfg.TargetTier)
	}
	chiResult := stats.UniformityTest(chiInput)

	record := backtest.PredictionRecord{
		DrawIndex:   i,
		Date:        tested.Date,
		Actual:      actual,
		Frequencies: freq,
		ChiSquare:   chiResult,
	}

	probs, err := stats.Smooth(freq, cfg.Alpha)
	if err != nil {
		// Degenerate window: keep the record for auditability but never let
		// it count as a hit or a miss.
		record.Degenerate = true
		record.ChiSquare.Class = backtest.ClassInconclusive
		return record, nil
	}
	record.Probabilities = probs

	picks := make([]backtest.TopKPick, 0, len(cfg.TopK))
	for _, k := range cfg.TopK {
		digits := stats.TopK(probs, k)
		picks = append(picks, backtest.TopKPick{
			K:      k,
			Digits: digits,
			Hit:    stats.Contains(digits, actual),
		})
	}
	record.Picks = picks
	return record, nil
}
