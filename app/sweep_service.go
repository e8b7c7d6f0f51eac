package app

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"fourcast/domain/backtest"
	"fourcast/domain/core"
	"fourcast/domain/draw"
	"fourcast/internal"
)

// SweepService repeats the walk-forward backtest across a set of window
// sizes. Every size runs against its own config and owns its own summary;
// there is no shared mutable state between runs, and a failing size is
// recorded in its outcome slot without aborting the rest of the sweep.
type SweepService struct {
	backtester *Backtester
	log        *internal.Logger
}

// NewSweepService creates a sweep service.
func NewSweepService(log *internal.Logger) *SweepService {
	if log == nil {
		log = internal.DefaultLogger
	}
	return &SweepService{backtester: NewBacktester(), log: log}
}

// Run executes one sweep. The returned outcomes are ordered by window size,
// and the fingerprint is computed from the summaries alone, so re-running the
// same history and configuration yields an identical fingerprint.
func (s *SweepService) Run(ctx context.Context, history *draw.History, cfg backtest.SweepConfig) (*backtest.SweepResult, error) {
	start := time.Now()

	configs, err := cfg.WindowConfigs()
	if err != nil {
		return nil, err
	}

	outcomes := make([]backtest.WindowOutcome, len(configs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for idx, windowCfg := range configs {
		idx, windowCfg := idx, windowCfg
		g.Go(func() error {
			outcomes[idx] = s.runOne(gctx, history, windowCfg)
			return nil
		})
	}
	// Per-size failures are recorded in outcomes, never returned.
	_ = g.Wait()

	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].WindowSize < outcomes[j].WindowSize
	})

	result := &backtest.SweepResult{
		SweepID:     core.NewID(),
		Outcomes:    outcomes,
		Fingerprint: fingerprint(outcomes),
		RuntimeMs:   time.Since(start).Milliseconds(),
	}
	return result, nil
}

func (s *SweepService) runOne(ctx context.Context, history *draw.History, cfg backtest.WindowConfig) backtest.WindowOutcome {
	outcome := backtest.WindowOutcome{WindowSize: cfg.WindowSize}

	records, err := s.backtester.Run(ctx, history, cfg)
	if err != nil {
		s.log.Warn("window size %d failed: %v", cfg.WindowSize, err)
		outcome.Err = err.Error()
		return outcome
	}

	summary := Summarize(cfg.WindowSize, cfg.TopK, records)
	outcome.Summary = &summary
	outcome.Records = records

	s.log.Info("window size %d: %d draws tested", cfg.WindowSize, summary.Tested)
	return outcome
}

// fingerprint hashes a canonical rendering of the summaries. Sweep ID and
// runtime are deliberately excluded so identical inputs produce identical
// fingerprints.
func fingerprint(outcomes []backtest.WindowOutcome) core.Hash {
	data := ""
	for _, o := range outcomes {
		if o.Summary == nil {
			data += fmt.Sprintf("w%d:err=%s;", o.WindowSize, o.Err)
			continue
		}
		data += fmt.Sprintf("w%d:n=%d", o.WindowSize, o.Summary.Tested)
		for _, ks := range o.Summary.ByK {
			data += fmt.Sprintf("|k%d=%d/%d", ks.K, ks.Correct, ks.Total)
		}
		chi := o.Summary.ChiSquare
		data += fmt.Sprintf("|chi=%d/%d/%d;", chi.Uniform, chi.NonUniform, chi.Inconclusive)
	}
	return core.NewHash([]byte(data))
}
