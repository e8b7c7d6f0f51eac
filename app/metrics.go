package app

import (
	"fourcast/domain/backtest"
)

// Summarize reduces an ordered sequence of prediction records into a
// BacktestSummary for one window size. Degenerate records contribute to the
// inconclusive chi-square tally only; they are never counted as correct or
// incorrect predictions.
func Summarize(windowSize int, topK []int, records []backtest.PredictionRecord) backtest.BacktestSummary {
	summary := backtest.BacktestSummary{
		WindowSize: windowSize,
		Tested:     len(records),
	}

	correct := make(map[int]int, len(topK))
	total := make(map[int]int, len(topK))

	for _, rec := range records {
		summary.ChiSquare.Total++
		switch rec.ChiSquare.Class {
		case backtest.ClassUniform:
			summary.ChiSquare.Uniform++
		case backtest.ClassNonUniform:
			summary.ChiSquare.NonUniform++
		default:
			summary.ChiSquare.Inconclusive++
		}

		if rec.Degenerate {
			continue
		}
		for _, pick := range rec.Picks {
			total[pick.K]++
			if pick.Hit {
				correct[pick.K]++
			}
		}
	}

	for _, k := range topK {
		ks := backtest.KSummary{
			K:        k,
			Correct:  correct[k],
			Total:    total[k],
			Baseline: float64(k) / 10,
		}
		if ks.Total > 0 {
			ks.Accuracy = float64(ks.Correct) / float64(ks.Total)
		}
		// Baseline is K/10 with K >= 1, so the division is always defined.
		ks.Improvement = (ks.Accuracy - ks.Baseline) / ks.Baseline
		summary.ByK = append(summary.ByK, ks)
	}

	return summary
}
