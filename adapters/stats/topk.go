package stats

import (
	"sort"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

// TopK returns the K digits with the highest probability, ties broken by
// ascending digit value. The result is fully deterministic for identical
// inputs; no randomness is permitted anywhere in the selection path, which
// keeps backtests reproducible.
func TopK(probs backtest.ProbabilityVector, k int) []draw.Digit {
	if k < 1 {
		return nil
	}
	if k > 10 {
		k = 10
	}
	order := []draw.Digit{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	sort.SliceStable(order, func(i, j int) bool {
		pi, pj := probs[order[i]], probs[order[j]]
		if pi != pj {
			return pi > pj
		}
		return order[i] < order[j]
	})
	selected := make([]draw.Digit, k)
	copy(selected, order[:k])
	return selected
}

// Contains reports whether the digit is in the selection.
func Contains(digits []draw.Digit, d draw.Digit) bool {
	for _, candidate := range digits {
		if candidate == d {
			return true
		}
	}
	return false
}
