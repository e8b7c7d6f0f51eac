package stats

import (
	"sort"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

// Cold-digit selectors complement the top-K path: instead of chasing the most
// probable digits they pick the under-represented ones. All of them are
// deterministic and return digits in ascending order.

// LowOccurrenceDigits selects digits whose count is at or below the given
// threshold. A negative threshold means "use the average count". If nothing
// falls below the threshold, the lowest half of the digits is returned.
func LowOccurrenceDigits(freq backtest.FrequencyVector, threshold float64) []draw.Digit {
	if threshold < 0 {
		threshold = freq.Sum() / 10
	}
	var selected []draw.Digit
	for d, count := range freq {
		if count <= threshold {
			selected = append(selected, draw.Digit(d))
		}
	}
	if len(selected) > 0 {
		return selected
	}
	// Everything is above threshold: fall back to the 5 lowest counts.
	order := []draw.Digit{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	sort.SliceStable(order, func(i, j int) bool {
		if freq[order[i]] != freq[order[j]] {
			return freq[order[i]] < freq[order[j]]
		}
		return order[i] < order[j]
	})
	selected = append(selected, order[:5]...)
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return selected
}

// ZeroPriorityDigits returns the digits that never occurred in the window, or
// falls back to the low-occurrence selection when every digit occurred.
func ZeroPriorityDigits(freq backtest.FrequencyVector) []draw.Digit {
	var zeros []draw.Digit
	for d, count := range freq {
		if count == 0 {
			zeros = append(zeros, draw.Digit(d))
		}
	}
	if len(zeros) > 0 {
		return zeros
	}
	return LowOccurrenceDigits(freq, -1)
}

// LowestOccurrenceDigits returns every digit tied for the minimum count.
func LowestOccurrenceDigits(freq backtest.FrequencyVector) []draw.Digit {
	min := freq[0]
	for _, count := range freq[1:] {
		if count < min {
			min = count
		}
	}
	var selected []draw.Digit
	for d, count := range freq {
		if count == min {
			selected = append(selected, draw.Digit(d))
		}
	}
	return selected
}
