package stats

import (
	"math"

	"github.com/montanaflynn/stats"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

// HistoryProfile is a descriptive summary of the weighted digit distribution
// across an entire draw history. It feeds the CLI profile command and the API;
// nothing in the prediction path depends on it.
type HistoryProfile struct {
	Draws       int                      `json:"draws"`
	Frequencies backtest.FrequencyVector `json:"frequencies"`
	Mean        float64                  `json:"mean"`
	StdDev      float64                  `json:"std_dev"`
	Min         float64                  `json:"min"`
	Max         float64                  `json:"max"`
	Median      float64                  `json:"median"`
	Entropy     float64                  `json:"entropy_bits"`
	Hottest     draw.Digit               `json:"hottest_digit"`
	Coldest     draw.Digit               `json:"coldest_digit"`
}

// ProfileHistory computes descriptive statistics over the per-digit weighted
// counts of the full history.
func ProfileHistory(history *draw.History, weights draw.Weights) HistoryProfile {
	freq := WeightedDigitFrequencies(history.Window(0, history.Len()), weights)

	counts := make([]float64, 10)
	copy(counts, freq[:])

	mean, _ := stats.Mean(counts)
	stdDev, _ := stats.StandardDeviation(counts)
	min, _ := stats.Min(counts)
	max, _ := stats.Max(counts)
	median, _ := stats.Median(counts)

	total := freq.Sum()
	entropy := 0.0
	hottest, coldest := draw.Digit(0), draw.Digit(0)
	for d, count := range freq {
		if total > 0 {
			p := count / total
			if p > 0 {
				entropy -= p * math.Log2(p)
			}
		}
		if count > freq[hottest] {
			hottest = draw.Digit(d)
		}
		if count < freq[coldest] {
			coldest = draw.Digit(d)
		}
	}

	return HistoryProfile{
		Draws:       history.Len(),
		Frequencies: freq,
		Mean:        mean,
		StdDev:      stdDev,
		Min:         min,
		Max:         max,
		Median:      median,
		Entropy:     entropy,
		Hottest:     hottest,
		Coldest:     coldest,
	}
}
