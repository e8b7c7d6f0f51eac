package stats

import (
	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

// WeightedDigitFrequencies accumulates, for every draw in the window and
// every tier it carries, the tier's weight into the bucket of the observed
// digit. Pure function of its inputs.
func WeightedDigitFrequencies(window []draw.DrawRecord, weights draw.Weights) backtest.FrequencyVector {
	var freq backtest.FrequencyVector
	for _, rec := range window {
		for tier, digit := range rec.Digits {
			weight, ok := weights[tier]
			if !ok {
				continue
			}
			freq[digit] += weight
		}
	}
	return freq
}

// TierDigitFrequencies counts raw occurrences of a single tier's digit over
// the window, each with weight 1. Used when the uniformity test is configured
// to look at the target tier alone.
func TierDigitFrequencies(window []draw.DrawRecord, tier draw.PrizeTier) backtest.FrequencyVector {
	var freq backtest.FrequencyVector
	for _, rec := range window {
		if digit, ok := rec.Digits[tier]; ok {
			freq[digit]++
		}
	}
	return freq
}
