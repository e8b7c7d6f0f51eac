package stats

import (
	"math"
	"testing"
	"time"

	"fourcast/domain/draw"
)

func makeDraw(seq int, digits map[draw.PrizeTier]draw.Digit) draw.DrawRecord {
	return draw.DrawRecord{
		Seq:    seq,
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, seq),
		Digits: digits,
	}
}

func TestWeightedDigitFrequencies(t *testing.T) {
	window := []draw.DrawRecord{
		makeDraw(0, map[draw.PrizeTier]draw.Digit{
			draw.TierFirst:   3,
			draw.TierSecond:  3,
			draw.TierStarter: 7,
		}),
		makeDraw(1, map[draw.PrizeTier]draw.Digit{
			draw.TierFirst:       3,
			draw.TierConsolation: 7,
		}),
	}

	freq := WeightedDigitFrequencies(window, draw.DefaultWeights())

	if math.Abs(freq[3]-3.0) > 1e-12 {
		t.Errorf("freq[3] = %.4f, want 3.0", freq[3])
	}
	if math.Abs(freq[7]-0.6) > 1e-12 {
		t.Errorf("freq[7] = %.4f, want 0.6", freq[7])
	}
	if math.Abs(freq.Sum()-3.6) > 1e-12 {
		t.Errorf("sum = %.4f, want 3.6", freq.Sum())
	}
}

func TestWeightedDigitFrequencies_UnweightedTiersIgnored(t *testing.T) {
	window := []draw.DrawRecord{
		makeDraw(0, map[draw.PrizeTier]draw.Digit{
			draw.TierFirst:  5,
			draw.TierSecond: 9,
		}),
	}
	weights := draw.Weights{draw.TierFirst: 1.0}

	freq := WeightedDigitFrequencies(window, weights)

	if freq[5] != 1.0 {
		t.Errorf("freq[5] = %.4f, want 1.0", freq[5])
	}
	if freq[9] != 0 {
		t.Errorf("freq[9] = %.4f, want 0 for unweighted tier", freq[9])
	}
}

func TestTierDigitFrequencies(t *testing.T) {
	window := []draw.DrawRecord{
		makeDraw(0, map[draw.PrizeTier]draw.Digit{draw.TierFirst: 2, draw.TierSecond: 8}),
		makeDraw(1, map[draw.PrizeTier]draw.Digit{draw.TierFirst: 2}),
		makeDraw(2, map[draw.PrizeTier]draw.Digit{draw.TierSecond: 4}),
	}

	freq := TierDigitFrequencies(window, draw.TierFirst)

	if freq[2] != 2 {
		t.Errorf("freq[2] = %.4f, want 2", freq[2])
	}
	if freq.Sum() != 2 {
		t.Errorf("sum = %.4f, want 2 (second tier must not count)", freq.Sum())
	}
}
