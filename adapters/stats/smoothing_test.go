package stats

import (
	"math"
	"testing"

	"fourcast/domain/backtest"
)

func TestSmooth_NormalizesToOne(t *testing.T) {
	vectors := []backtest.FrequencyVector{
		{12, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		{0.3, 0.3, 1.0, 0, 0, 2.6, 0, 0, 0.9, 0},
		{5, 5, 5, 5, 5, 5, 5, 5, 5, 5},
	}
	alphas := []float64{0.1, 0.5, 1.0, 2.0, 10.0}

	for _, freq := range vectors {
		for _, alpha := range alphas {
			probs, err := Smooth(freq, alpha)
			if err != nil {
				t.Fatalf("Smooth(%v, %.2f): %v", freq, alpha, err)
			}
			sum := 0.0
			for d, p := range probs {
				if p < 0 {
					t.Errorf("alpha %.2f: negative probability %.6f for digit %d", alpha, p, d)
				}
				sum += p
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("alpha %.2f: probabilities sum to %.12f, want 1", alpha, sum)
			}
		}
	}
}

func TestSmooth_AlphaZeroIsRawFrequency(t *testing.T) {
	freq := backtest.FrequencyVector{3, 0, 1, 0, 0, 0, 0, 0, 0, 0}
	probs, err := Smooth(freq, 0)
	if err != nil {
		t.Fatalf("Smooth: %v", err)
	}
	if math.Abs(probs[0]-0.75) > 1e-12 {
		t.Errorf("probs[0] = %.6f, want 0.75", probs[0])
	}
	if math.Abs(probs[2]-0.25) > 1e-12 {
		t.Errorf("probs[2] = %.6f, want 0.25", probs[2])
	}
	if probs[1] != 0 {
		t.Errorf("zero-count digit mapped to %.6f, want 0", probs[1])
	}
}

func TestSmooth_DegenerateDenominator(t *testing.T) {
	var empty backtest.FrequencyVector
	if _, err := Smooth(empty, 0); err == nil {
		t.Fatal("expected error for zero counts with alpha 0")
	}

	// Alpha alone is enough to make an empty window well-defined and uniform.
	probs, err := Smooth(empty, 1.0)
	if err != nil {
		t.Fatalf("Smooth with alpha 1: %v", err)
	}
	for d, p := range probs {
		if math.Abs(p-0.1) > 1e-12 {
			t.Errorf("digit %d: probability %.6f, want 0.1", d, p)
		}
	}
}
