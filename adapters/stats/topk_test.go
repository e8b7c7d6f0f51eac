package stats

import (
	"reflect"
	"testing"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

func TestTopK_ExactKDistinctDigits(t *testing.T) {
	probs := backtest.ProbabilityVector{0.05, 0.2, 0.1, 0.05, 0.15, 0.1, 0.1, 0.1, 0.1, 0.05}
	for k := 1; k <= 10; k++ {
		digits := TopK(probs, k)
		if len(digits) != k {
			t.Fatalf("k=%d: got %d digits", k, len(digits))
		}
		seen := make(map[draw.Digit]bool)
		for _, d := range digits {
			if seen[d] {
				t.Fatalf("k=%d: duplicate digit %d", k, d)
			}
			seen[d] = true
		}
	}
}

func TestTopK_Deterministic(t *testing.T) {
	probs := backtest.ProbabilityVector{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}
	first := TopK(probs, 3)
	for i := 0; i < 100; i++ {
		if got := TopK(probs, 3); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: got %v, want %v", i, got, first)
		}
	}
}

func TestTopK_TiesBrokenByAscendingDigit(t *testing.T) {
	// Digits 4 and 7 tie for first; 4 must win. Remaining uniform tail ties
	// resolve in ascending digit order too.
	probs := backtest.ProbabilityVector{0.08, 0.08, 0.08, 0.08, 0.14, 0.08, 0.08, 0.14, 0.08, 0.16}
	got := TopK(probs, 3)
	want := []draw.Digit{9, 4, 7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	uniform := backtest.ProbabilityVector{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}
	got = TopK(uniform, 4)
	want = []draw.Digit{0, 1, 2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("uniform ties: got %v, want %v", got, want)
	}
}

func TestTopK_AllTenDigits(t *testing.T) {
	probs := backtest.ProbabilityVector{0.05, 0.2, 0.1, 0.05, 0.15, 0.1, 0.1, 0.1, 0.1, 0.05}
	digits := TopK(probs, 10)
	if len(digits) != 10 {
		t.Fatalf("got %d digits, want 10", len(digits))
	}
	for want := draw.Digit(0); want <= 9; want++ {
		if !Contains(digits, want) {
			t.Errorf("digit %d missing from full selection", want)
		}
	}
}
