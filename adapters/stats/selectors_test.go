package stats

import (
	"reflect"
	"testing"

	"fourcast/domain/backtest"
	"fourcast/domain/draw"
)

func TestZeroPriorityDigits(t *testing.T) {
	freq := backtest.FrequencyVector{1, 0, 2, 0, 1, 1, 1, 1, 1, 1}
	got := ZeroPriorityDigits(freq)
	want := []draw.Digit{1, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestZeroPriorityDigits_FallsBackWhenAllOccur(t *testing.T) {
	freq := backtest.FrequencyVector{1, 9, 1, 9, 9, 9, 9, 9, 9, 1}
	got := ZeroPriorityDigits(freq)
	// Average is 6.6, so the three low digits qualify.
	want := []draw.Digit{0, 2, 9}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLowestOccurrenceDigits_TiesKeptTogether(t *testing.T) {
	freq := backtest.FrequencyVector{4, 2, 7, 2, 5, 6, 2, 8, 9, 3}
	got := LowestOccurrenceDigits(freq)
	want := []draw.Digit{1, 3, 6}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
