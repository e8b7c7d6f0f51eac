package draw

import (
	"testing"
	"time"
)

func record(seq int, digit Digit) DrawRecord {
	return DrawRecord{
		Seq:    seq,
		Date:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, seq),
		Digits: map[PrizeTier]Digit{TierFirst: digit},
	}
}

func TestNewHistory_RejectsNonIncreasingSequence(t *testing.T) {
	_, err := NewHistory([]DrawRecord{record(0, 1), record(2, 2), record(2, 3)})
	if err == nil {
		t.Fatal("expected error for repeated sequence index")
	}

	_, err = NewHistory([]DrawRecord{record(5, 1), record(3, 2)})
	if err == nil {
		t.Fatal("expected error for decreasing sequence index")
	}
}

func TestNewHistory_RejectsOutOfRangeDigit(t *testing.T) {
	bad := record(0, 1)
	bad.Digits[TierSecond] = 12
	if _, err := NewHistory([]DrawRecord{bad}); err == nil {
		t.Fatal("expected error for digit outside [0,9]")
	}
}

func TestHistory_CopiesInput(t *testing.T) {
	records := []DrawRecord{record(0, 1), record(1, 2)}
	history, err := NewHistory(records)
	if err != nil {
		t.Fatalf("NewHistory: %v", err)
	}

	// Mutating the caller's records must not leak into the history.
	records[0].Digits[TierFirst] = 9
	if got, _ := history.At(0).DigitFor(TierFirst); got != 1 {
		t.Errorf("history mutated through input slice: got %d, want 1", got)
	}
}

func TestHistory_WindowBounds(t *testing.T) {
	history, err := NewHistory([]DrawRecord{record(0, 1), record(1, 2), record(2, 3), record(3, 4)})
	if err != nil {
		t.Fatalf("NewHistory: %v", err)
	}

	window := history.Window(1, 3)
	if len(window) != 2 {
		t.Fatalf("window length = %d, want 2", len(window))
	}
	if window[0].Seq != 1 || window[1].Seq != 2 {
		t.Errorf("window sequences = %d,%d, want 1,2", window[0].Seq, window[1].Seq)
	}

	last := history.Last(2)
	if len(last) != 2 || last[0].Seq != 2 {
		t.Errorf("Last(2) starts at seq %d, want 2", last[0].Seq)
	}
}

func TestWeights_Validate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	if err := (Weights{TierFirst: -0.1}).Validate(); err == nil {
		t.Error("expected error for negative weight")
	}
	if err := (Weights{TierFirst: 0, TierSecond: 0}).Validate(); err == nil {
		t.Error("expected error for all-zero weights")
	}
}
