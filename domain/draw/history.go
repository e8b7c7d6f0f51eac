package draw

import (
	"fmt"
)

// History is an ordered, immutable sequence of draw records. The constructor
// copies its input and validates ordering, so a History handed to concurrent
// readers is safe without coordination.
type History struct {
	records []DrawRecord
}

// NewHistory builds a history from records ordered by sequence index.
// Sequence indices must be strictly increasing and every digit in range.
func NewHistory(records []DrawRecord) (*History, error) {
	copied := make([]DrawRecord, len(records))
	for i, rec := range records {
		if i > 0 && rec.Seq <= records[i-1].Seq {
			return nil, fmt.Errorf("draw %d: sequence %d not strictly increasing after %d", i, rec.Seq, records[i-1].Seq)
		}
		digits := make(map[PrizeTier]Digit, len(rec.Digits))
		for tier, d := range rec.Digits {
			if !d.Valid() {
				return nil, fmt.Errorf("draw seq %d: digit %d out of range for tier %s", rec.Seq, d, tier)
			}
			digits[tier] = d
		}
		copied[i] = DrawRecord{Seq: rec.Seq, Date: rec.Date, Digits: digits}
	}
	return &History{records: copied}, nil
}

// Len returns the number of draws.
func (h *History) Len() int {
	return len(h.records)
}

// At returns the draw at position i.
func (h *History) At(i int) DrawRecord {
	return h.records[i]
}

// Window returns draws in [lo, hi). Callers must treat the slice as read-only.
func (h *History) Window(lo, hi int) []DrawRecord {
	return h.records[lo:hi]
}

// Last returns the most recent n draws, or all of them if fewer exist.
func (h *History) Last(n int) []DrawRecord {
	if n >= len(h.records) {
		return h.records
	}
	return h.records[len(h.records)-n:]
}
