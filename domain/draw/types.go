package draw

import (
	"fmt"
	"time"
)

// Digit is a single lottery digit in [0,9].
type Digit int

// Valid reports whether the digit is in range.
func (d Digit) Valid() bool {
	return d >= 0 && d <= 9
}

// PrizeTier identifies a prize class within one draw.
type PrizeTier string

const (
	TierFirst       PrizeTier = "first"
	TierSecond      PrizeTier = "second"
	TierThird       PrizeTier = "third"
	TierStarter     PrizeTier = "starter"
	TierConsolation PrizeTier = "consolation"
)

// AllTiers lists every prize tier in rank order.
var AllTiers = []PrizeTier{TierFirst, TierSecond, TierThird, TierStarter, TierConsolation}

// ParsePrizeTier maps a raw tier label to a PrizeTier.
func ParsePrizeTier(s string) (PrizeTier, error) {
	for _, tier := range AllTiers {
		if string(tier) == s {
			return tier, nil
		}
	}
	return "", fmt.Errorf("unknown prize tier: %q", s)
}

// Weights maps prize tiers to their contribution in weighted frequency analysis.
// Weights do not need to sum to 1.
type Weights map[PrizeTier]float64

// DefaultWeights weights the top three tiers fully and the minor tiers at 0.3.
func DefaultWeights() Weights {
	return Weights{
		TierFirst:       1.0,
		TierSecond:      1.0,
		TierThird:       1.0,
		TierStarter:     0.3,
		TierConsolation: 0.3,
	}
}

// Validate checks that no weight is negative and at least one is positive.
func (w Weights) Validate() error {
	positive := false
	for tier, weight := range w {
		if weight < 0 {
			return fmt.Errorf("negative weight %.4f for tier %s", weight, tier)
		}
		if weight > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("all tier weights are zero")
	}
	return nil
}

// DrawRecord is one historical draw: a strictly increasing sequence index,
// the draw date, and the digit observed per prize tier. Records are created
// once during ingestion and never mutated; ordering by Seq is the sole
// temporal axis used downstream, never the date.
type DrawRecord struct {
	Seq    int
	Date   time.Time
	Digits map[PrizeTier]Digit
}

// DigitFor returns the digit observed for a tier, and whether it was present.
func (r DrawRecord) DigitFor(tier PrizeTier) (Digit, bool) {
	d, ok := r.Digits[tier]
	return d, ok
}

// WinningNumber is a full prize number drawn in one tier of one draw.
// Kept alongside DrawRecord for number filtering and payout simulation;
// the prediction path only ever consumes first digits.
type WinningNumber struct {
	Number string
	Tier   PrizeTier
	Date   time.Time
}
