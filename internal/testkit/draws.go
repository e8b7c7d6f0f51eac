package testkit

import (
	"fmt"
	"math/rand"
	"time"

	"fourcast/domain/draw"
)

// GeneratorConfig controls synthetic draw generation.
type GeneratorConfig struct {
	Draws int
	Seed  int64
	// Bias skews the first-prize digit toward BiasDigit with the given
	// probability; 0 produces uniform draws.
	Bias      float64
	BiasDigit draw.Digit
}

// DefaultConfig returns a small uniform history.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{Draws: 100, Seed: 42}
}

// Generate builds a deterministic synthetic history. Identical configs always
// yield identical histories.
func Generate(cfg GeneratorConfig) (*draw.History, error) {
	if cfg.Draws < 1 {
		return nil, fmt.Errorf("draw count must be positive, got %d", cfg.Draws)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	records := make([]draw.DrawRecord, cfg.Draws)
	for i := range records {
		digits := make(map[draw.PrizeTier]draw.Digit, len(draw.AllTiers))
		for _, tier := range draw.AllTiers {
			d := draw.Digit(rng.Intn(10))
			if tier == draw.TierFirst && cfg.Bias > 0 && rng.Float64() < cfg.Bias {
				d = cfg.BiasDigit
			}
			digits[tier] = d
		}
		records[i] = draw.DrawRecord{
			Seq:    i,
			Date:   start.AddDate(0, 0, i*3),
			Digits: digits,
		}
	}
	return draw.NewHistory(records)
}

// HistoryFromFirstDigits builds a single-tier history whose first-prize
// digits follow the given sequence exactly. Useful for crafting hit patterns.
func HistoryFromFirstDigits(digits []draw.Digit) (*draw.History, error) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := make([]draw.DrawRecord, len(digits))
	for i, d := range digits {
		records[i] = draw.DrawRecord{
			Seq:    i,
			Date:   start.AddDate(0, 0, i*3),
			Digits: map[draw.PrizeTier]draw.Digit{draw.TierFirst: d},
		}
	}
	return draw.NewHistory(records)
}

// MustHistory panics on construction errors. Test helper only.
func MustHistory(h *draw.History, err error) *draw.History {
	if err != nil {
		panic(err)
	}
	return h
}
