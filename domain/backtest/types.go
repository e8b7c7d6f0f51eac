package backtest

import (
	"time"

	"fourcast/domain/core"
	"fourcast/domain/draw"
)

// FrequencyVector holds weighted observation counts per digit 0-9.
type FrequencyVector [10]float64

// Sum returns the total weighted observations in the vector.
func (f FrequencyVector) Sum() float64 {
	total := 0.0
	for _, v := range f {
		total += v
	}
	return total
}

// ProbabilityVector holds a probability per digit 0-9. Entries are
// non-negative and sum to 1 within floating tolerance.
type ProbabilityVector [10]float64

// Classification is the outcome of a chi-square uniformity test.
type Classification string

const (
	ClassUniform      Classification = "uniform"
	ClassNonUniform   Classification = "non_uniform"
	ClassInconclusive Classification = "inconclusive" // degenerate window, test skipped
)

// ChiSquareResult carries the uniformity test outcome for one training window.
type ChiSquareResult struct {
	Statistic        float64        `json:"statistic"`
	PValue           float64        `json:"p_value"`
	Class            Classification `json:"classification"`
	DegreesOfFreedom int            `json:"degrees_of_freedom"`
}

// TopKPick is one top-K digit set evaluated against the ground truth.
type TopKPick struct {
	K      int          `json:"k"`
	Digits []draw.Digit `json:"digits"`
	Hit    bool         `json:"hit"`
}

// PredictionRecord captures everything used and produced for one tested draw.
// Records are emitted in strictly increasing draw-index order; the training
// window never includes the tested draw or anything after it.
type PredictionRecord struct {
	DrawIndex     int               `json:"draw_index"`
	Date          time.Time         `json:"date"`
	Actual        draw.Digit        `json:"actual"`
	Frequencies   FrequencyVector   `json:"frequencies"`
	Probabilities ProbabilityVector `json:"probabilities"`
	Picks         []TopKPick        `json:"picks"`
	ChiSquare     ChiSquareResult   `json:"chi_square"`

	// Degenerate marks a window with zero weighted observations. Such a
	// record is never tallied as a hit or a miss.
	Degenerate bool `json:"degenerate,omitempty"`
}

// KSummary aggregates hit/miss outcomes for one top-K threshold.
type KSummary struct {
	K           int     `json:"k"`
	Correct     int     `json:"correct"`
	Total       int     `json:"total"`
	Accuracy    float64 `json:"accuracy"`
	Baseline    float64 `json:"baseline"`    // K/10 under uniform random guessing
	Improvement float64 `json:"improvement"` // (accuracy-baseline)/baseline
}

// ChiSquareTally counts window classifications across one backtest run.
type ChiSquareTally struct {
	Uniform      int `json:"uniform"`
	NonUniform   int `json:"non_uniform"`
	Inconclusive int `json:"inconclusive"`
	Total        int `json:"total"`
}

// BacktestSummary is the reduced result for one window size.
type BacktestSummary struct {
	WindowSize int            `json:"window_size"`
	Tested     int            `json:"tested"`
	ByK        []KSummary     `json:"by_k"`
	ChiSquare  ChiSquareTally `json:"chi_square"`
}

// WindowOutcome is the per-window-size slot in a sweep. Either Summary and
// Records are set, or Err explains why this size could not run. One failed
// size never aborts the rest of the sweep.
type WindowOutcome struct {
	WindowSize int                `json:"window_size"`
	Summary    *BacktestSummary   `json:"summary,omitempty"`
	Records    []PredictionRecord `json:"records,omitempty"`
	Err        string             `json:"error,omitempty"`
}

// SweepResult is the complete output of one window sweep.
type SweepResult struct {
	SweepID     core.ID         `json:"sweep_id"`
	Outcomes    []WindowOutcome `json:"outcomes"`
	Fingerprint core.Hash       `json:"fingerprint"`
	RuntimeMs   int64           `json:"runtime_ms"`
}
