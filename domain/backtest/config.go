package backtest

import (
	"fmt"
	"sort"

	"fourcast/domain/draw"
)

// ChiSquareSource selects which frequency vector feeds the uniformity test.
type ChiSquareSource string

const (
	// ChiSquareWeighted tests the same weighted tier-combined vector used
	// for prediction.
	ChiSquareWeighted ChiSquareSource = "weighted"
	// ChiSquareTargetTier tests raw counts of the prediction-target tier only.
	ChiSquareTargetTier ChiSquareSource = "target_tier"
)

// WindowConfig fixes every knob of one backtest run. Immutable once built;
// all validation happens here so invalid configuration never reaches the
// backtester.
type WindowConfig struct {
	WindowSize      int
	Alpha           float64
	TopK            []int
	Weights         draw.Weights
	TargetTier      draw.PrizeTier
	ChiSquareSource ChiSquareSource
}

// NewWindowConfig validates and constructs a window configuration.
func NewWindowConfig(windowSize int, alpha float64, topK []int, weights draw.Weights) (WindowConfig, error) {
	if windowSize < 1 {
		return WindowConfig{}, fmt.Errorf("window size must be positive, got %d", windowSize)
	}
	if alpha < 0 {
		return WindowConfig{}, fmt.Errorf("smoothing alpha must be >= 0, got %.4f", alpha)
	}
	if len(topK) == 0 {
		return WindowConfig{}, fmt.Errorf("at least one top-K value is required")
	}
	seen := make(map[int]bool, len(topK))
	ks := make([]int, 0, len(topK))
	for _, k := range topK {
		if k < 1 || k > 10 {
			return WindowConfig{}, fmt.Errorf("top-K value %d outside [1,10]", k)
		}
		if !seen[k] {
			seen[k] = true
			ks = append(ks, k)
		}
	}
	sort.Ints(ks)

	if weights == nil {
		weights = draw.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return WindowConfig{}, err
	}
	if alpha == 0 {
		// With alpha 0 the smoother divides by the raw window sum alone, so a
		// zero-weight target setup would be guaranteed degenerate. Catch the
		// statically detectable case here; per-window emptiness is handled by
		// the backtester as a degenerate record.
		if w, ok := weights[draw.TierFirst]; ok && w == 0 && len(weights) == 1 {
			return WindowConfig{}, fmt.Errorf("alpha 0 with zero-weight configuration is degenerate")
		}
	}

	return WindowConfig{
		WindowSize:      windowSize,
		Alpha:           alpha,
		TopK:            ks,
		Weights:         weights,
		TargetTier:      draw.TierFirst,
		ChiSquareSource: ChiSquareWeighted,
	}, nil
}

// SweepConfig describes a family of window configurations that share every
// field except the window size.
type SweepConfig struct {
	WindowSizes     []int
	Alpha           float64
	TopK            []int
	Weights         draw.Weights
	TargetTier      draw.PrizeTier
	ChiSquareSource ChiSquareSource
}

// DefaultSweepConfig mirrors the conventional analysis setup.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		WindowSizes:     []int{12, 24, 52, 100},
		Alpha:           1.0,
		TopK:            []int{1, 3, 5},
		Weights:         draw.DefaultWeights(),
		TargetTier:      draw.TierFirst,
		ChiSquareSource: ChiSquareWeighted,
	}
}

// WindowConfigs expands the sweep into one validated WindowConfig per size.
func (c SweepConfig) WindowConfigs() ([]WindowConfig, error) {
	if len(c.WindowSizes) == 0 {
		return nil, fmt.Errorf("window size list is empty")
	}
	configs := make([]WindowConfig, 0, len(c.WindowSizes))
	for _, size := range c.WindowSizes {
		cfg, err := NewWindowConfig(size, c.Alpha, c.TopK, c.Weights)
		if err != nil {
			return nil, fmt.Errorf("window size %d: %w", size, err)
		}
		if c.TargetTier != "" {
			cfg.TargetTier = c.TargetTier
		}
		if c.ChiSquareSource != "" {
			cfg.ChiSquareSource = c.ChiSquareSource
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}
