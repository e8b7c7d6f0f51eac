package backtest

import (
	"reflect"
	"testing"

	"fourcast/domain/draw"
)

func TestNewWindowConfig_Validation(t *testing.T) {
	cases := []struct {
		name    string
		window  int
		alpha   float64
		topK    []int
		weights draw.Weights
	}{
		{"zero window", 0, 1.0, []int{1}, nil},
		{"negative alpha", 12, -0.5, []int{1}, nil},
		{"empty topK", 12, 1.0, nil, nil},
		{"K too small", 12, 1.0, []int{0}, nil},
		{"K too large", 12, 1.0, []int{11}, nil},
		{"negative weight", 12, 1.0, []int{1}, draw.Weights{draw.TierFirst: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewWindowConfig(tc.window, tc.alpha, tc.topK, tc.weights); err == nil {
				t.Errorf("expected configuration error")
			}
		})
	}
}

func TestNewWindowConfig_SortsAndDeduplicatesK(t *testing.T) {
	cfg, err := NewWindowConfig(12, 1.0, []int{5, 1, 3, 5, 1}, nil)
	if err != nil {
		t.Fatalf("NewWindowConfig: %v", err)
	}
	if !reflect.DeepEqual(cfg.TopK, []int{1, 3, 5}) {
		t.Errorf("TopK = %v, want [1 3 5]", cfg.TopK)
	}
	if cfg.TargetTier != draw.TierFirst {
		t.Errorf("target tier = %s, want first", cfg.TargetTier)
	}
}

func TestSweepConfig_WindowConfigs(t *testing.T) {
	cfg := DefaultSweepConfig()
	cfg.WindowSizes = []int{52, 12}

	configs, err := cfg.WindowConfigs()
	if err != nil {
		t.Fatalf("WindowConfigs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(configs))
	}
	for _, c := range configs {
		if c.Alpha != cfg.Alpha || !reflect.DeepEqual(c.TopK, []int{1, 3, 5}) {
			t.Errorf("config for window %d diverged from shared fields", c.WindowSize)
		}
	}
}

func TestSweepConfig_EmptyWindowListRejected(t *testing.T) {
	cfg := DefaultSweepConfig()
	cfg.WindowSizes = nil
	if _, err := cfg.WindowConfigs(); err == nil {
		t.Fatal("expected error for empty window size list")
	}
}
