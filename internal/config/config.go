package config

import (
	"os"
	"strconv"
	"strings"

	"fourcast/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Database DatabaseConfig
	Server   ServerConfig
	Backtest BacktestConfig
}

// DataConfig holds draw history data source settings
type DataConfig struct {
	File string // xlsx or csv file with historical draws
}

// DatabaseConfig holds optional postgres settings
type DatabaseConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// BacktestConfig holds default sweep parameters
type BacktestConfig struct {
	WindowSizes []int
	TopK        []int
	Alpha       float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			File: getEnvOrDefault("DRAW_FILE", ""),
		},
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			Enabled: os.Getenv("DATABASE_URL") != "",
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Backtest: BacktestConfig{
			WindowSizes: getEnvIntsOrDefault("WINDOW_SIZES", []int{12, 24, 52, 100}),
			TopK:        getEnvIntsOrDefault("TOP_K", []int{1, 3, 5}),
			Alpha:       getEnvFloatOrDefault("ALPHA", 1.0),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if len(cfg.Backtest.WindowSizes) == 0 {
		return errors.ConfigInvalid("WINDOW_SIZES must not be empty")
	}
	for _, w := range cfg.Backtest.WindowSizes {
		if w < 1 {
			return errors.ConfigInvalid("window sizes must be positive")
		}
	}
	for _, k := range cfg.Backtest.TopK {
		if k < 1 || k > 10 {
			return errors.ConfigInvalid("top-K values must be in [1,10]")
		}
	}
	if cfg.Backtest.Alpha < 0 {
		return errors.ConfigInvalid("ALPHA must be >= 0")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvIntsOrDefault(key string, defaultValue []int) []int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []int
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return defaultValue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
