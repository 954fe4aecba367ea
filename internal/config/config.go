package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds all report-run settings, populated from environment variables.
type Config struct {
	InputPath string
	OutputDir string
	LogLevel  string
	LogFormat string

	// TopN is the rank cutoff for both impact views.
	TopN int

	// StrictQuality fails the run on any nonzero data-quality count instead
	// of reporting and proceeding.
	StrictQuality bool

	// CanonicalizeLabels enables the opt-in event-label alias lookup before
	// grouping. Off by default to preserve the exact-match contract.
	CanonicalizeLabels bool
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	topN, err := parseIntEnv("TOP_N", 10)
	if err != nil {
		return nil, err
	}

	strict, err := parseBoolEnv("STRICT_QUALITY", false)
	if err != nil {
		return nil, err
	}

	canonicalize, err := parseBoolEnv("CANONICALIZE_LABELS", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		InputPath:          envOrDefault("STORM_INPUT", "data/StormData.csv"),
		OutputDir:          envOrDefault("REPORT_OUTPUT_DIR", "out"),
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		LogFormat:          envOrDefault("LOG_FORMAT", "json"),
		TopN:               topN,
		StrictQuality:      strict,
		CanonicalizeLabels: canonicalize,
	}

	if cfg.InputPath == "" {
		return nil, errors.New("STORM_INPUT is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("REPORT_OUTPUT_DIR is required")
	}
	if cfg.TopN <= 0 {
		return nil, errors.New("TOP_N must be positive")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, s)
	}
	return b, nil
}
