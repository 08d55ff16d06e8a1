package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Environment string         `toml:"environment"` // "development" or "production"
	Logging     LoggingConfig  `toml:"logging"`
	Pipeline    PipelineConfig `toml:"pipeline"`
}

type LoggingConfig struct {
	Level      string   `toml:"level"`       // "debug", "info", "warn", "error"
	Format     string   `toml:"format"`      // "json" or "text"
	Output     []string `toml:"output"`      // "stdout", "file"
	TimeFormat string   `toml:"time_format"` // Time format for logs (default: "15:04:05.000")
}

// PipelineConfig contains tuning for the trend intelligence pipeline.
// Values here are loaded once at startup and treated as immutable for the
// process lifetime so repeated runs on the same batch stay deterministic.
type PipelineConfig struct {
	MaxInsights int  `toml:"max_insights"` // Upper bound on insights per report (1-50)
	GraceHours  int  `toml:"grace_hours"`  // Grace margin added to the lookback window when filtering by publish time
	Parallel    bool `toml:"parallel"`     // Score personas concurrently (results are identical either way)
}

// Pipeline config bounds
const (
	MinMaxInsights = 1
	MaxMaxInsights = 50
)

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Output:     []string{"stdout"},
			TimeFormat: "15:04:05.000",
		},
		Pipeline: PipelineConfig{
			MaxInsights: 12,
			GraceHours:  6,
			Parallel:    false,
		},
	}
}

// LoadFromFile loads configuration from a single TOML file on top of defaults
func LoadFromFile(path string) (*Config, error) {
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration by merging defaults, the given TOML
// files in order (later files override earlier ones), and environment
// variable overrides.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that configuration values are within their bounds
func (c *Config) Validate() error {
	if c.Pipeline.MaxInsights < MinMaxInsights || c.Pipeline.MaxInsights > MaxMaxInsights {
		return fmt.Errorf("pipeline.max_insights must be between %d and %d, got %d",
			MinMaxInsights, MaxMaxInsights, c.Pipeline.MaxInsights)
	}
	if c.Pipeline.GraceHours < 0 {
		return fmt.Errorf("pipeline.grace_hours must not be negative, got %d", c.Pipeline.GraceHours)
	}
	return nil
}

// applyEnvOverrides applies TRENDSCOUT_* environment variable overrides
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("TRENDSCOUT_ENV"); env != "" {
		config.Environment = env
	} else if env := os.Getenv("GO_ENV"); env != "" {
		config.Environment = env
	}

	if level := os.Getenv("TRENDSCOUT_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("TRENDSCOUT_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
	if output := os.Getenv("TRENDSCOUT_LOG_OUTPUT"); output != "" {
		parts := strings.Split(output, ",")
		outputs := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				outputs = append(outputs, trimmed)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	if maxInsights := os.Getenv("TRENDSCOUT_PIPELINE_MAX_INSIGHTS"); maxInsights != "" {
		if v, err := strconv.Atoi(maxInsights); err == nil {
			config.Pipeline.MaxInsights = v
		}
	}
	if graceHours := os.Getenv("TRENDSCOUT_PIPELINE_GRACE_HOURS"); graceHours != "" {
		if v, err := strconv.Atoi(graceHours); err == nil {
			config.Pipeline.GraceHours = v
		}
	}
	if parallel := os.Getenv("TRENDSCOUT_PIPELINE_PARALLEL"); parallel != "" {
		if v, err := strconv.ParseBool(parallel); err == nil {
			config.Pipeline.Parallel = v
		}
	}
}
