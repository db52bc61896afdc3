// Package config loads and validates the shortlisting configuration. All
// weights, thresholds and capability knobs live here with documented
// defaults, so the pipeline constructors receive explicit values and tests
// can substitute deterministic ones.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/sandesh/shortlist-agent/internal/aggregate"
	"github.com/sandesh/shortlist-agent/internal/evaluate"
	"github.com/sandesh/shortlist-agent/internal/report"
)

// Config is the full runtime configuration.
type Config struct {
	// APIKey authenticates against the Gemini API. Not persisted in config
	// files; comes from the GEMINI_API_KEY environment variable or a flag.
	APIKey string `mapstructure:"api-key" validate:"required"`

	// Threshold is the shortlisting cutoff on the 0-100 scale.
	Threshold float64 `mapstructure:"threshold" validate:"gte=0,lte=100"`

	// Weights are the per-criterion aggregation weights; must sum to 1.0.
	Weights aggregate.Weights `mapstructure:"weights"`

	// DegreeWeights maps degree categories to their 0-10 weight.
	DegreeWeights map[string]float64 `mapstructure:"degree-weights" validate:"required"`

	// DegreeFallbackWeight applies to categories outside DegreeWeights.
	DegreeFallbackWeight float64 `mapstructure:"degree-fallback-weight" validate:"gte=0,lte=10"`

	// MaxConcurrentResumes bounds the resume fan-out.
	MaxConcurrentResumes int `mapstructure:"max-concurrent-resumes" validate:"gte=1"`

	// ExtractionRetries bounds attempts per structured-extraction call.
	// Retrying lives in the extraction layer only; nothing above it retries.
	ExtractionRetries int `mapstructure:"extraction-retries" validate:"gte=1"`

	// ExtractionTimeout applies per extraction call.
	ExtractionTimeout time.Duration `mapstructure:"extraction-timeout" validate:"gt=0"`

	// RedactionAllowlist holds tokens exempt from PII redaction, e.g. the
	// platform's own domain name.
	RedactionAllowlist []string `mapstructure:"redaction-allowlist"`

	// Models overrides the tier-to-model mapping ("lite", "standard",
	// "advanced").
	Models map[string]string `mapstructure:"models"`
}

// Default returns the documented default configuration (without API key).
func Default() Config {
	return Config{
		Threshold:            report.DefaultThreshold,
		Weights:              aggregate.DefaultWeights(),
		DegreeWeights:        evaluate.DefaultDegreeWeights(),
		DegreeFallbackWeight: evaluate.DefaultDegreeFallbackWeight,
		MaxConcurrentResumes: 4,
		ExtractionRetries:    3,
		ExtractionTimeout:    60 * time.Second,
	}
}

// Load reads configuration from an optional YAML/JSON file plus environment
// overrides, on top of the defaults. path may be empty.
func Load(path string) (*Config, error) {
	defaults := Default()

	v := viper.New()
	v.SetDefault("threshold", defaults.Threshold)
	v.SetDefault("weights.skills", defaults.Weights.Skills)
	v.SetDefault("weights.experience_years", defaults.Weights.Experience)
	v.SetDefault("weights.work_alignment", defaults.Weights.WorkAlignment)
	v.SetDefault("weights.project_alignment", defaults.Weights.Projects)
	v.SetDefault("weights.qualification", defaults.Weights.Qualification)
	v.SetDefault("degree-weights", defaults.DegreeWeights)
	v.SetDefault("degree-fallback-weight", defaults.DegreeFallbackWeight)
	v.SetDefault("max-concurrent-resumes", defaults.MaxConcurrentResumes)
	v.SetDefault("extraction-retries", defaults.ExtractionRetries)
	v.SetDefault("extraction-timeout", defaults.ExtractionTimeout)

	if err := v.BindEnv("api-key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("bind GEMINI_API_KEY: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// Validate checks field constraints and the weight-sum invariant.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
