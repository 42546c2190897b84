// Package config provides engine configuration loading and validation.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/ats-engine/internal/lexical"
	"github.com/jonathan/ats-engine/internal/logger"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/semantic"
)

// Config captures everything a scoring run can be tuned with. All fields
// are optional; zero values select engine defaults.
type Config struct {
	// Preset names a category weight profile. Ignored when
	// CategoryWeights is set explicitly.
	Preset string `json:"preset,omitempty" validate:"omitempty,oneof=technical leadership junior"`

	// CategoryWeights overrides the preset with explicit per-category
	// weights. Weights not summing to 1.0 are normalized with a warning.
	CategoryWeights *lexical.Weights `json:"category_weights,omitempty"`

	// HybridWeights overrides the 0.55/0.35/0.10 lexical/semantic/evidence
	// split.
	HybridWeights *scoring.HybridWeights `json:"hybrid_weights,omitempty"`

	// ExperienceTolerance is the years of experience shortfall still
	// considered eligible.
	ExperienceTolerance int `json:"experience_tolerance,omitempty" validate:"gte=0"`

	// EmbedTimeoutSeconds bounds the embedding-provider call.
	EmbedTimeoutSeconds int `json:"embed_timeout_seconds,omitempty" validate:"gte=0,lte=300"`

	// APIKey authenticates the embedding provider. Empty disables
	// semantic scoring (the degraded-weights path).
	APIKey string `json:"api_key,omitempty"`

	Logging logger.Config `json:"logging,omitempty"`
}

// Default returns a configuration with engine defaults filled in.
func Default() *Config {
	return &Config{
		Preset:              "technical",
		ExperienceTolerance: scoring.DefaultExperienceTolerance,
		EmbedTimeoutSeconds: int(semantic.DefaultEmbedTimeout / time.Second),
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// EmbedTimeout returns the configured provider timeout as a duration,
// falling back to the engine default.
func (c *Config) EmbedTimeout() time.Duration {
	if c.EmbedTimeoutSeconds <= 0 {
		return semantic.DefaultEmbedTimeout
	}
	return time.Duration(c.EmbedTimeoutSeconds) * time.Second
}
