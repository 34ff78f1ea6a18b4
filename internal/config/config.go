package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/lehigh-university-libraries/storyboarder/internal/gemini"
)

// ErrMissingAPIKey is fatal at startup: no request can be served without it
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY (or API_KEY) environment variable not set")

// Config holds process-wide settings read once at startup
type Config struct {
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	APIKey       string        `env:"API_KEY"`
	Model        string        `env:"STORYBOARD_MODEL"`
	Port         string        `env:"PORT" envDefault:"8888"`
	Timeout      time.Duration `env:"STORYBOARD_TIMEOUT" envDefault:"0s"`
}

// Load parses the environment and checks that a credential is present
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.Credential() == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = gemini.DefaultModel
	}

	return cfg, nil
}

// Credential returns GEMINI_API_KEY, falling back to API_KEY
func (c *Config) Credential() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.APIKey
}
