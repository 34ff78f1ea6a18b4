package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/gemini"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		wantErr     error
		wantKey     string
		wantModel   string
		wantPort    string
		wantTimeout time.Duration
	}{
		{
			name:    "missing credential",
			env:     map[string]string{},
			wantErr: ErrMissingAPIKey,
		},
		{
			name:      "gemini key with defaults",
			env:       map[string]string{"GEMINI_API_KEY": "g-key"},
			wantKey:   "g-key",
			wantModel: gemini.DefaultModel,
			wantPort:  "8888",
		},
		{
			name:      "falls back to API_KEY",
			env:       map[string]string{"API_KEY": "a-key"},
			wantKey:   "a-key",
			wantModel: gemini.DefaultModel,
			wantPort:  "8888",
		},
		{
			name: "gemini key wins over API_KEY",
			env: map[string]string{
				"GEMINI_API_KEY":     "g-key",
				"API_KEY":            "a-key",
				"STORYBOARD_MODEL":   "custom-model",
				"PORT":               "3000",
				"STORYBOARD_TIMEOUT": "90s",
			},
			wantKey:     "g-key",
			wantModel:   "custom-model",
			wantPort:    "3000",
			wantTimeout: 90 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"GEMINI_API_KEY", "API_KEY", "STORYBOARD_MODEL", "PORT", "STORYBOARD_TIMEOUT"} {
				t.Setenv(k, "")
				os.Unsetenv(k)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}

			if cfg.Credential() != tt.wantKey {
				t.Errorf("Expected credential %s, got %s", tt.wantKey, cfg.Credential())
			}
			if cfg.Model != tt.wantModel {
				t.Errorf("Expected model %s, got %s", tt.wantModel, cfg.Model)
			}
			if cfg.Port != tt.wantPort {
				t.Errorf("Expected port %s, got %s", tt.wantPort, cfg.Port)
			}
			if cfg.Timeout != tt.wantTimeout {
				t.Errorf("Expected timeout %s, got %s", tt.wantTimeout, cfg.Timeout)
			}
		})
	}
}
