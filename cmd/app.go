package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/config"
	"github.com/lehigh-university-libraries/storyboarder/internal/gemini"
	"github.com/lehigh-university-libraries/storyboarder/internal/storyboard"
)

// newOrchestrator loads configuration and builds the one shared Gemini client.
// A missing credential is returned as config.ErrMissingAPIKey.
func newOrchestrator(ctx context.Context, model string, timeout time.Duration) (*storyboard.Orchestrator, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if model != "" {
		cfg.Model = model
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}

	provider, err := gemini.New(ctx, cfg.Credential())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize gemini provider: %w", err)
	}

	orchestrator := storyboard.NewOrchestrator(provider, cfg.Model)
	orchestrator.Timeout = cfg.Timeout

	return orchestrator, cfg, nil
}
