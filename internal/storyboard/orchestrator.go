package storyboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/providers"
	"golang.org/x/sync/errgroup"
)

// Orchestrator fans a story out into PanelCount concurrent model calls
type Orchestrator struct {
	// Timeout bounds a whole batch when positive. Zero means no deadline.
	Timeout time.Duration

	model     providers.ImageModel
	modelName string
}

// NewOrchestrator creates an orchestrator that calls modelName through model
func NewOrchestrator(model providers.ImageModel, modelName string) *Orchestrator {
	return &Orchestrator{
		model:     model,
		modelName: modelName,
	}
}

// Generate returns one data URI per panel, in panel order.
// Either every panel succeeds or a *GenerationError is returned and no
// images are surfaced. The first failure cancels the remaining calls.
func (o *Orchestrator) Generate(ctx context.Context, story string) ([]string, error) {
	if strings.TrimSpace(story) == "" {
		return nil, ErrEmptyStory
	}

	if o.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.Timeout)
		defer cancel()
	}

	reqs := BuildPanelRequests(story)
	images := make([]string, len(reqs))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, pr := range reqs {
		eg.Go(func() error {
			logger := slog.With("panel", pr.Number, "model", o.modelName)
			logger.Debug("Starting panel generation")

			startTime := time.Now()
			resp, err := o.model.GenerateImage(egCtx, providers.Request{
				Model:       o.modelName,
				Prompt:      pr.Prompt,
				AspectRatio: pr.AspectRatio,
			})
			if err != nil {
				return &GenerationError{
					Panel: pr.Number,
					Err:   fmt.Errorf("panel %d: %w: %w", pr.Number, ErrTransport, err),
				}
			}

			img, ok := ExtractImage(resp)
			if !ok {
				return &GenerationError{
					Panel: pr.Number,
					Err:   fmt.Errorf("panel %d: %w", pr.Number, ErrNoImage),
				}
			}

			images[i] = img.DataURI()
			logger.Debug("Panel generation completed",
				"mime_type", img.MIMEType,
				"bytes", len(img.Data),
				"duration", time.Since(startTime).Round(time.Millisecond))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}
