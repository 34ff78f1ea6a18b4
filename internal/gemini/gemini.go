package gemini

import (
	"context"
	"fmt"

	"github.com/lehigh-university-libraries/storyboarder/internal/providers"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for storyboard panels
const DefaultModel = "gemini-2.5-flash-image"

// Gemini is an image provider for Google Gemini.
// A single instance is created at startup and shared across requests.
type Gemini struct {
	client *genai.Client
}

// New returns a new Gemini provider authenticated with apiKey
func New(ctx context.Context, apiKey string) (*Gemini, error) {
	return NewWithConfig(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

// NewWithConfig returns a new Gemini provider using a caller-supplied client config
func NewWithConfig(ctx context.Context, cc *genai.ClientConfig) (*Gemini, error) {
	if cc == nil || cc.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create new gemini client: %w", err)
	}

	return &Gemini{client: client}, nil
}

// GenerateImage sends the prompt to Gemini with the requested aspect ratio
func (g *Gemini) GenerateImage(ctx context.Context, req providers.Request) (*providers.Response, error) {
	var config *genai.GenerateContentConfig
	if req.AspectRatio != "" {
		config = &genai.GenerateContentConfig{
			ImageConfig: &genai.ImageConfig{
				AspectRatio: req.AspectRatio,
			},
		}
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	return toResponse(resp), nil
}

// toResponse copies the parts of a Gemini reply into the provider-neutral shape.
// Missing candidates, content or parts are skipped rather than treated as errors.
func toResponse(resp *genai.GenerateContentResponse) *providers.Response {
	out := &providers.Response{}
	if resp == nil {
		return out
	}

	for _, cand := range resp.Candidates {
		var c providers.Candidate
		if cand != nil && cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part == nil {
					continue
				}
				p := providers.Part{Text: part.Text}
				if part.InlineData != nil {
					p.InlineData = &providers.Blob{
						MIMEType: part.InlineData.MIMEType,
						Data:     part.InlineData.Data,
					}
				}
				c.Parts = append(c.Parts, p)
			}
		}
		out.Candidates = append(out.Candidates, c)
	}

	return out
}
