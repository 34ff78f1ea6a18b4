package gemini

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lehigh-university-libraries/storyboarder/internal/providers"
	"google.golang.org/genai"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), ""); err == nil {
		t.Error("Expected error for empty API key, got nil")
	}
}

func TestGenerateImage(t *testing.T) {
	var gotPath string
	var gotBody []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
  "candidates": [{
    "content": {
      "role": "model",
      "parts": [
        {"text": "Here is panel 1"},
        {"inlineData": {"mimeType": "image/png", "data": "iVBORw0KGgo="}}
      ]
    }
  }]
}`))
	}))
	defer srv.Close()

	g, err := NewWithConfig(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  srv.Client(),
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	resp, err := g.GenerateImage(context.Background(), providers.Request{
		Model:       DefaultModel,
		Prompt:      "A detective walks through rain.",
		AspectRatio: "16:9",
	})
	if err != nil {
		t.Fatalf("GenerateImage failed: %v", err)
	}

	if !strings.Contains(gotPath, DefaultModel+":generateContent") {
		t.Errorf("Expected generateContent call for %s, got path %s", DefaultModel, gotPath)
	}
	if !bytes.Contains(gotBody, []byte("A detective walks through rain.")) {
		t.Errorf("Expected prompt in request body, got %s", gotBody)
	}
	if !bytes.Contains(gotBody, []byte("16:9")) {
		t.Errorf("Expected aspect ratio in request body, got %s", gotBody)
	}

	if len(resp.Candidates) != 1 {
		t.Fatalf("Expected 1 candidate, got %d", len(resp.Candidates))
	}
	parts := resp.Candidates[0].Parts
	if len(parts) != 2 {
		t.Fatalf("Expected 2 parts, got %d", len(parts))
	}
	if parts[0].Text != "Here is panel 1" || parts[0].InlineData != nil {
		t.Errorf("Unexpected first part: %+v", parts[0])
	}
	if parts[1].InlineData == nil {
		t.Fatal("Expected inline data on second part")
	}
	if parts[1].InlineData.MIMEType != "image/png" {
		t.Errorf("Expected MIME type image/png, got %s", parts[1].InlineData.MIMEType)
	}
	want := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if !bytes.Equal(parts[1].InlineData.Data, want) {
		t.Errorf("Expected decoded PNG header, got %v", parts[1].InlineData.Data)
	}
}

func TestToResponse(t *testing.T) {
	tests := []struct {
		name       string
		resp       *genai.GenerateContentResponse
		candidates int
		parts      int
	}{
		{
			name:       "nil response",
			resp:       nil,
			candidates: 0,
		},
		{
			name:       "no candidates",
			resp:       &genai.GenerateContentResponse{},
			candidates: 0,
		},
		{
			name: "candidate without content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			candidates: 1,
			parts:      0,
		},
		{
			name: "nil parts are skipped",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{
					Content: &genai.Content{Parts: []*genai.Part{
						nil,
						{InlineData: &genai.Blob{MIMEType: "image/jpeg", Data: []byte{1, 2}}},
					}},
				}},
			},
			candidates: 1,
			parts:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := toResponse(tt.resp)
			if len(out.Candidates) != tt.candidates {
				t.Fatalf("Expected %d candidates, got %d", tt.candidates, len(out.Candidates))
			}
			if tt.candidates > 0 && len(out.Candidates[0].Parts) != tt.parts {
				t.Errorf("Expected %d parts, got %d", tt.parts, len(out.Candidates[0].Parts))
			}
		})
	}
}
