package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/models"
	"github.com/lehigh-university-libraries/storyboarder/internal/storyboard"
)

var (
	// ErrInvalidResponse is returned when a 2xx body does not hold exactly four images
	ErrInvalidResponse = errors.New("invalid response format from the server")
	// ErrUnparseableError is returned when a failed response has no JSON error body
	ErrUnparseableError = errors.New("failed to parse error response")
)

// Client calls a running storyboard server
type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// NewClient creates a new storyboard API client
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// four image generations can take a while
			Timeout: 5 * time.Minute,
		},
	}
}

// GenerateStoryboard posts the story and returns the four panel data URIs
func (c *Client) GenerateStoryboard(ctx context.Context, story string) ([]string, error) {
	if strings.TrimSpace(story) == "" {
		return nil, storyboard.ErrEmptyStory
	}

	body, err := json.Marshal(map[string]string{"story": story})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+models.StoryboardPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call storyboard API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp)
	}

	var sbResp struct {
		ImageURLs []string `json:"imageUrls"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sbResp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if len(sbResp.ImageURLs) != 4 {
		return nil, ErrInvalidResponse
	}

	return sbResp.ImageURLs, nil
}

// errorFromResponse surfaces the server's error message as-is
func errorFromResponse(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrUnparseableError
	}

	var errResp models.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return ErrUnparseableError
	}
	if errResp.Error == "" {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return errors.New(errResp.Error)
}
