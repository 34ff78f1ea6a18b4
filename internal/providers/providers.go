package providers

import (
	"context"
)

// Request represents a single generation call made to an image-capable model
type Request struct {
	Model       string
	Prompt      string
	AspectRatio string
}

// Response is the provider-neutral shape of a model reply.
// Only the fields the storyboard pipeline reads are carried over.
type Response struct {
	Candidates []Candidate
}

// Candidate is one alternative answer returned by the model
type Candidate struct {
	Parts []Part
}

// Part is one unit of content within a candidate. It may carry text,
// inline binary data, or neither.
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline binary data paired with its MIME type
type Blob struct {
	MIMEType string
	Data     []byte
}

// ImageModel defines the interface for a provider that can return inline images
type ImageModel interface {
	GenerateImage(ctx context.Context, req Request) (*Response, error)
}
