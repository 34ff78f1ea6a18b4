package storyboard

import (
	"errors"
)

var (
	// ErrEmptyStory is returned before any model call when the story is blank
	ErrEmptyStory = errors.New("story cannot be empty")
	// ErrTransport marks a model call that could not complete
	ErrTransport = errors.New("model request failed")
	// ErrNoImage marks a model response without an inline image
	ErrNoImage = errors.New("the model did not return an image")
)

// GenerationError is the single failure reported for a storyboard batch.
// Its message does not name the failing panel; Panel and Err are kept for logs.
type GenerationError struct {
	Panel int
	Err   error
}

func (e *GenerationError) Error() string {
	reason := ErrTransport.Error()
	if errors.Is(e.Err, ErrNoImage) {
		reason = ErrNoImage.Error()
	}
	return "failed to generate one or more storyboard panels: " + reason
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
