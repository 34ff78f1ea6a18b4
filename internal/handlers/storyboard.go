package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/models"
	"github.com/lehigh-university-libraries/storyboarder/internal/storyboard"
)

const (
	maxBodyBytes = 1 << 20

	msgStoryRequired = "Story parameter is required and must be a non-empty string."
	msgInvalidBody   = "Request body must be a JSON object."
)

// HandleStoryboard generates the four storyboard panels for the posted story
func (h *Handler) HandleStoryboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.writeError(w, r, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var request models.StoryboardRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&request)
	if errors.Is(err, io.EOF) {
		// an empty body is read as {}
		err = nil
	}
	if err != nil {
		slog.Warn("Unable to decode storyboard request", "err", err, "request_id", requestID(r.Context()))
		h.writeError(w, r, msgInvalidBody, http.StatusBadRequest)
		return
	}

	story, ok := request.Story.(string)
	if !ok || strings.TrimSpace(story) == "" {
		h.writeError(w, r, msgStoryRequired, http.StatusBadRequest)
		return
	}

	slog.Info("Generating storyboard", "request_id", requestID(r.Context()), "story_length", len(story))
	startTime := time.Now()

	imageURLs, err := h.generator.Generate(r.Context(), story)
	if err != nil {
		if errors.Is(err, storyboard.ErrEmptyStory) {
			h.writeError(w, r, msgStoryRequired, http.StatusBadRequest)
			return
		}

		var genErr *storyboard.GenerationError
		if errors.As(err, &genErr) {
			slog.Error("Storyboard panel failed", "panel", genErr.Panel, "err", genErr.Err, "request_id", requestID(r.Context()))
		}
		h.writeError(w, r, err.Error(), http.StatusInternalServerError)
		return
	}

	slog.Info("Storyboard generated",
		"request_id", requestID(r.Context()),
		"panels", len(imageURLs),
		"duration", time.Since(startTime).Round(time.Millisecond))
	h.writeJSON(w, models.StoryboardResponse{ImageURLs: imageURLs}, http.StatusOK)
}

// HandleHealthcheck reports that the server is up
func (h *Handler) HandleHealthcheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("OK")); err != nil {
		slog.Error("Unable to write healthcheck", "err", err)
	}
}
