package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/lehigh-university-libraries/storyboarder/internal/models"
)

// Generator produces the panel data URIs for a story
type Generator interface {
	Generate(ctx context.Context, story string) ([]string, error)
}

type Handler struct {
	generator Generator
}

func New(generator Generator) *Handler {
	return &Handler{
		generator: generator,
	}
}

type requestIDKey struct{}

// WithRequestID tags every request with a uuid, echoed in X-Request-ID
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, message string, code int) {
	level := slog.LevelError
	if code < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	slog.Log(r.Context(), level, message, "status", code, "request_id", requestID(r.Context()))
	h.writeJSON(w, models.ErrorResponse{Error: message}, code)
}
