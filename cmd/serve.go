package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/handlers"
	"github.com/lehigh-university-libraries/storyboarder/internal/models"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var model string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the storyboard web API",
		Long: `Starts the Storyboarder API on the specified port.

POST /api/storyboard with {"story": "..."} returns {"imageUrls": [...]}, four
data URIs in panel order. GEMINI_API_KEY (or API_KEY) must be set.`,
		Example: `  # Start server on default port 8888
  storyboarder serve

  # Start server on custom port
  storyboarder serve --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, cfg, err := newOrchestrator(cmd.Context(), model, 0)
			if err != nil {
				return err
			}
			if port == "" {
				port = cfg.Port
			}

			handler := handlers.New(orchestrator)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc(models.StoryboardPath, handler.HandleStoryboard)
			mux.HandleFunc("/healthcheck", handler.HandleHealthcheck)

			addr := ":" + port
			server := &http.Server{
				Addr:              addr,
				Handler:           handlers.WithRequestID(mux),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Storyboarder API available", "addr", addr, "model", cfg.Model, "url", "http://localhost"+addr+models.StoryboardPath)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (defaults to $PORT or 8888)")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (defaults to $STORYBOARD_MODEL)")

	return cmd
}
