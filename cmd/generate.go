package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/client"
	"github.com/lehigh-university-libraries/storyboarder/internal/download"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var storyFile string
	var outputDir string
	var serverURL string
	var model string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "generate [story]",
		Short: "Generate one storyboard and save its 4 panels",
		Long: `Generates a 4-panel storyboard for a single story and saves the panels as
storyboard-panel-1..4 files in the output directory.

The story is taken from the arguments, from --file, or from stdin. By default
Gemini is called directly; with --server the request goes to a running
"storyboarder serve" instance instead.`,
		Example: `  # Story as an argument
  storyboarder generate "A detective walks through rain."

  # Story from a file, panels into ./out
  storyboarder generate --file story.txt --output-dir out

  # Through a running server
  echo "A courier outruns a drone swarm." | storyboarder generate --server http://localhost:8888`,
		RunE: func(cmd *cobra.Command, args []string) error {
			story, err := readStory(cmd.InOrStdin(), args, storyFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			var generate func(context.Context, string) ([]string, error)
			if serverURL != "" {
				slog.Info("Generating storyboard via server", "server", serverURL)
				generate = client.NewClient(serverURL).GenerateStoryboard
			} else {
				orchestrator, cfg, err := newOrchestrator(ctx, model, timeout)
				if err != nil {
					return err
				}
				slog.Info("Generating storyboard", "model", cfg.Model)
				generate = orchestrator.Generate
			}

			imageURLs, err := generate(ctx, story)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			paths, err := download.WriteAll(outputDir, imageURLs)
			if err != nil {
				return err
			}

			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&storyFile, "file", "f", "", "Read the story from a file ('-' for stdin)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory to write the panel images to")
	cmd.Flags().StringVar(&serverURL, "server", "", "Base URL of a running storyboarder server")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (defaults to $STORYBOARD_MODEL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort generation after this long (0 for no limit)")

	return cmd
}

// readStory picks the story from args, then --file, then piped stdin
func readStory(stdin io.Reader, args []string, storyFile string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	switch {
	case storyFile == "-":
		return readAll(stdin)
	case storyFile != "":
		data, err := os.ReadFile(storyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read story file: %w", err)
		}
		return string(data), nil
	case isStdin():
		return readAll(stdin)
	}

	return "", fmt.Errorf("provide a story as an argument, with --file, or on stdin")
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read story from stdin: %w", err)
	}
	return string(data), nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
