package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/batch"
	"github.com/lehigh-university-libraries/storyboarder/internal/dataset"
	"github.com/lehigh-university-libraries/storyboarder/internal/results"
	"github.com/lehigh-university-libraries/storyboarder/internal/storyboard"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	var datasetPath string
	var outputDir string
	var reportPath string
	var sampleSize int
	var concurrency int
	var model string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Storyboard every story in a dataset file",
		Long: `Generates a storyboard for each record of a Parquet or JSONL dataset.

Records have an "id" and a "story" column. Panels are written to
<output-dir>/<id>/storyboard-panel-1..4 and a YAML report summarizing
successes and failures is written at the end. A failed story does not stop
the run.`,
		Example: `  # Storyboard the first 10 stories
  storyboarder batch --dataset stories.jsonl --sample 10

  # Whole parquet file, 2 stories at a time
  storyboarder batch --dataset stories.parquet --sample -1 --concurrency 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(datasetPath); os.IsNotExist(err) {
				return fmt.Errorf("dataset file not found: %s", datasetPath)
			}

			orchestrator, cfg, err := newOrchestrator(cmd.Context(), model, timeout)
			if err != nil {
				return err
			}

			slog.Info("Loading dataset...", "path", datasetPath)
			records, err := dataset.NewLoader(datasetPath).Load(sampleSize)
			if err != nil {
				return fmt.Errorf("failed to load dataset: %w", err)
			}
			slog.Info("Dataset loaded", "stories", len(records))

			storyResults := batch.Run(cmd.Context(), orchestrator, records, outputDir, concurrency)

			report := results.NewReport(results.RunConfig{
				Model:       cfg.Model,
				Style:       storyboard.Style,
				AspectRatio: storyboard.PanelAspectRatio,
				DatasetPath: datasetPath,
				OutputDir:   outputDir,
				Concurrency: concurrency,
			}, storyResults)

			if reportPath == "" {
				reportPath = filepath.Join(outputDir, fmt.Sprintf("report-%s.yaml", report.Config.Timestamp))
			}
			absPath, err := report.SaveToYAML(reportPath)
			if err != nil {
				return err
			}

			slog.Info("Batch complete",
				"total", report.Summary.Total,
				"succeeded", report.Summary.Succeeded,
				"failed", report.Summary.Failed,
				"report", absPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&datasetPath, "dataset", "", "Path to parquet or jsonl dataset file (required)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "storyboards", "Directory to write storyboards and the report to")
	cmd.Flags().StringVar(&reportPath, "report", "", "Path to the YAML report (defaults to <output-dir>/report-<timestamp>.yaml)")
	cmd.Flags().IntVar(&sampleSize, "sample", 10, "Number of stories to process (-1 for all)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 1, "Number of stories generated at once (each story issues 4 requests)")
	cmd.Flags().StringVar(&model, "model", "", "Gemini model name (defaults to $STORYBOARD_MODEL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort a single story after this long (0 for no limit)")
	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}
