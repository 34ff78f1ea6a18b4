package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// RunConfig represents the configuration section of the batch report
type RunConfig struct {
	Model       string `yaml:"model"`
	Style       string `yaml:"style"`
	AspectRatio string `yaml:"aspectratio"`
	DatasetPath string `yaml:"datasetpath"`
	OutputDir   string `yaml:"outputdir"`
	Concurrency int    `yaml:"concurrency"`
	Timestamp   string `yaml:"timestamp"`
}

// StoryResult represents the outcome for a single story
type StoryResult struct {
	ID             string        `yaml:"id"`
	Story          string        `yaml:"story"`
	Panels         []string      `yaml:"panels,omitempty"`
	Error          string        `yaml:"error,omitempty"`
	ProcessingTime time.Duration `yaml:"processingtime"`
}

// Summary counts successes and failures across the run
type Summary struct {
	Total     int `yaml:"total"`
	Succeeded int `yaml:"succeeded"`
	Failed    int `yaml:"failed"`
}

// Report is the complete batch report
type Report struct {
	Config  RunConfig     `yaml:"config"`
	Summary Summary       `yaml:"summary"`
	Results []StoryResult `yaml:"results"`
}

// NewReport builds a report and computes its summary
func NewReport(cfg RunConfig, results []StoryResult) *Report {
	if cfg.Timestamp == "" {
		cfg.Timestamp = time.Now().Format("2006-01-02_15-04-05")
	}

	report := &Report{
		Config:  cfg,
		Results: results,
		Summary: Summary{Total: len(results)},
	}
	for _, r := range results {
		if r.Error != "" {
			report.Summary.Failed++
		} else {
			report.Summary.Succeeded++
		}
	}

	return report
}

// SaveToYAML writes the report to path and returns its absolute location
func (r *Report) SaveToYAML(path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return absPath, nil
}
