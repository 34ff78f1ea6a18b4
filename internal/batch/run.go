package batch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/lehigh-university-libraries/storyboarder/internal/dataset"
	"github.com/lehigh-university-libraries/storyboarder/internal/download"
	"github.com/lehigh-university-libraries/storyboarder/internal/results"
)

// Generator produces the panel data URIs for a story
type Generator interface {
	Generate(ctx context.Context, story string) ([]string, error)
}

var unsafeDirChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Run storyboards every record, writing panels under outputDir/<id>/.
// A failed story is recorded in its result and does not stop the run.
// Results are returned in record order.
func Run(ctx context.Context, gen Generator, records []dataset.StoryRecord, outputDir string, concurrency int) []results.StoryResult {
	if concurrency < 1 {
		concurrency = 1
	}

	slog.Info("Processing stories", "count", len(records), "concurrency", concurrency)

	out := make([]results.StoryResult, len(records))
	dirs := storyDirs(records)

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)

	for i, record := range records {
		wg.Add(1)
		go func() {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			slog.Info("Processing story", "id", record.ID, "progress", fmt.Sprintf("%d/%d", i+1, len(records)))
			out[i] = processStory(ctx, gen, record, filepath.Join(outputDir, dirs[i]))
		}()
	}

	wg.Wait()
	return out
}

func processStory(ctx context.Context, gen Generator, record dataset.StoryRecord, dir string) (result results.StoryResult) {
	result = results.StoryResult{
		ID:    record.ID,
		Story: record.Story,
	}
	startTime := time.Now()
	defer func() {
		result.ProcessingTime = time.Since(startTime).Round(time.Millisecond)
	}()

	if err := ctx.Err(); err != nil {
		result.Error = err.Error()
		return result
	}

	imageURLs, err := gen.Generate(ctx, record.Story)
	if err != nil {
		slog.Warn("Story failed", "id", record.ID, "err", err)
		result.Error = err.Error()
		return result
	}

	paths, err := download.WriteAll(dir, imageURLs)
	if err != nil {
		slog.Error("Failed to write panels", "id", record.ID, "err", err)
		result.Error = err.Error()
		return result
	}

	result.Panels = paths
	return result
}

// storyDirs assigns every record its own directory name. Ids that sanitize
// to a name already taken get a -2, -3, ... suffix. Names are compared
// case-insensitively.
func storyDirs(records []dataset.StoryRecord) []string {
	dirs := make([]string, len(records))
	seen := make(map[string]bool, len(records))
	for i, record := range records {
		base := storyDir(record.ID)
		name := base
		for n := 2; seen[strings.ToLower(name)]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		seen[strings.ToLower(name)] = true
		dirs[i] = name
	}
	return dirs
}

// storyDir turns a record id into a safe directory name
func storyDir(id string) string {
	name := unsafeDirChars.ReplaceAllString(id, "_")
	if name == "" || name == "." || name == ".." {
		return "story"
	}
	return name
}
