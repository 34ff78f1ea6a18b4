package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadStory(t *testing.T) {
	dir := t.TempDir()
	storyPath := filepath.Join(dir, "story.txt")
	if err := os.WriteFile(storyPath, []byte("from a file"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		args      []string
		storyFile string
		stdin     string
		expected  string
		wantErr   bool
	}{
		{
			name:     "args are joined",
			args:     []string{"A", "detective", "walks."},
			expected: "A detective walks.",
		},
		{
			name:      "args win over file",
			args:      []string{"args"},
			storyFile: storyPath,
			expected:  "args",
		},
		{
			name:      "file",
			storyFile: storyPath,
			expected:  "from a file",
		},
		{
			name:      "dash reads stdin",
			storyFile: "-",
			stdin:     "piped story",
			expected:  "piped story",
		},
		{
			name:      "missing file",
			storyFile: filepath.Join(dir, "nope.txt"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			story, err := readStory(strings.NewReader(tt.stdin), tt.args, tt.storyFile)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error, got story %q", story)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if story != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, story)
			}
		})
	}
}
