package download

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		uri      string
		expected string
	}{
		{
			name:     "png",
			index:    0,
			uri:      "data:image/png;base64,AAAA",
			expected: "storyboard-panel-1.png",
		},
		{
			name:     "jpeg",
			index:    3,
			uri:      "data:image/jpeg;base64,AAAA",
			expected: "storyboard-panel-4.jpeg",
		},
		{
			name:     "missing MIME type falls back to png",
			index:    1,
			uri:      "data:;base64,AAAA",
			expected: "storyboard-panel-2.png",
		},
		{
			name:     "non-image MIME type falls back to png",
			index:    2,
			uri:      "data:application/octet-stream;base64,AAAA",
			expected: "storyboard-panel-3.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FileName(tt.index, tt.uri); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	data := []byte{0x89, 'P', 'N', 'G'}
	got, err := Decode("data:image/png;base64," + base64.StdEncoding.EncodeToString(data))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Expected %v, got %v", data, got)
	}

	for _, bad := range []string{"https://example.com/a.png", "data:image/png,plain", "data:image/png;base64,!!"} {
		if _, err := Decode(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	uris := []string{
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("one")),
		"data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("two")),
	}

	paths, err := WriteAll(dir, uris)
	if err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	expected := []string{
		filepath.Join(dir, "storyboard-panel-1.png"),
		filepath.Join(dir, "storyboard-panel-2.jpeg"),
	}
	for i, p := range paths {
		if p != expected[i] {
			t.Errorf("Expected path %s, got %s", expected[i], p)
		}
	}

	content, err := os.ReadFile(expected[1])
	if err != nil {
		t.Fatalf("Failed to read panel: %v", err)
	}
	if string(content) != "two" {
		t.Errorf("Expected content 'two', got %q", content)
	}
}
