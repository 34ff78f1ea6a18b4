package download

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultMIMEType is assumed when a data URI carries no usable image type
const DefaultMIMEType = "image/png"

var imageMIMEPattern = regexp.MustCompile(`^data:(image/[^;]+);`)

// MIMEType returns the image MIME type of a data URI, or DefaultMIMEType
func MIMEType(dataURI string) string {
	if m := imageMIMEPattern.FindStringSubmatch(dataURI); m != nil {
		return m[1]
	}
	return DefaultMIMEType
}

// FileName returns the download name for the panel at index (0-based),
// e.g. storyboard-panel-1.png
func FileName(index int, dataURI string) string {
	ext := "png"
	if _, sub, ok := strings.Cut(MIMEType(dataURI), "/"); ok && sub != "" {
		ext = sub
	}
	return fmt.Sprintf("storyboard-panel-%d.%s", index+1, ext)
}

// Decode returns the binary payload of a base64 data URI
func Decode(dataURI string) ([]byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return nil, fmt.Errorf("not a data URI")
	}
	_, payload, ok := strings.Cut(dataURI, ";base64,")
	if !ok {
		return nil, fmt.Errorf("data URI is not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data URI payload: %w", err)
	}
	return data, nil
}

// WriteAll saves every panel into dir and returns the written paths in panel order
func WriteAll(dir string, dataURIs []string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := make([]string, 0, len(dataURIs))
	for i, uri := range dataURIs {
		data, err := Decode(uri)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}

		path := filepath.Join(dir, FileName(i, uri))
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write panel %d: %w", i+1, err)
		}

		slog.Debug("Wrote panel", "panel", i+1, "path", path, "bytes", len(data))
		paths = append(paths, path)
	}

	return paths, nil
}
