// Package convert turns rendered HTML documents into downloadable PDF and
// DOC artifacts on disk.
package convert

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Converter produces export artifacts under a single output directory.
type Converter struct {
	outputDir string
	timeout   time.Duration
}

// NewConverter creates a Converter writing into outputDir, creating the
// directory when needed.
func NewConverter(outputDir string, timeout time.Duration) (*Converter, error) {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Converter{outputDir: outputDir, timeout: timeout}, nil
}

// OutputDir returns the directory artifacts are written to.
func (c *Converter) OutputDir() string {
	return c.outputDir
}

// ArtifactPath resolves a stored artifact filename inside the output
// directory, rejecting anything that would escape it.
func (c *Converter) ArtifactPath(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid artifact filename: %q", filename)
	}
	return filepath.Join(c.outputDir, filename), nil
}

// uniqueFilename builds a collision-resistant filename such as
// "curriculo-20260829-153000-a1b2c3d4.pdf".
func uniqueFilename(prefix, ext string) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// Timestamp alone still disambiguates at second granularity.
		return fmt.Sprintf("%s-%s.%s", prefix, time.Now().Format("20060102-150405"), ext)
	}
	return fmt.Sprintf("%s-%s-%s.%s", prefix, time.Now().Format("20060102-150405"), hex.EncodeToString(suffix), ext)
}

func (c *Converter) writeArtifact(prefix, ext string, content []byte) (string, error) {
	filename := uniqueFilename(prefix, ext)
	path := filepath.Join(c.outputDir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}
	return path, nil
}
