package output

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// DirSink writes rendered output beneath a directory. Files land atomically
// (write to temp, rename) so a crashed build never leaves a half-written
// page behind.
type DirSink struct {
	dir    string
	layout Layout
	ext    string
}

// DirOption customises a DirSink.
type DirOption func(*DirSink)

// WithLayout selects the flat or index output layout. Flat is the default.
func WithLayout(layout Layout) DirOption {
	return func(s *DirSink) {
		s.layout = layout
	}
}

// WithExtension overrides the ".html" extension appended to output files.
func WithExtension(ext string) DirOption {
	return func(s *DirSink) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		s.ext = trimmed
	}
}

// NewDirSink constructs a sink rooted at dir, creating it when absent.
func NewDirSink(dir string, options ...DirOption) (*DirSink, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("output: directory is required")
	}
	s := &DirSink{
		dir:    filepath.Clean(dir),
		layout: LayoutFlat,
		ext:    ".html",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("output: create directory %s: %w", s.dir, err)
	}
	return s, nil
}

// Dir returns the root the sink writes under.
func (s *DirSink) Dir() string {
	return s.dir
}

// Write persists data for the named template and returns the path written.
// The template's own extension is stripped before the layout applies, so
// "about.html" and "about" address the same output file.
func (s *DirSink) Write(name string, data []byte) (string, error) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		return "", fmt.Errorf("output: invalid template name %q", name)
	}

	var rel string
	switch s.layout {
	case LayoutIndex:
		rel = filepath.Join(base, "index"+s.ext)
	default:
		rel = base + s.ext
	}

	path := filepath.Join(s.dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("output: create parent for %s: %w", path, err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("output: write %s: %w", path, err)
	}
	return path, nil
}
