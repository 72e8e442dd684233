package output

import (
	"fmt"
	"sync"
)

// Sink receives rendered template output. Write returns the destination the
// payload landed at so callers can report per-file results.
type Sink interface {
	Write(name string, data []byte) (string, error)
}

// Layout controls how a template name maps to an output path.
type Layout string

const (
	// LayoutFlat writes `<name>.html` directly under the output directory.
	LayoutFlat Layout = "flat"
	// LayoutIndex writes `<name>/index.html`, the clean-URL convention.
	LayoutIndex Layout = "index"
)

// ParseLayout validates a textual layout choice, typically a CLI flag.
func ParseLayout(raw string) (Layout, error) {
	switch Layout(raw) {
	case LayoutFlat:
		return LayoutFlat, nil
	case LayoutIndex:
		return LayoutIndex, nil
	default:
		return "", fmt.Errorf("output: unknown layout %q", raw)
	}
}

// MapSink collects rendered output in memory. Useful for tests and for
// callers that post-process results before persisting them.
type MapSink struct {
	mu    sync.Mutex
	files map[string][]byte
}

// NewMapSink creates an empty in-memory sink.
func NewMapSink() *MapSink {
	return &MapSink{files: make(map[string][]byte)}
}

// Write stores a copy of data under name.
func (s *MapSink) Write(name string, data []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("output: name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[name] = append([]byte(nil), data...)
	return name, nil
}

// File returns the stored payload for name.
func (s *MapSink) File(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	return data, ok
}

// Len reports how many files the sink holds.
func (s *MapSink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
