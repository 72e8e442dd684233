package config

import "fmt"

// LoadError reports an unreadable or unparseable configuration source. It is
// fatal for a build: nothing renders until the base configuration loads.
type LoadError struct {
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Location == "" {
		return fmt.Sprintf("config: load: %v", e.Err)
	}
	return fmt.Sprintf("config: load %s: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MalformedOverrideError reports an override directive with no '=' separator.
type MalformedOverrideError struct {
	Override string
}

func (e *MalformedOverrideError) Error() string {
	return fmt.Sprintf("config: override %q is missing the '=' separator", e.Override)
}

// InvalidIndexSegmentError reports a path segment that must address a
// sequence but does not parse as a non-negative base-10 integer.
type InvalidIndexSegmentError struct {
	Override string
	Segment  string
}

func (e *InvalidIndexSegmentError) Error() string {
	return fmt.Sprintf("config: override %q: segment %q does not index a sequence", e.Override, e.Segment)
}

// IndexOutOfBoundsError reports a numeric path segment addressing a position
// beyond the bounds of an existing sequence. New slots are never created, so
// an index equal to the length is out of bounds too.
type IndexOutOfBoundsError struct {
	Override string
	Index    int
	Length   int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("config: override %q: index %d out of bounds for sequence of length %d", e.Override, e.Index, e.Length)
}
