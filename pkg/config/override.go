package config

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Override is a parsed `path=value` directive. Segments address mapping keys
// or, when the node reached is a sequence, base-10 indices. Value carries
// the JSON-decoded payload, or the raw text when it is not valid JSON.
type Override struct {
	// Raw preserves the original directive for error reporting.
	Raw      string
	Segments []string
	Value    any
}

// ParseOverride splits a raw directive at the first '=', unquotes the key,
// and decodes the value. A directive with no '=' fails with a
// *MalformedOverrideError.
func ParseOverride(raw string) (Override, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return Override{}, &MalformedOverrideError{Override: raw}
	}
	return Override{
		Raw:      raw,
		Segments: splitKey(key),
		Value:    decodeValue(value),
	}, nil
}

// splitKey strips one matching quote pair around the whole key and, when it
// does, treats the remainder as a single literal mapping key. Dots inside a
// quoted key therefore do not split; unquoted keys split on every dot.
func splitKey(key string) []string {
	if literal, ok := unquote(key); ok {
		return []string{literal}
	}
	return strings.Split(key, ".")
}

func unquote(key string) (string, bool) {
	if len(key) < 2 {
		return "", false
	}
	first, last := key[0], key[len(key)-1]
	if first != last || (first != '\'' && first != '"') {
		return "", false
	}
	return key[1 : len(key)-1], true
}

// decodeValue attempts a strict JSON decode so `true`, `42`, `{"x":1}` and
// `["a"]` become typed values. Text that is not valid JSON, such as `hello`
// or `example.com`, is retained verbatim as a string scalar.
func decodeValue(raw string) any {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

// ApplyOverrides applies each raw directive in order, mutating cfg in place
// and returning it so calls chain. Later overrides may overwrite the effect
// of earlier ones; there is no conflict detection. The first failing
// override aborts with its typed error: directives before it remain
// applied, directives after it never run. A nil configuration is rejected;
// start from New instead.
func ApplyOverrides(cfg Configuration, overrides []string) (Configuration, error) {
	if cfg == nil {
		return nil, errors.New("config: configuration is nil")
	}
	for _, raw := range overrides {
		override, err := ParseOverride(raw)
		if err != nil {
			return cfg, err
		}
		if err := override.Apply(cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Apply walks cfg along the override's segments and assigns the decoded
// value at the terminal position, replacing whatever was there. Missing
// intermediate mapping keys are created; sibling keys are never removed.
// Sequences are traversed only through existing indices.
func (o Override) Apply(cfg Configuration) error {
	if len(o.Segments) == 0 {
		return nil
	}

	var current any = cfg
	for _, segment := range o.Segments[:len(o.Segments)-1] {
		switch node := current.(type) {
		case map[string]any:
			child, ok := node[segment]
			if !ok || !isContainer(child) {
				child = map[string]any{}
				node[segment] = child
			}
			current = child
		case []any:
			idx, err := o.index(segment, len(node))
			if err != nil {
				return err
			}
			child := node[idx]
			if !isContainer(child) {
				child = map[string]any{}
				node[idx] = child
			}
			current = child
		}
	}

	terminal := o.Segments[len(o.Segments)-1]
	switch node := current.(type) {
	case map[string]any:
		node[terminal] = o.Value
	case []any:
		idx, err := o.index(terminal, len(node))
		if err != nil {
			return err
		}
		node[idx] = o.Value
	}
	return nil
}

// index validates a segment used against a sequence of the given length.
// Only 0 <= i < length addresses an existing slot; appends are unsupported.
func (o Override) index(segment string, length int) (int, error) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 {
		return 0, &InvalidIndexSegmentError{Override: o.Raw, Segment: segment}
	}
	if idx >= length {
		return 0, &IndexOutOfBoundsError{Override: o.Raw, Index: idx, Length: length}
	}
	return idx, nil
}

func isContainer(value any) bool {
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}
