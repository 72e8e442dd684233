package config

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader resolves a Source into a mapping-rooted Configuration. A nil source
// yields an empty mapping rather than an error, so callers can treat the
// base configuration as optional.
type Loader interface {
	Load(ctx context.Context, src Source) (Configuration, error)
}

// Format identifies the encoding of a configuration payload.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath infers the decode format from a file extension. Only ".json"
// selects the JSON decoder; everything else decodes as YAML, which accepts
// JSON documents anyway.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Unmarshal decodes data into a Configuration, enforcing the mapping-root
// invariant. An empty document yields an empty mapping; any other non-map
// root is a failure.
func Unmarshal(data []byte, format Format) (Configuration, error) {
	var root any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &root)
	default:
		err = yaml.Unmarshal(data, &root)
	}
	if err != nil {
		return nil, err
	}

	switch m := root.(type) {
	case nil:
		return Configuration{}, nil
	case map[string]any:
		return m, nil
	default:
		return nil, fmt.Errorf("config: document root is %T, expected a mapping", root)
	}
}
