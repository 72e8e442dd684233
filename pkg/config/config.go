package config

// Configuration is the nested structure handed to every template render:
// mappings keyed by string, ordered sequences, and scalars as produced by
// the YAML/JSON decoders (string, bool, float64, int, nil). The root is
// always a mapping.
//
// A Configuration is owned by the build that assembled it. It is mutated
// synchronously while overrides apply and must be treated as read-only once
// the merge completes; after that point any number of renders may read it
// concurrently.
type Configuration = map[string]any

// New returns an empty mapping-rooted Configuration.
func New() Configuration {
	return Configuration{}
}

// DeepCopy returns a structurally independent copy of cfg. Useful when a
// caller needs to re-run a merge against the same base, or to compare a
// merged tree against its pristine source.
func DeepCopy(cfg Configuration) Configuration {
	if cfg == nil {
		return nil
	}
	return copyMap(cfg)
}

func copyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for key, value := range in {
		out[key] = copyValue(value)
	}
	return out
}

func copySlice(in []any) []any {
	out := make([]any, len(in))
	for i, value := range in {
		out[i] = copyValue(value)
	}
	return out
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return copyMap(v)
	case []any:
		return copySlice(v)
	default:
		return v
	}
}
