package sitegen

import (
	"context"

	internalLoader "github.com/goliatone/go-sitegen/internal/config/loader"
	"github.com/goliatone/go-sitegen/pkg/builder"
	"github.com/goliatone/go-sitegen/pkg/config"
)

// Configuration aliases the merged configuration tree passed to templates.
type Configuration = config.Configuration

// Request describes the inputs for one build; alias exported via the root
// package for convenience.
type Request = builder.Request

// Report summarises a completed build.
type Report = builder.Report

// Result records the outcome of one template render.
type Result = builder.Result

// New exposes the builder constructor from the top-level module so most
// callers need a single import.
func New(options ...builder.Option) *builder.Builder {
	return builder.New(options...)
}

// Build runs one build with a throwaway builder. It is the simplest entry
// point for callers that just want rendered output.
func Build(ctx context.Context, req Request, options ...builder.Option) (Report, error) {
	return builder.New(options...).Build(ctx, req)
}

// NewLoader constructs a configuration loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewLoader(options ...config.LoaderOption) config.Loader {
	cfg := config.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// LoadConfig reads the base configuration from path, decoding JSON or YAML
// by extension. An empty path yields an empty mapping, not a failure.
func LoadConfig(ctx context.Context, path string) (Configuration, error) {
	if path == "" {
		return config.New(), nil
	}
	return NewLoader().Load(ctx, config.SourceFromFile(path))
}

// ApplyOverrides applies raw `path=value` directives onto cfg in order,
// mutating and returning it. See pkg/config for the full semantics.
func ApplyOverrides(cfg Configuration, overrides []string) (Configuration, error) {
	return config.ApplyOverrides(cfg, overrides)
}
