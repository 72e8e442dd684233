package builder

import (
	"context"
	"errors"
	"fmt"

	"dario.cat/mergo"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-sitegen/internal/config/loader"
	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/output"
	"github.com/goliatone/go-sitegen/pkg/render"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithLoader injects a custom configuration loader.
func WithLoader(loader config.Loader) Option {
	return func(b *Builder) {
		b.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(b *Builder) {
		b.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(b *Builder) {
		b.defaultRenderer = name
	}
}

// WithDefaults registers a defaults tree merged beneath the loaded
// configuration before overrides apply. Loaded values win on collision.
func WithDefaults(defaults config.Configuration) Option {
	return func(b *Builder) {
		b.defaults = defaults
	}
}

// WithSink injects the destination for rendered output.
func WithSink(sink output.Sink) Option {
	return func(b *Builder) {
		b.sink = sink
	}
}

// WithLogger injects a zap logger. The default is a nop logger so library
// callers stay quiet unless they opt in.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder coordinates the full pipeline: load the base configuration, merge
// defaults beneath it, apply overrides in order, then render every requested
// template against the frozen result. Configuration-stage failures abort
// before anything is written; per-template failures are collected so one bad
// template does not sink the rest of the site.
type Builder struct {
	loader          config.Loader
	registry        *render.Registry
	defaultRenderer string
	defaults        config.Configuration
	sink            output.Sink
	logger          *zap.Logger
	defaultsApplied bool
}

// New constructs a Builder applying any provided options. Missing
// dependencies are initialised with built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Builder {
	b := &Builder{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	b.applyDefaults()
	return b
}

// Request describes the inputs for one build.
type Request struct {
	// ConfigSource identifies where the base configuration lives. Optional:
	// when nil (and Config is nil) the build starts from an empty mapping.
	ConfigSource config.Source

	// Config allows callers to bypass the loader when they already hold a
	// configuration tree. The build takes ownership and mutates it.
	Config config.Configuration

	// Overrides are raw `path=value` directives applied in order after load.
	Overrides []string

	// Templates names the templates to render, one output file each.
	Templates []string

	// Renderer names the renderer to use. If empty, the builder falls back
	// to the configured default renderer.
	Renderer string
}

// Build executes the load → merge → override → render → write sequence.
// The returned error covers configuration-stage and setup failures, which
// abort before any output is written. Individual template failures are
// reported through the Report and leave the remaining templates unaffected.
func (b *Builder) Build(ctx context.Context, req Request) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("builder: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if !b.defaultsApplied {
		b.applyDefaults()
	}

	cfg, err := b.resolveConfig(ctx, req)
	if err != nil {
		return Report{}, err
	}

	if len(b.defaults) > 0 {
		// Merge the loaded tree over a copy of the defaults. WithOverride
		// sets map keys unconditionally, so loaded values win even when
		// they are false, zero, or empty.
		merged := config.DeepCopy(b.defaults)
		if err := mergo.Merge(&merged, cfg, mergo.WithOverride); err != nil {
			return Report{}, fmt.Errorf("builder: merge defaults: %w", err)
		}
		cfg = merged
	}

	if cfg, err = config.ApplyOverrides(cfg, req.Overrides); err != nil {
		return Report{}, err
	}

	renderer, err := b.rendererFor(req.Renderer)
	if err != nil {
		return Report{}, err
	}

	// The merge is complete: cfg is frozen from here on and shared by every
	// render below.
	report := Report{Config: cfg}
	for _, template := range req.Templates {
		result := Result{Template: template}

		data, err := renderer.Render(ctx, template, cfg)
		if err != nil {
			result.Err = fmt.Errorf("builder: render %s: %w", template, err)
			b.logger.Warn("template render failed", zap.String("template", template), zap.Error(err))
			report.Results = append(report.Results, result)
			continue
		}

		path, err := b.sink.Write(template, data)
		if err != nil {
			result.Err = fmt.Errorf("builder: write %s: %w", template, err)
			b.logger.Warn("template write failed", zap.String("template", template), zap.Error(err))
			report.Results = append(report.Results, result)
			continue
		}

		result.Path = path
		b.logger.Info("template rendered", zap.String("template", template), zap.String("path", path))
		report.Results = append(report.Results, result)
	}

	return report, nil
}

func (b *Builder) resolveConfig(ctx context.Context, req Request) (config.Configuration, error) {
	if req.Config != nil {
		return req.Config, nil
	}
	return b.loader.Load(ctx, req.ConfigSource)
}

func (b *Builder) rendererFor(name string) (render.Renderer, error) {
	if b.registry == nil {
		return nil, errors.New("builder: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = b.defaultRenderer
	}

	if target != "" {
		renderer, err := b.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("builder: renderer %q: %w", name, err)
		}
	}

	names := b.registry.List()
	if len(names) == 0 {
		return nil, errors.New("builder: no renderers registered")
	}

	renderer, err := b.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("builder: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (b *Builder) applyDefaults() {
	if b.defaultsApplied {
		return
	}

	if b.loader == nil {
		b.loader = internalLoader.New(config.NewLoaderOptions())
	}
	if b.registry == nil {
		b.registry = render.NewRegistry()
	}
	if b.sink == nil {
		b.sink = output.NewMapSink()
	}
	if b.logger == nil {
		b.logger = zap.NewNop()
	}

	b.defaultsApplied = true
}
