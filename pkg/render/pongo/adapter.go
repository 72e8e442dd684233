package pongo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/render"
)

const rendererName = "pongo"

// Option configures the pongo renderer before construction.
type Option func(*options)

type options struct {
	baseDir   string
	templates fs.FS
	extension string
	globals   map[string]any
}

// WithBaseDir configures the engine to load templates from a directory on
// disk.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS configures the engine to load templates from an fs.FS.
func WithFS(files fs.FS) Option {
	return func(o *options) {
		o.templates = files
	}
}

// WithExtension overrides the default template extension appended to bare
// template names.
func WithExtension(ext string) Option {
	return func(o *options) {
		trimmed := strings.TrimSpace(ext)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, ".") {
			trimmed = "." + trimmed
		}
		o.extension = trimmed
	}
}

// WithGlobals seeds context values available to every template alongside the
// merged configuration. Configuration keys win on collision.
func WithGlobals(data map[string]any) Option {
	return func(o *options) {
		if len(data) == 0 {
			return
		}
		if o.globals == nil {
			o.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			o.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Renderer renders template files against the merged configuration using a
// pongo2 template set. Compiled templates are cached per path.
type Renderer struct {
	mu sync.RWMutex

	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
	globals     map[string]any
	tplExt      string
}

// Ensure Renderer satisfies the registry contract.
var _ render.Renderer = (*Renderer)(nil)

// New constructs a Renderer using the provided configuration options.
func New(opts ...Option) (*Renderer, error) {
	cfg := &options{
		extension: ".html",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	if cfg.baseDir == "" && cfg.templates == nil {
		return nil, errors.New("pongo: need to provide either base dir or fs.FS")
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("pongo: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.templates != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.templates))
	}

	registerDefaultFilters()

	return &Renderer{
		templateSet: pongo2.NewSet("sitegen", loaders...),
		templates:   make(map[string]*pongo2.Template),
		globals:     cfg.globals,
		tplExt:      cfg.extension,
	}, nil
}

// Name identifies this renderer inside a registry.
func (r *Renderer) Name() string {
	return rendererName
}

// ContentType reports the media type of rendered output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the named template with the merged configuration as its
// context. The configuration is read, never written.
func (r *Renderer) Render(ctx context.Context, template string, cfg config.Configuration) ([]byte, error) {
	if r == nil || r.templateSet == nil {
		return nil, errors.New("pongo: renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if template == "" {
		return nil, errors.New("pongo: template name is required")
	}

	templatePath := template
	if !strings.HasSuffix(templatePath, r.tplExt) {
		templatePath += r.tplExt
	}

	tmpl, err := r.getTemplate(templatePath)
	if err != nil {
		return nil, err
	}

	viewContext := make(pongo2.Context, len(r.globals)+len(cfg))
	for key, value := range r.globals {
		viewContext[key] = value
	}
	for key, value := range cfg {
		viewContext[key] = value
	}

	r.mu.RLock()
	out, err := tmpl.ExecuteBytes(viewContext)
	r.mu.RUnlock()

	if err != nil {
		return nil, fmt.Errorf("pongo: execute template %q: %w", templatePath, err)
	}
	return out, nil
}

func (r *Renderer) getTemplate(path string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[path]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := r.templateSet.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("pongo: load template %q: %w", path, err)
	}

	r.templates[path] = tmpl
	return tmpl, nil
}
