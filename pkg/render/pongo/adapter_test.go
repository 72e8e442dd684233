package pongo_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/render/pongo"
)

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
}

func TestRender_FromBaseDir(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "page.html", "<h1>{{ title }}</h1>")

	renderer, err := pongo.New(pongo.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), "page", config.Configuration{"title": "Hello"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "<h1>Hello</h1>" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"page.tpl": &fstest.MapFile{Data: []byte("{{ site.name }}: {{ tags.0 }}")},
	}

	renderer, err := pongo.New(pongo.WithFS(fsys), pongo.WithExtension("tpl"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	cfg := config.Configuration{
		"site": map[string]any{"name": "demo"},
		"tags": []any{"x", "y"},
	}
	out, err := renderer.Render(context.Background(), "page", cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "demo: x" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_GlobalsLoseToConfig(t *testing.T) {
	fsys := fstest.MapFS{
		"page.html": &fstest.MapFile{Data: []byte("{{ title }}/{{ version }}")},
	}

	renderer, err := pongo.New(
		pongo.WithFS(fsys),
		pongo.WithGlobals(map[string]any{"title": "default", "version": "v1"}),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), "page", config.Configuration{"title": "real"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "real/v1" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_JSONifyFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"data.html": &fstest.MapFile{Data: []byte("{{ tags|jsonify }}")},
	}

	renderer, err := pongo.New(pongo.WithFS(fsys))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), "data", config.Configuration{"tags": []any{"x", "y"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `["x","y"]` {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_SanitizeFilter(t *testing.T) {
	fsys := fstest.MapFS{
		"bio.html": &fstest.MapFile{Data: []byte("{{ bio|sanitize }}")},
	}

	renderer, err := pongo.New(pongo.WithFS(fsys))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	cfg := config.Configuration{"bio": `<p>hi</p><script>alert(1)</script>`}
	out, err := renderer.Render(context.Background(), "bio", cfg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "script") {
		t.Fatalf("script tag survived sanitisation: %s", out)
	}
	if !strings.Contains(string(out), "<p>hi</p>") {
		t.Fatalf("benign markup stripped: %s", out)
	}
}

func TestRender_MissingTemplate(t *testing.T) {
	renderer, err := pongo.New(pongo.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	if _, err := renderer.Render(context.Background(), "ghost", config.New()); err == nil {
		t.Fatalf("missing template rendered")
	}
}

func TestNew_RequiresTemplateSource(t *testing.T) {
	if _, err := pongo.New(); err == nil {
		t.Fatalf("constructor accepted empty configuration")
	}
}
