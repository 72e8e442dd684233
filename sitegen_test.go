package sitegen_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sitegen "github.com/goliatone/go-sitegen"
	"github.com/goliatone/go-sitegen/pkg/builder"
	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/output"
	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/render/pongo"
)

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := sitegen.LoadConfig(context.Background(), "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg) != 0 {
		t.Fatalf("expected empty mapping, got %#v", cfg)
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	workdir := t.TempDir()

	configPath := filepath.Join(workdir, "site.yaml")
	if err := os.WriteFile(configPath, []byte("title: A\ntags: [x, y]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	templatesDir := filepath.Join(workdir, "templates")
	if err := os.MkdirAll(templatesDir, 0o755); err != nil {
		t.Fatalf("mkdir templates: %v", err)
	}
	page := "<h1>{{ title }}</h1><p>{{ tags.0 }}</p>"
	if err := os.WriteFile(filepath.Join(templatesDir, "index.html"), []byte(page), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	renderer, err := pongo.New(pongo.WithBaseDir(templatesDir))
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	outDir := filepath.Join(workdir, "public")
	sink, err := output.NewDirSink(outDir, output.WithLayout(output.LayoutIndex))
	if err != nil {
		t.Fatalf("sink: %v", err)
	}

	report, err := sitegen.Build(context.Background(), sitegen.Request{
		ConfigSource: config.SourceFromFile(configPath),
		Overrides:    []string{`title="B"`, "tags.0=z"},
		Templates:    []string{"index.html"},
	},
		builder.WithRegistry(registry),
		builder.WithSink(sink),
	)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if err := report.Err(); err != nil {
		t.Fatalf("template failures: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "index", "index.html"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "<h1>B</h1><p>z</p>" {
		t.Fatalf("unexpected output: %s", data)
	}
}
