package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/goliatone/go-sitegen/pkg/builder"
	"github.com/goliatone/go-sitegen/pkg/config"
	"github.com/goliatone/go-sitegen/pkg/output"
	"github.com/goliatone/go-sitegen/pkg/render"
	"github.com/goliatone/go-sitegen/pkg/render/pongo"
)

func main() {
	app := kingpin.New("sitegen", "Renders a directory of templates against a merged configuration")
	configPath := app.Flag("config", "Path to the base YAML or JSON configuration file").Short('c').String()
	overrides := app.Flag("set", "Configuration override as path=value (repeatable)").Short('s').Strings()
	templatesDir := app.Flag("templates", "Directory holding template files").Short('t').Default("templates").String()
	outputDir := app.Flag("output", "Directory receiving rendered output").Short('o').Default("public").String()
	layoutFlag := app.Flag("layout", "Output layout: flat or index").Default(string(output.LayoutFlat)).String()
	extension := app.Flag("ext", "Template file extension").Default(".html").String()
	force := app.Flag("force", "Overwrite a non-empty output directory without confirmation").Bool()
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(*verbose)
	defer func() {
		_ = logger.Sync()
	}()

	layout, err := output.ParseLayout(*layoutFlag)
	if err != nil {
		logger.Fatal("invalid layout", zap.Error(err))
	}

	templates, err := discoverTemplates(*templatesDir, *extension)
	if err != nil {
		logger.Fatal("template discovery failed", zap.Error(err))
	}
	if len(templates) == 0 {
		logger.Fatal("no templates found", zap.String("dir", *templatesDir), zap.String("ext", *extension))
	}

	if !*force && dirHasEntries(*outputDir) {
		if !confirmOverwrite(*outputDir) {
			logger.Info("build cancelled")
			os.Exit(1)
		}
	}

	renderer, err := pongo.New(
		pongo.WithBaseDir(*templatesDir),
		pongo.WithExtension(*extension),
	)
	if err != nil {
		logger.Fatal("renderer setup failed", zap.Error(err))
	}

	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	sink, err := output.NewDirSink(*outputDir,
		output.WithLayout(layout),
		output.WithExtension(*extension),
	)
	if err != nil {
		logger.Fatal("output setup failed", zap.Error(err))
	}

	var src config.Source
	if *configPath != "" {
		src = config.SourceFromFile(*configPath)
	}

	b := builder.New(
		builder.WithRegistry(registry),
		builder.WithSink(sink),
		builder.WithLogger(logger),
	)

	report, err := b.Build(context.Background(), builder.Request{
		ConfigSource: src,
		Overrides:    *overrides,
		Templates:    templates,
	})
	if err != nil {
		// Configuration-stage failure: nothing was written.
		logger.Fatal("build aborted", zap.Error(err))
	}

	for _, result := range report.Results {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", result.Template, result.Err)
			continue
		}
		fmt.Printf("OK   %s -> %s\n", result.Template, result.Path)
	}

	if failed := report.Failed(); len(failed) > 0 {
		logger.Error("build finished with failures", zap.Int("failed", len(failed)), zap.Int("total", len(report.Results)))
		os.Exit(1)
	}
	logger.Info("build finished", zap.Int("rendered", len(report.Results)))
}

// discoverTemplates lists template files directly under dir, sorted by name
// so output and reporting stay deterministic.
func discoverTemplates(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func dirHasEntries(dir string) bool {
	entries, err := os.ReadDir(filepath.Clean(dir))
	return err == nil && len(entries) > 0
}

func confirmOverwrite(dir string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Output directory %s is not empty. Overwrite?", dir),
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false
	}
	return confirmed
}

func newLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(fmt.Sprintf("failed to initialize logger: %v", err))
		}
		return logger
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return logger
}
