package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-sitegen/pkg/output"
)

func TestParseLayout(t *testing.T) {
	if _, err := output.ParseLayout("flat"); err != nil {
		t.Fatalf("flat rejected: %v", err)
	}
	if _, err := output.ParseLayout("index"); err != nil {
		t.Fatalf("index rejected: %v", err)
	}
	if _, err := output.ParseLayout("tree"); err == nil {
		t.Fatalf("unknown layout accepted")
	}
}

func TestDirSink_FlatLayout(t *testing.T) {
	dir := t.TempDir()
	sink, err := output.NewDirSink(dir)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	path, err := sink.Write("about.html", []byte("<p>about</p>"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "about.html") {
		t.Fatalf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "<p>about</p>" {
		t.Fatalf("unexpected content: %s", data)
	}
}

func TestDirSink_IndexLayout(t *testing.T) {
	dir := t.TempDir()
	sink, err := output.NewDirSink(dir, output.WithLayout(output.LayoutIndex))
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	path, err := sink.Write("about.html", []byte("x"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "about", "index.html") {
		t.Fatalf("unexpected path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestDirSink_CustomExtension(t *testing.T) {
	dir := t.TempDir()
	sink, err := output.NewDirSink(dir, output.WithExtension("xml"))
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	path, err := sink.Write("feed.tpl", []byte("<rss/>"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, "feed.xml") {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestDirSink_CreatesRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "public")
	if _, err := output.NewDirSink(dir); err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("root not created: %v", err)
	}
}

func TestDirSink_RejectsEmptyInputs(t *testing.T) {
	if _, err := output.NewDirSink("  "); err == nil {
		t.Fatalf("blank directory accepted")
	}

	sink, err := output.NewDirSink(t.TempDir())
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	if _, err := sink.Write(".html", []byte("x")); err == nil {
		t.Fatalf("extension-only name accepted")
	}
}

func TestMapSink(t *testing.T) {
	sink := output.NewMapSink()

	if _, err := sink.Write("page.html", []byte("hi")); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, ok := sink.File("page.html")
	if !ok || string(data) != "hi" {
		t.Fatalf("stored payload missing: %q %v", data, ok)
	}
	if sink.Len() != 1 {
		t.Fatalf("len = %d, want 1", sink.Len())
	}
	if _, err := sink.Write("", nil); err == nil {
		t.Fatalf("empty name accepted")
	}
}
