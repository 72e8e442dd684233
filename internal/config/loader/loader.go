package loader

import (
	"context"
	"errors"
	"io/fs"

	pkgconfig "github.com/goliatone/go-sitegen/pkg/config"
)

// Loader implements pkgconfig.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level sitegen package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgconfig.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgconfig.LoaderOptions) *Loader {
	return &Loader{fs: options.FileSystem}
}

// Load reads the source and decodes it into a mapping-rooted Configuration.
// A nil source yields an empty mapping so the base configuration stays
// optional. Read and parse failures are wrapped in *pkgconfig.LoadError
// with the underlying diagnostic preserved.
func (l *Loader) Load(ctx context.Context, src pkgconfig.Source) (pkgconfig.Configuration, error) {
	if src == nil {
		return pkgconfig.New(), nil
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case pkgconfig.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case pkgconfig.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("config loader: unsupported source kind")
	}
	if err != nil {
		return nil, &pkgconfig.LoadError{Location: src.Location(), Err: err}
	}

	cfg, err := pkgconfig.Unmarshal(data, pkgconfig.FormatForPath(src.Location()))
	if err != nil {
		return nil, &pkgconfig.LoadError{Location: src.Location(), Err: err}
	}
	return cfg, nil
}
