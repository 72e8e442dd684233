package config

import "io/fs"

// LoaderOption customises loader construction.
type LoaderOption func(*LoaderOptions)

// LoaderOptions carries pre-resolved loader configuration. The concrete
// loader lives in internal/config/loader; keeping the options here lets
// callers configure it without importing internal packages.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS lookups. Nil disables them.
	FileSystem fs.FS
}

// NewLoaderOptions resolves the provided options into a LoaderOptions value.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	opts := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	return opts
}

// WithLoaderFS supplies the filesystem used for SourceKindFS sources.
func WithLoaderFS(fsys fs.FS) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileSystem = fsys
	}
}
