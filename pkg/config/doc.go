// Package config assembles the configuration tree shared by every template
// render. It loads a base document (YAML or JSON, picked by extension) into
// a mapping-rooted tree and applies ordered `path=value` overrides onto it:
// dot-notation paths, sequence-index addressing, and JSON-typed values with
// a literal-string fallback. The merge is strictly sequential because later
// overrides may descend into structure created by earlier ones; once it
// completes the tree is treated as immutable and may be read concurrently
// by any number of renders.
package config
