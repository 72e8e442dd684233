package render

import (
	"context"

	"github.com/goliatone/go-sitegen/pkg/config"
)

// Renderer converts a named template plus the merged Configuration into a
// byte representation (HTML, XML, plain text). Implementations must treat
// the configuration as read-only: the merge pipeline hands out one shared
// tree per build, and renders may run concurrently against it.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, template string, cfg config.Configuration) ([]byte, error)
}
