package render

import (
	"context"

	"github.com/goliatone/go-headtags/pkg/element"
)

// Renderer converts a declaration sequence into a byte representation (HTML,
// JSON, YAML, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, seq element.Sequence, options RenderOptions) ([]byte, error)
}
