package templ

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goliatone/go-headtags/pkg/adapters/templnode"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/render"
)

// Name identifies the renderer inside a registry.
const Name = "templ"

// Option customises the renderer configuration.
type Option func(*Renderer)

// WithAdapter replaces the node adapter, e.g. to change key derivation.
func WithAdapter(adapter templnode.Adapter) Option {
	return func(r *Renderer) {
		r.adapter = adapter
	}
}

// Renderer turns a sequence into templ nodes and renders them as markup.
type Renderer struct {
	adapter templnode.Adapter
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{adapter: templnode.New()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes one tag per line, each prefixed by options.Indent.
// Declarations failing Validate are skipped.
func (r *Renderer) Render(ctx context.Context, seq element.Sequence, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prepared, err := render.Prepare(seq, options)
	if err != nil {
		return nil, fmt.Errorf("templ renderer: %w", err)
	}
	valid := prepared[:0]
	for _, decl := range prepared {
		if decl.Validate() == nil {
			valid = append(valid, decl)
		}
	}
	prepared = valid

	var buf bytes.Buffer
	for _, node := range r.adapter.Transform(prepared) {
		buf.WriteString(options.Indent)
		if err := node.Render(ctx, &buf); err != nil {
			return nil, fmt.Errorf("templ renderer: render %s: %w", node.Key, err)
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
