package headtags

import (
	"context"
	"fmt"
	"sync"

	"github.com/goliatone/go-headtags/pkg/adapters/grouping"
	"github.com/goliatone/go-headtags/pkg/adapters/templnode"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
	"github.com/goliatone/go-headtags/pkg/render"
	configrenderer "github.com/goliatone/go-headtags/pkg/renderers/config"
	"github.com/goliatone/go-headtags/pkg/renderers/markup"
	templrenderer "github.com/goliatone/go-headtags/pkg/renderers/templ"
)

// Declaration aliases element.Declaration for callers that only import the
// root package.
type Declaration = element.Declaration

// Sequence aliases element.Sequence.
type Sequence = element.Sequence

// MetaAttrs aliases element.MetaAttrs.
type MetaAttrs = element.MetaAttrs

// LinkAttrs aliases element.LinkAttrs.
type LinkAttrs = element.LinkAttrs

// ScriptAttrs aliases element.ScriptAttrs.
type ScriptAttrs = element.ScriptAttrs

// StyleAttrs aliases element.StyleAttrs.
type StyleAttrs = element.StyleAttrs

// Groups aliases grouping.Groups, the grouping adapter output.
type Groups = grouping.Groups

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// New returns a builder yielding the raw declaration sequence.
func New(options ...head.Option) *head.Builder[element.Sequence] {
	return head.New(options...)
}

// NewWithAdapter returns a builder whose output is produced by adapter.
func NewWithAdapter[T any](adapter head.Adapter[T], options ...head.Option) *head.Builder[T] {
	return head.NewWithAdapter(adapter, options...)
}

// NewGrouped returns a builder that groups declarations by kind.
func NewGrouped(options ...head.Option) *head.Builder[grouping.Groups] {
	return head.NewWithAdapter[grouping.Groups](grouping.New(), options...)
}

// NewNodes returns a builder that produces templ element nodes.
func NewNodes(options ...head.Option) *head.Builder[templnode.Nodes] {
	return head.NewWithAdapter[templnode.Nodes](templnode.New(), options...)
}

// WithBaseURL re-exports head.WithBaseURL.
func WithBaseURL(raw string) head.Option {
	return head.WithBaseURL(raw)
}

// NewRegistry returns a registry holding the built-in renderers: html (the
// default), templ, json and yaml. markupOptions configure the html renderer.
func NewRegistry(markupOptions ...markup.Option) (*render.Registry, error) {
	html, err := markup.New(markupOptions...)
	if err != nil {
		return nil, fmt.Errorf("headtags: html renderer: %w", err)
	}

	registry := render.NewRegistry()
	for _, renderer := range []render.Renderer{
		html,
		templrenderer.New(),
		configrenderer.NewJSON(),
		configrenderer.NewYAML(),
	} {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("headtags: %w", err)
		}
	}
	return registry, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *render.Registry
	defaultErr      error
)

// DefaultRegistry returns a process-wide registry built by NewRegistry with
// no options. It is created on first use.
func DefaultRegistry() (*render.Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = NewRegistry()
	})
	return defaultRegistry, defaultErr
}

// Render renders seq with the named renderer from the default registry. An
// empty name selects the html renderer.
func Render(ctx context.Context, seq element.Sequence, rendererName string, options RenderOptions) ([]byte, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}
	out, _, err := registry.Render(ctx, rendererName, seq, options)
	return out, err
}
