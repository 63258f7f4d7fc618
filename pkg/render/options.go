package render

import (
	"fmt"

	"github.com/goliatone/go-headtags/pkg/adapters/resolve"
	"github.com/goliatone/go-headtags/pkg/element"
)

// RenderOptions describe per-call settings renderers apply without mutating
// the sequence they receive.
type RenderOptions struct {
	// BaseURL is the absolute URL relative references resolve against when
	// ResolveURLs is set.
	BaseURL string
	// ResolveURLs opts into rewriting relative link hrefs and script srcs. It
	// has no effect without BaseURL.
	ResolveURLs bool
	// Indent prefixes every emitted line. Structured renderers use it as the
	// nesting indent.
	Indent string
	// Subset restricts output to matching declarations. The zero value keeps
	// everything.
	Subset Subset
}

// Prepare returns the sequence a renderer should serialise: a copy of seq,
// narrowed to options.Subset and with URLs resolved when the options ask for
// it.
func Prepare(seq element.Sequence, options RenderOptions) (element.Sequence, error) {
	seq = ApplySubset(seq, options.Subset)
	if !options.ResolveURLs || options.BaseURL == "" {
		return seq, nil
	}
	adapter, err := resolve.New(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return adapter.Transform(seq), nil
}
