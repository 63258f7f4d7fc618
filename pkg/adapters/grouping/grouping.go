package grouping

import (
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
)

// Groups is the bucketed view consumed by router-style head configuration.
// Every bucket is always present, even when empty.
type Groups struct {
	Meta    []element.MetaAttrs   `json:"meta" yaml:"meta"`
	Links   []element.LinkAttrs   `json:"links" yaml:"links"`
	Scripts []element.ScriptAttrs `json:"scripts" yaml:"scripts"`
	Styles  []element.StyleAttrs  `json:"styles" yaml:"styles"`
}

// Len returns the number of attribute records across all buckets.
func (g Groups) Len() int {
	return len(g.Meta) + len(g.Links) + len(g.Scripts) + len(g.Styles)
}

// SkipHandler observes declarations that matched no bucket.
type SkipHandler func(index int, decl element.Declaration)

// Option customises the adapter.
type Option func(*Adapter)

// WithSkipHandler registers a callback for declarations the adapter drops.
func WithSkipHandler(fn SkipHandler) Option {
	return func(a *Adapter) {
		a.onSkip = fn
	}
}

// Adapter groups a sequence by kind. The zero value is ready to use.
type Adapter struct {
	onSkip SkipHandler
}

var _ head.Adapter[Groups] = Adapter{}

// New constructs an Adapter applying any provided options.
func New(options ...Option) Adapter {
	a := Adapter{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&a)
	}
	return a
}

// Transform buckets seq by kind in a single pass. Relative order inside each
// bucket follows seq; ordering across kinds is not kept. Declarations whose
// kind or payload match no bucket are skipped.
func (a Adapter) Transform(seq element.Sequence) Groups {
	out := Groups{
		Meta:    []element.MetaAttrs{},
		Links:   []element.LinkAttrs{},
		Scripts: []element.ScriptAttrs{},
		Styles:  []element.StyleAttrs{},
	}

	for i, decl := range seq {
		if attrs, ok := decl.AsMeta(); ok {
			out.Meta = append(out.Meta, attrs)
			continue
		}
		if attrs, ok := decl.AsLink(); ok {
			out.Links = append(out.Links, attrs)
			continue
		}
		if attrs, ok := decl.AsScript(); ok {
			out.Scripts = append(out.Scripts, attrs)
			continue
		}
		if attrs, ok := decl.AsStyle(); ok {
			out.Styles = append(out.Styles, attrs)
			continue
		}
		if a.onSkip != nil {
			a.onSkip(i, decl)
		}
	}
	return out
}

// Group is shorthand for New().Transform(seq).
func Group(seq element.Sequence) Groups {
	return Adapter{}.Transform(seq)
}
