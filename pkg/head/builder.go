package head

import "github.com/goliatone/go-headtags/pkg/element"

// Adapter reshapes an accumulated sequence into a target-specific output.
// Implementations must not mutate the sequence they receive and may be shared
// across builders.
type Adapter[T any] interface {
	Transform(seq element.Sequence) T
}

// AdapterFunc adapts a function into an Adapter.
type AdapterFunc[T any] func(element.Sequence) T

// Transform calls the underlying function.
func (fn AdapterFunc[T]) Transform(seq element.Sequence) T {
	return fn(seq)
}

// Option customises builder construction.
type Option func(*config)

type config struct {
	baseURL    string
	baseURLSet bool
}

// WithBaseURL records a base URL on the builder. The value is stored verbatim
// and is not applied to any declaration.
func WithBaseURL(raw string) Option {
	return func(cfg *config) {
		cfg.baseURL = raw
		cfg.baseURLSet = true
	}
}

// Builder accumulates head declarations in call order. Build returns either
// the raw sequence or the adapter output, depending on construction.
//
// A Builder is not safe for concurrent mutation.
type Builder[T any] struct {
	seq     element.Sequence
	adapter Adapter[T]
	cfg     config
}

// New returns a builder whose Build yields the raw declaration sequence.
func New(options ...Option) *Builder[element.Sequence] {
	return newBuilder[element.Sequence](nil, options)
}

// NewWithAdapter returns a builder whose Build hands the sequence to adapter.
// With a nil adapter Build falls back to the raw sequence when T can hold it
// and to the zero T otherwise.
func NewWithAdapter[T any](adapter Adapter[T], options ...Option) *Builder[T] {
	return newBuilder(adapter, options)
}

func newBuilder[T any](adapter Adapter[T], options []Option) *Builder[T] {
	b := &Builder[T]{
		seq:     element.Sequence{},
		adapter: adapter,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&b.cfg)
	}
	return b
}

// AddMeta appends a meta declaration.
func (b *Builder[T]) AddMeta(attrs element.MetaAttrs) *Builder[T] {
	return b.Add(element.Meta(attrs))
}

// AddLink appends a link declaration.
func (b *Builder[T]) AddLink(attrs element.LinkAttrs) *Builder[T] {
	return b.Add(element.Link(attrs))
}

// AddScript appends a script declaration.
func (b *Builder[T]) AddScript(attrs element.ScriptAttrs) *Builder[T] {
	return b.Add(element.Script(attrs))
}

// AddStyle appends a style declaration.
func (b *Builder[T]) AddStyle(attrs element.StyleAttrs) *Builder[T] {
	return b.Add(element.Style(attrs))
}

// Add appends decl as-is.
func (b *Builder[T]) Add(decl element.Declaration) *Builder[T] {
	b.seq = append(b.seq, decl)
	return b
}

// AddAll appends every declaration in order.
func (b *Builder[T]) AddAll(decls ...element.Declaration) *Builder[T] {
	b.seq = append(b.seq, decls...)
	return b
}

// BaseURL returns the base URL recorded at construction. ok is false when no
// base URL was supplied.
func (b *Builder[T]) BaseURL() (string, bool) {
	return b.cfg.baseURL, b.cfg.baseURLSet
}

// Len reports how many declarations have been added.
func (b *Builder[T]) Len() int {
	return len(b.seq)
}

// Sequence returns a copy of the accumulated declarations.
func (b *Builder[T]) Sequence() element.Sequence {
	return b.seq.Clone()
}

// Build returns the current output. It can be called any number of times and
// never resets the builder.
func (b *Builder[T]) Build() T {
	seq := b.seq.Clone()
	if b.adapter != nil {
		return b.adapter.Transform(seq)
	}

	var out T
	switch target := any(&out).(type) {
	case *element.Sequence:
		*target = seq
	case *[]element.Declaration:
		*target = seq
	}
	return out
}
