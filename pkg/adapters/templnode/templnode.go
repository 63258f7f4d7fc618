package templnode

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
)

// KeyProp is the property name carrying the node identity key. Extra
// attributes under this name never reach Props.
const KeyProp = element.ReservedKey

// KeyFunc derives the identity key for the declaration at index.
type KeyFunc func(kind element.Kind, index int) string

// DefaultKey returns keys shaped "head-{kind}-{index}".
func DefaultKey(kind element.Kind, index int) string {
	return fmt.Sprintf("head-%s-%d", kind, index)
}

// Node is one head element ready to render. Props holds the declaration
// properties plus KeyProp.
type Node struct {
	Type  element.Kind
	Key   string
	Props map[string]any

	attrs element.Attributes
}

var _ templ.Component = Node{}

// Attributes returns the declaration attributes the node was built from.
func (n Node) Attributes() element.Attributes {
	return n.attrs
}

// Render writes the node as a single head tag. Attribute values are escaped;
// inline script and style bodies are written verbatim. Nodes whose Type is not
// one of the four head kinds are rejected without writing.
func (n Node) Render(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !n.Type.Valid() {
		return fmt.Errorf("templnode: %w: %q", element.ErrUnknownKind, string(n.Type))
	}

	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(string(n.Type))
	if n.attrs != nil {
		for _, attr := range n.attrs.Pairs() {
			b.WriteByte(' ')
			b.WriteString(templ.EscapeString(attr.Name))
			if attr.Boolean {
				continue
			}
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(attr.Value))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')

	switch n.Type {
	case element.KindScript, element.KindStyle:
		b.WriteString(element.InlineBody(n.attrs))
		b.WriteString("</")
		b.WriteString(string(n.Type))
		b.WriteByte('>')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Nodes is the ordered output of the adapter.
type Nodes []Node

// Component renders every node in order, one per line.
func (ns Nodes) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, node := range ns {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := node.Render(ctx, w); err != nil {
				return fmt.Errorf("templnode: render %s: %w", node.Key, err)
			}
		}
		return nil
	})
}

// Keys returns the identity key of every node, in order.
func (ns Nodes) Keys() []string {
	keys := make([]string, len(ns))
	for i, node := range ns {
		keys[i] = node.Key
	}
	return keys
}

// Option customises the adapter.
type Option func(*Adapter)

// WithKeyFunc overrides how identity keys are derived. Custom functions must
// keep keys distinct across one sequence.
func WithKeyFunc(fn KeyFunc) Option {
	return func(a *Adapter) {
		if fn != nil {
			a.key = fn
		}
	}
}

// Adapter maps declarations 1:1 onto templ nodes.
type Adapter struct {
	key KeyFunc
}

var _ head.Adapter[Nodes] = Adapter{}

// New constructs an Adapter applying any provided options.
func New(options ...Option) Adapter {
	a := Adapter{key: DefaultKey}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&a)
	}
	return a
}

// Transform produces one node per declaration, same order and length.
func (a Adapter) Transform(seq element.Sequence) Nodes {
	key := a.key
	if key == nil {
		key = DefaultKey
	}

	out := make(Nodes, len(seq))
	for i, decl := range seq {
		props := map[string]any{}
		if decl.Attributes != nil {
			props = decl.Attributes.Map()
		}
		k := key(decl.Kind, i)
		props[KeyProp] = k

		out[i] = Node{
			Type:  decl.Kind,
			Key:   k,
			Props: props,
			attrs: decl.Attributes,
		}
	}
	return out
}
