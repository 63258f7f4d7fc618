package resolve

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
)

// ErrRelativeBase is returned when the base URL is not absolute.
var ErrRelativeBase = errors.New("resolve: base url must be absolute")

// Adapter rewrites relative link hrefs and script srcs against a base URL.
// It returns a new sequence and never mutates its input.
type Adapter struct {
	base *url.URL
}

var _ head.Adapter[element.Sequence] = (*Adapter)(nil)

// New parses base and returns an adapter resolving against it.
func New(base string) (*Adapter, error) {
	parsed, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, fmt.Errorf("resolve: parse base url: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrRelativeBase, base)
	}
	return &Adapter{base: parsed}, nil
}

// Base returns the parsed base URL as a string.
func (a *Adapter) Base() string {
	return a.base.String()
}

// Transform returns a copy of seq with relative URLs resolved.
func (a *Adapter) Transform(seq element.Sequence) element.Sequence {
	out := seq.Clone()
	for i, decl := range out {
		if attrs, ok := decl.AsLink(); ok {
			attrs.Href = a.Resolve(attrs.Href)
			out[i] = element.Link(attrs)
			continue
		}
		if attrs, ok := decl.AsScript(); ok {
			attrs.Src = a.Resolve(attrs.Src)
			out[i] = element.Script(attrs)
		}
	}
	return out
}

// Resolve resolves a single reference. Empty, absolute, protocol-relative,
// fragment-only and unparsable values are returned unchanged.
func (a *Adapter) Resolve(ref string) string {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "#") {
		return ref
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.IsAbs() {
		return ref
	}
	return a.base.ResolveReference(parsed).String()
}

// Sequence resolves seq against base in one call.
func Sequence(base string, seq element.Sequence) (element.Sequence, error) {
	adapter, err := New(base)
	if err != nil {
		return nil, err
	}
	return adapter.Transform(seq), nil
}
