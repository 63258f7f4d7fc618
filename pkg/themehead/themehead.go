package themehead

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
)

const (
	// ThemeColorToken is the token consulted for the theme-color meta.
	ThemeColorToken = "theme-color"
	// BrandToken is used when ThemeColorToken is not set.
	BrandToken = "brand"
	// DefaultStylesheetKey is the asset key resolved when no WithAssets option
	// is given.
	DefaultStylesheetKey = "stylesheet"
)

// Option customises Declarations.
type Option func(*options)

type options struct {
	assets []string
	nonce  string
}

// WithAssets replaces the asset keys resolved into stylesheet links. Keys are
// resolved in the order given.
func WithAssets(keys ...string) Option {
	return func(o *options) {
		o.assets = append([]string(nil), keys...)
	}
}

// WithNonce sets a CSP nonce on the generated style block.
func WithNonce(nonce string) Option {
	return func(o *options) {
		o.nonce = strings.TrimSpace(nonce)
	}
}

// Declarations derives head declarations from a theme renderer config.
// A nil cfg yields an empty sequence.
func Declarations(cfg *theme.RendererConfig, opts ...Option) element.Sequence {
	seq := element.Sequence{}
	if cfg == nil {
		return seq
	}

	o := options{assets: []string{DefaultStylesheetKey}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	if color := themeColor(cfg.Tokens); color != "" {
		seq = append(seq, element.Meta(element.MetaAttrs{Name: "theme-color", Content: color}))
	}

	if cfg.AssetURL != nil {
		for _, key := range o.assets {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			href := strings.TrimSpace(cfg.AssetURL(key))
			if href == "" {
				continue
			}
			seq = append(seq, element.Link(element.LinkAttrs{Rel: "stylesheet", Href: href}))
		}
	}

	if body := cssVarsStyle(cfg.CSSVars); body != "" {
		seq = append(seq, element.Style(element.StyleAttrs{Body: body, Nonce: o.nonce}))
	}
	return seq
}

// Apply appends the theme declarations to b and returns it.
func Apply[T any](b *head.Builder[T], cfg *theme.RendererConfig, opts ...Option) *head.Builder[T] {
	return b.AddAll(Declarations(cfg, opts...)...)
}

func themeColor(tokens map[string]string) string {
	if color := strings.TrimSpace(tokens[ThemeColorToken]); color != "" {
		return color
	}
	return strings.TrimSpace(tokens[BrandToken])
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
