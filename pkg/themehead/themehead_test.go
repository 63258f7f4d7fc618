package themehead_test

import (
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-headtags/pkg/adapters/grouping"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
	"github.com/goliatone/go-headtags/pkg/themehead"
)

func sampleConfig() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   "acme",
		Variant: "dark",
		Tokens:  map[string]string{"brand": "#0055ff"},
		CSSVars: map[string]string{
			"--surface": "#111",
			"--accent":  "#0055ff",
		},
		AssetURL: func(key string) string {
			switch key {
			case "stylesheet":
				return "/themes/acme/dark.css"
			case "print":
				return "/themes/acme/print.css"
			default:
				return ""
			}
		},
	}
}

func TestDeclarations(t *testing.T) {
	got := themehead.Declarations(sampleConfig())
	want := element.Sequence{
		element.Meta(element.MetaAttrs{Name: "theme-color", Content: "#0055ff"}),
		element.Link(element.LinkAttrs{Rel: "stylesheet", Href: "/themes/acme/dark.css"}),
		element.Style(element.StyleAttrs{Body: ":root {\n--accent: #0055ff;\n--surface: #111;\n}"}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarations_Options(t *testing.T) {
	cfg := sampleConfig()
	cfg.Tokens["theme-color"] = "#ff0000"

	got := themehead.Declarations(cfg,
		themehead.WithAssets("stylesheet", "missing", "print"),
		themehead.WithNonce("abc"),
	)
	want := element.Sequence{
		element.Meta(element.MetaAttrs{Name: "theme-color", Content: "#ff0000"}),
		element.Link(element.LinkAttrs{Rel: "stylesheet", Href: "/themes/acme/dark.css"}),
		element.Link(element.LinkAttrs{Rel: "stylesheet", Href: "/themes/acme/print.css"}),
		element.Style(element.StyleAttrs{Body: ":root {\n--accent: #0055ff;\n--surface: #111;\n}", Nonce: "abc"}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("declarations mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclarations_Sparse(t *testing.T) {
	if got := themehead.Declarations(nil); got == nil || got.Len() != 0 {
		t.Fatalf("expected empty non-nil sequence for nil config, got %#v", got)
	}
	got := themehead.Declarations(&theme.RendererConfig{Theme: "bare"})
	if got.Len() != 0 {
		t.Fatalf("expected no declarations for bare config, got %v", got.Kinds())
	}
}

func TestApply(t *testing.T) {
	b := head.NewWithAdapter[grouping.Groups](grouping.New())
	b.AddMeta(element.MetaAttrs{CharSet: "utf-8"})

	if themehead.Apply(b, sampleConfig()) != b {
		t.Fatalf("expected Apply to return the same builder")
	}

	groups := b.Build()
	if len(groups.Meta) != 2 || len(groups.Links) != 1 || len(groups.Styles) != 1 {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if groups.Meta[1].Content != "#0055ff" {
		t.Fatalf("expected theme color meta second, got %+v", groups.Meta[1])
	}
}
