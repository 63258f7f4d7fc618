package headtags_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	headtags "github.com/goliatone/go-headtags"
	"github.com/goliatone/go-headtags/pkg/renderers/markup"
	"github.com/goliatone/go-headtags/pkg/testsupport"
)

func TestNewRegistryRegistersBuiltins(t *testing.T) {
	registry, err := headtags.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "json", "templ", "yaml"}, registry.List()); diff != "" {
		t.Fatalf("renderer names mismatch (-want +got):\n%s", diff)
	}
	if got := registry.Default(); got != "html" {
		t.Fatalf("expected html default, got %q", got)
	}
}

func TestRenderDefaultsToHTML(t *testing.T) {
	seq := headtags.New().
		AddMeta(headtags.MetaAttrs{CharSet: "utf-8"}).
		AddLink(headtags.LinkAttrs{Rel: "icon", Href: "/favicon.ico"}).
		Build()

	out, err := headtags.Render(context.Background(), seq, "", headtags.RenderOptions{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "<meta charset=\"utf-8\">\n<link rel=\"icon\" href=\"/favicon.ico\">\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderersAgreeOnMarkup(t *testing.T) {
	seq := testsupport.SampleSequence()
	html, err := headtags.Render(testsupport.Context(), seq, "html", headtags.RenderOptions{})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	templOut, err := headtags.Render(testsupport.Context(), seq, "TEMPL", headtags.RenderOptions{})
	if err != nil {
		t.Fatalf("render templ: %v", err)
	}
	if diff := cmp.Diff(string(html), string(templOut)); diff != "" {
		t.Fatalf("html and templ output differ (-html +templ):\n%s", diff)
	}
}

func TestRenderUnknownRenderer(t *testing.T) {
	_, err := headtags.Render(context.Background(), nil, "pdf", headtags.RenderOptions{})
	if err == nil || !strings.Contains(err.Error(), `"pdf" not found`) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestGroupedAndNodeBuilders(t *testing.T) {
	groups := headtags.NewGrouped(headtags.WithBaseURL("https://example.com")).
		AddAll(testsupport.SampleSequence()...).
		Build()
	if len(groups.Meta) != 2 || len(groups.Links) != 2 || len(groups.Scripts) != 2 || len(groups.Styles) != 1 {
		t.Fatalf("unexpected grouping: %+v", groups)
	}

	nodes := headtags.NewNodes().AddAll(testsupport.SampleSequence()...).Build()
	if len(nodes) != 7 {
		t.Fatalf("expected 7 nodes, got %d", len(nodes))
	}
}

func TestStrictRegistry(t *testing.T) {
	registry, err := headtags.NewRegistry(markup.WithStrictText())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	seq := headtags.New().
		AddMeta(headtags.MetaAttrs{Name: "description", Content: "<b>Bold</b> claims"}).
		Build()
	out, contentType, err := registry.Render(context.Background(), "", seq, headtags.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if contentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if want := "<meta name=\"description\" content=\"Bold claims\">\n"; string(out) != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(headtags.EmbeddedTemplates(), "templates/head.tmpl")
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), "tag.attrs") {
		t.Fatalf("unexpected template contents")
	}
}
