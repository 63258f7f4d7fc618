package element_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/testsupport"
)

func TestParseKind(t *testing.T) {
	kind, err := element.ParseKind("  Script ")
	if err != nil {
		t.Fatalf("parse kind: %v", err)
	}
	if kind != element.KindScript {
		t.Fatalf("unexpected kind: %s", kind)
	}

	if _, err := element.ParseKind("base"); !errors.Is(err, element.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestKinds_ReturnsCopy(t *testing.T) {
	kinds := element.Kinds()
	kinds[0] = "mutated"

	want := []element.Kind{element.KindMeta, element.KindLink, element.KindScript, element.KindStyle}
	if diff := cmp.Diff(want, element.Kinds()); diff != "" {
		t.Fatalf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestConstructors_DeriveKindFromAttributes(t *testing.T) {
	cases := []struct {
		decl element.Declaration
		want element.Kind
	}{
		{element.Meta(element.MetaAttrs{Name: "description"}), element.KindMeta},
		{element.Link(element.LinkAttrs{Rel: "canonical"}), element.KindLink},
		{element.Script(element.ScriptAttrs{Src: "/app.js"}), element.KindScript},
		{element.Style(element.StyleAttrs{Body: "body{}"}), element.KindStyle},
	}
	for _, tc := range cases {
		if tc.decl.Kind != tc.want {
			t.Fatalf("kind mismatch: want %s, got %s", tc.want, tc.decl.Kind)
		}
		if err := tc.decl.Validate(); err != nil {
			t.Fatalf("validate %s: %v", tc.want, err)
		}
	}

	if got := element.New(nil); got != (element.Declaration{}) {
		t.Fatalf("expected zero declaration for nil attributes, got %+v", got)
	}
}

func TestNarrowing_RequiresKindAndRecord(t *testing.T) {
	meta := element.Meta(element.MetaAttrs{Name: "robots", Content: "noindex"})
	attrs, ok := meta.AsMeta()
	if !ok || attrs.Content != "noindex" {
		t.Fatalf("expected meta narrowing, got %+v ok=%v", attrs, ok)
	}
	if _, ok := meta.AsLink(); ok {
		t.Fatalf("meta declaration narrowed to link")
	}

	forged := element.Declaration{Kind: element.KindLink, Attributes: element.MetaAttrs{Name: "x"}}
	if !forged.IsLink() {
		t.Fatalf("discriminant check should only look at kind")
	}
	if _, ok := forged.AsLink(); ok {
		t.Fatalf("mismatched payload must not narrow")
	}
	if err := forged.Validate(); !errors.Is(err, element.ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}

	unknown := element.Declaration{Kind: "base"}
	if err := unknown.Validate(); !errors.Is(err, element.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestAttributes_MapAndPairs(t *testing.T) {
	script := element.ScriptAttrs{
		Src:   "/app.js",
		Async: true,
		Body:  "ignored-in-pairs",
		Extra: map[string]string{"data-b": "2", "data-a": "1"},
	}

	wantMap := map[string]any{
		"src":    "/app.js",
		"async":  true,
		"body":   "ignored-in-pairs",
		"data-a": "1",
		"data-b": "2",
	}
	if diff := cmp.Diff(wantMap, script.Map()); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}

	wantPairs := []element.Attr{
		{Name: "src", Value: "/app.js"},
		{Name: "async", Boolean: true},
		{Name: "data-a", Value: "1"},
		{Name: "data-b", Value: "2"},
	}
	if diff := cmp.Diff(wantPairs, script.Pairs()); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}

	meta := element.MetaAttrs{CharSet: "utf-8", HTTPEquiv: "refresh", Content: "5"}
	wantMeta := []element.Attr{
		{Name: "charset", Value: "utf-8"},
		{Name: "http-equiv", Value: "refresh"},
		{Name: "content", Value: "5"},
	}
	if diff := cmp.Diff(wantMeta, meta.Pairs()); diff != "" {
		t.Fatalf("meta pairs mismatch (-want +got):\n%s", diff)
	}

	if got := element.InlineBody(element.StyleAttrs{Body: "p{}"}); got != "p{}" {
		t.Fatalf("inline body mismatch: %q", got)
	}
	if got := element.InlineBody(meta); got != "" {
		t.Fatalf("meta has no inline body, got %q", got)
	}
}

func TestAttributes_ExtrasNeverShadowTypedFields(t *testing.T) {
	meta := element.MetaAttrs{
		Name:    "a",
		Content: "c",
		Extra:   map[string]string{"key": "user", "name": "b", "CharSet": "latin1", "data-x": "1", "": "blank"},
	}

	wantMap := map[string]any{"name": "a", "content": "c", "data-x": "1"}
	if diff := cmp.Diff(wantMap, meta.Map()); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
	wantPairs := []element.Attr{
		{Name: "name", Value: "a"},
		{Name: "content", Value: "c"},
		{Name: "data-x", Value: "1"},
	}
	if diff := cmp.Diff(wantPairs, meta.Pairs()); diff != "" {
		t.Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "CharSet", "key", "name"}, element.DroppedExtras(meta)); diff != "" {
		t.Fatalf("dropped extras mismatch (-want +got):\n%s", diff)
	}

	script := element.ScriptAttrs{Body: "run()", Extra: map[string]string{"body": "x", "noModule": "1"}}
	if diff := cmp.Diff([]element.Attr(nil), script.Pairs()); diff != "" {
		t.Fatalf("script pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestExtraAllowed(t *testing.T) {
	cases := []struct {
		kind element.Kind
		name string
		want bool
	}{
		{element.KindMeta, "data-x", true},
		{element.KindMeta, "http-equiv", false},
		{element.KindMeta, "Key", false},
		{element.KindLink, "crossorigin", false},
		{element.KindLink, "nonce", true},
		{element.KindScript, "nonce", false},
		{element.KindStyle, "href", true},
		{element.KindStyle, "  ", false},
	}
	for _, tc := range cases {
		if got := element.ExtraAllowed(tc.kind, tc.name); got != tc.want {
			t.Errorf("ExtraAllowed(%s, %q) = %v, want %v", tc.kind, tc.name, got, tc.want)
		}
	}
}

func TestSequence_CloneIsIndependent(t *testing.T) {
	seq := element.Sequence{element.Meta(element.MetaAttrs{Name: "a"})}
	clone := seq.Clone()
	clone[0] = element.Link(element.LinkAttrs{Rel: "b"})

	if seq[0].Kind != element.KindMeta {
		t.Fatalf("clone shares backing array with source")
	}

	var empty element.Sequence
	if got := empty.Clone(); got == nil || got.Len() != 0 {
		t.Fatalf("expected empty non-nil clone, got %#v", got)
	}
}

func TestDeclaration_JSONRoundTripDispatchesOnKind(t *testing.T) {
	payload := `[
		{"kind": "meta", "attributes": {"name": "description", "content": "x"}},
		{"kind": "LINK", "attributes": {"rel": "canonical", "href": "/a"}},
		{"kind": "script", "attributes": {"src": "/app.js", "defer": true}},
		{"kind": "style"}
	]`

	var got element.Sequence
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := element.Sequence{
		element.Meta(element.MetaAttrs{Name: "description", Content: "x"}),
		element.Link(element.LinkAttrs{Rel: "canonical", Href: "/a"}),
		element.Script(element.ScriptAttrs{Src: "/app.js", Defer: true}),
		element.Style(element.StyleAttrs{}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	var decl element.Declaration
	err := json.Unmarshal([]byte(`{"kind": "base", "attributes": {}}`), &decl)
	if !errors.Is(err, element.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestDeclaration_FixtureMatchesSample(t *testing.T) {
	got := testsupport.MustLoadSequence(t, filepath.Join("testdata", "sample_sequence.json"))
	if diff := cmp.Diff(testsupport.SampleSequence(), got); diff != "" {
		t.Fatalf("fixture mismatch (-want +got):\n%s", diff)
	}

	if _, err := testsupport.LoadSequence(""); err == nil {
		t.Fatalf("expected error for empty fixture path")
	}
}

func TestDeclaration_YAMLDecode(t *testing.T) {
	doc := `
- kind: meta
  attributes:
    charSet: utf-8
- kind: link
  attributes:
    rel: icon
    href: /favicon.ico
    extra:
      data-theme: dark
`
	var got element.Sequence
	if err := yaml.Unmarshal([]byte(doc), &got); err != nil {
		t.Fatalf("unmarshal yaml: %v", err)
	}

	want := element.Sequence{
		element.Meta(element.MetaAttrs{CharSet: "utf-8"}),
		element.Link(element.LinkAttrs{Rel: "icon", Href: "/favicon.ico", Extra: map[string]string{"data-theme": "dark"}}),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sequence mismatch (-want +got):\n%s", diff)
	}

	var decl element.Declaration
	if err := yaml.Unmarshal([]byte("kind: title\n"), &decl); !errors.Is(err, element.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}
