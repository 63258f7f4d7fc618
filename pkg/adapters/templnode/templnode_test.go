package templnode_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-headtags/pkg/adapters/templnode"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
	"github.com/goliatone/go-headtags/pkg/testsupport"
)

func TestAdapter_MapsDeclarationsToKeyedNodes(t *testing.T) {
	seq := element.Sequence{
		element.Meta(element.MetaAttrs{Name: "description", Content: "x"}),
		element.Link(element.LinkAttrs{Rel: "canonical", Href: "/a"}),
		element.Meta(element.MetaAttrs{CharSet: "utf-8"}),
	}

	nodes := templnode.New().Transform(seq)

	if diff := cmp.Diff([]string{"head-meta-0", "head-link-1", "head-meta-2"}, nodes.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	wantProps := map[string]any{"name": "description", "content": "x", "key": "head-meta-0"}
	if diff := cmp.Diff(wantProps, nodes[0].Props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}
	if nodes[1].Type != element.KindLink {
		t.Fatalf("unexpected node type: %s", nodes[1].Type)
	}
	if _, ok := nodes[2].Attributes().(element.MetaAttrs); !ok {
		t.Fatalf("node lost its attributes: %#v", nodes[2].Attributes())
	}
}

func TestAdapter_CustomKeyFunc(t *testing.T) {
	adapter := templnode.New(templnode.WithKeyFunc(func(kind element.Kind, index int) string {
		return fmt.Sprintf("%s:%d", kind, index)
	}))
	nodes := adapter.Transform(element.Sequence{element.Style(element.StyleAttrs{})})
	if nodes[0].Key != "style:0" || nodes[0].Props["key"] != "style:0" {
		t.Fatalf("custom key not applied: %+v", nodes[0])
	}
}

func TestAdapter_DoesNotMutateAttributes(t *testing.T) {
	attrs := element.MetaAttrs{Name: "a", Extra: map[string]string{"data-x": "1"}}
	templnode.New().Transform(element.Sequence{element.Meta(attrs)})

	if _, ok := attrs.Extra["key"]; ok {
		t.Fatalf("key leaked into declaration extras")
	}
	if _, ok := attrs.Map()["key"]; ok {
		t.Fatalf("key leaked into declaration map")
	}
}

func TestAdapter_ExtrasCannotShadowFieldsOrKey(t *testing.T) {
	attrs := element.MetaAttrs{
		Name:    "a",
		Content: "c",
		Extra:   map[string]string{"key": "user", "name": "b", "data-x": "1"},
	}
	nodes := templnode.New().Transform(element.Sequence{element.Meta(attrs)})

	want := map[string]any{"name": "a", "content": "c", "data-x": "1", "key": "head-meta-0"}
	if diff := cmp.Diff(want, nodes[0].Props); diff != "" {
		t.Fatalf("props mismatch (-want +got):\n%s", diff)
	}

	rest := map[string]any{}
	for k, v := range nodes[0].Props {
		if k != templnode.KeyProp {
			rest[k] = v
		}
	}
	if diff := cmp.Diff(attrs.Map(), rest); diff != "" {
		t.Fatalf("non-key props differ from attributes (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err := nodes[0].Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(`<meta name="a" content="c" data-x="1">`, buf.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_RenderRejectsUnknownKind(t *testing.T) {
	forged := element.Declaration{Kind: element.Kind(`x><script>alert(1)</script`), Attributes: element.MetaAttrs{Name: "a"}}
	nodes := templnode.New().Transform(element.Sequence{forged})

	var buf bytes.Buffer
	err := nodes[0].Render(context.Background(), &buf)
	if !errors.Is(err, element.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

func TestNodes_ComponentRendersMarkup(t *testing.T) {
	b := head.NewWithAdapter[templnode.Nodes](templnode.New())
	b.AddMeta(element.MetaAttrs{CharSet: "utf-8"}).
		AddMeta(element.MetaAttrs{Name: "description", Content: "Docs & guides"}).
		AddScript(element.ScriptAttrs{Src: "/app.js", Defer: true}).
		AddStyle(element.StyleAttrs{Media: "print", Body: "nav { display: none; }"})

	var buf bytes.Buffer
	if err := b.Build().Component().Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<meta charset="utf-8">
<meta name="description" content="Docs &amp; guides">
<script src="/app.js" defer></script>
<style media="print">nav { display: none; }</style>`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_RenderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	nodes := templnode.New().Transform(element.Sequence{element.Meta(element.MetaAttrs{})})
	err := nodes.Component().Render(ctx, &bytes.Buffer{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAdapterProperties(t *testing.T) {
	properties := gopter.NewProperties(testsupport.PropertyParameters())
	adapter := templnode.New()

	properties.Property("one node per declaration with matching type and props", prop.ForAll(
		func(seq element.Sequence) bool {
			nodes := adapter.Transform(seq)
			if len(nodes) != len(seq) {
				return false
			}
			for i, node := range nodes {
				if node.Type != seq[i].Kind {
					return false
				}
				props := make(map[string]any, len(node.Props))
				for k, v := range node.Props {
					if k == templnode.KeyProp {
						continue
					}
					props[k] = v
				}
				if !cmp.Equal(seq[i].Attributes.Map(), props) {
					return false
				}
			}
			return true
		},
		testsupport.GenSequence(),
	))

	properties.Property("keys are pairwise distinct", prop.ForAll(
		func(seq element.Sequence) bool {
			seen := map[string]struct{}{}
			for _, key := range adapter.Transform(seq).Keys() {
				if _, dup := seen[key]; dup {
					return false
				}
				seen[key] = struct{}{}
			}
			return true
		},
		testsupport.GenSequence(),
	))

	properties.TestingRun(t)
}
