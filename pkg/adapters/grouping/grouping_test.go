package grouping_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"

	"github.com/goliatone/go-headtags/pkg/adapters/grouping"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/head"
	"github.com/goliatone/go-headtags/pkg/testsupport"
)

func TestAdapter_GroupsByKind(t *testing.T) {
	seq := element.Sequence{
		element.Meta(element.MetaAttrs{Name: "description", Content: "x"}),
		element.Link(element.LinkAttrs{Rel: "canonical", Href: "/a"}),
		element.Meta(element.MetaAttrs{CharSet: "utf-8"}),
	}

	got := grouping.New().Transform(seq)
	want := grouping.Groups{
		Meta: []element.MetaAttrs{
			{Name: "description", Content: "x"},
			{CharSet: "utf-8"},
		},
		Links:   []element.LinkAttrs{{Rel: "canonical", Href: "/a"}},
		Scripts: []element.ScriptAttrs{},
		Styles:  []element.StyleAttrs{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestAdapter_EmptyInputKeepsAllBuckets(t *testing.T) {
	got := grouping.Group(nil)

	payload, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"meta":[],"links":[],"scripts":[],"styles":[]}`
	if string(payload) != want {
		t.Fatalf("unexpected payload:\nwant %s\ngot  %s", want, payload)
	}
}

func TestAdapter_SkipsUnmatchedDeclarations(t *testing.T) {
	seq := element.Sequence{
		element.Meta(element.MetaAttrs{Name: "kept"}),
		{Kind: "base", Attributes: element.LinkAttrs{Href: "/"}},
		{Kind: element.KindScript, Attributes: element.StyleAttrs{Body: "mismatched"}},
		element.Style(element.StyleAttrs{Body: "kept"}),
	}

	var skipped []int
	adapter := grouping.New(grouping.WithSkipHandler(func(index int, _ element.Declaration) {
		skipped = append(skipped, index)
	}))
	got := adapter.Transform(seq)

	if got.Len() != 2 {
		t.Fatalf("expected two grouped records, got %d", got.Len())
	}
	if diff := cmp.Diff([]int{1, 2}, skipped); diff != "" {
		t.Fatalf("skipped indexes mismatch (-want +got):\n%s", diff)
	}

	if quiet := grouping.Group(seq); quiet.Len() != 2 {
		t.Fatalf("adapter without handler should skip silently, got %d records", quiet.Len())
	}
}

func TestAdapter_SampleGolden(t *testing.T) {
	got := grouping.Group(testsupport.SampleSequence())

	golden := filepath.Join("testdata", "sample.golden.json")
	testsupport.WriteGolden(t, golden, got)

	var want grouping.Groups
	if err := json.Unmarshal(testsupport.MustReadGolden(t, golden), &want); err != nil {
		t.Fatalf("decode golden: %v", err)
	}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestAdapter_PluggedIntoBuilder(t *testing.T) {
	b := head.NewWithAdapter[grouping.Groups](grouping.New())
	b.AddScript(element.ScriptAttrs{Src: "/a.js"}).
		AddLink(element.LinkAttrs{Rel: "preload", Href: "/font.woff2", As: "font"}).
		AddScript(element.ScriptAttrs{Src: "/b.js"})

	got := b.Build()
	wantScripts := []element.ScriptAttrs{{Src: "/a.js"}, {Src: "/b.js"}}
	if diff := cmp.Diff(wantScripts, got.Scripts); diff != "" {
		t.Fatalf("scripts mismatch (-want +got):\n%s", diff)
	}
	if len(got.Links) != 1 || got.Links[0].As != "font" {
		t.Fatalf("unexpected links: %+v", got.Links)
	}
}

func TestAdapterProperties(t *testing.T) {
	properties := gopter.NewProperties(testsupport.PropertyParameters())

	properties.Property("bucket sizes sum to input length", prop.ForAll(
		func(seq element.Sequence) bool {
			return grouping.Group(seq).Len() == seq.Len()
		},
		testsupport.GenSequence(),
	))

	properties.Property("buckets preserve per-kind order", prop.ForAll(
		func(seq element.Sequence) bool {
			var meta []element.MetaAttrs
			var links []element.LinkAttrs
			var scripts []element.ScriptAttrs
			var styles []element.StyleAttrs
			for _, decl := range seq {
				if attrs, ok := decl.AsMeta(); ok {
					meta = append(meta, attrs)
				}
				if attrs, ok := decl.AsLink(); ok {
					links = append(links, attrs)
				}
				if attrs, ok := decl.AsScript(); ok {
					scripts = append(scripts, attrs)
				}
				if attrs, ok := decl.AsStyle(); ok {
					styles = append(styles, attrs)
				}
			}

			got := grouping.Group(seq)
			return equalBucket(meta, got.Meta) &&
				equalBucket(links, got.Links) &&
				equalBucket(scripts, got.Scripts) &&
				equalBucket(styles, got.Styles)
		},
		testsupport.GenSequence(),
	))

	properties.TestingRun(t)
}

func equalBucket[T any](want, got []T) bool {
	if len(want) == 0 {
		return len(got) == 0
	}
	return cmp.Equal(want, got)
}
