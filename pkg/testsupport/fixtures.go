package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/goliatone/go-headtags/pkg/element"
)

// SampleSequence returns a small sequence touching every kind, in an
// interleaved order so regrouping is observable.
func SampleSequence() element.Sequence {
	return element.Sequence{
		element.Meta(element.MetaAttrs{CharSet: "utf-8"}),
		element.Meta(element.MetaAttrs{Name: "description", Content: "Docs & guides"}),
		element.Link(element.LinkAttrs{Rel: "canonical", Href: "/docs/intro"}),
		element.Script(element.ScriptAttrs{Src: "/assets/app.js", Defer: true}),
		element.Link(element.LinkAttrs{Rel: "stylesheet", Href: "https://cdn.example.com/site.css"}),
		element.Style(element.StyleAttrs{Body: ":root { --brand: #123456; }"}),
		element.Script(element.ScriptAttrs{Type: "application/ld+json", Body: `{"@type":"WebSite"}`}),
	}
}

// MustLoadSequence reads a JSON fixture holding an array of declarations.
func MustLoadSequence(t *testing.T, path string) element.Sequence {
	t.Helper()

	seq, err := LoadSequence(path)
	if err != nil {
		t.Fatalf("load sequence: %v", err)
	}
	return seq
}

// LoadSequence reads a JSON fixture into a Sequence, returning an error for
// callers managing setup outside of *testing.T.
func LoadSequence(path string) (element.Sequence, error) {
	if path == "" {
		return nil, errors.New("testsupport: sequence path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read sequence: %w", err)
	}
	var out element.Sequence
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal sequence: %w", err)
	}
	return out, nil
}

// SequenceFromCodes maps kind codes (modulo four) onto declarations whose
// attributes embed their position, so every generated declaration is
// distinguishable.
func SequenceFromCodes(codes []int) element.Sequence {
	seq := make(element.Sequence, 0, len(codes))
	for i, code := range codes {
		tag := fmt.Sprintf("v%d", i)
		switch ((code % 4) + 4) % 4 {
		case 0:
			seq = append(seq, element.Meta(element.MetaAttrs{Name: tag, Content: tag}))
		case 1:
			seq = append(seq, element.Link(element.LinkAttrs{Rel: "preload", Href: "/" + tag}))
		case 2:
			seq = append(seq, element.Script(element.ScriptAttrs{Src: "/" + tag + ".js", Async: i%2 == 0}))
		default:
			seq = append(seq, element.Style(element.StyleAttrs{Body: "." + tag + "{}"}))
		}
	}
	return seq
}

// GenSequence generates arbitrary declaration sequences for property tests.
func GenSequence() gopter.Gen {
	return gen.SliceOf(gen.IntRange(0, 3)).Map(func(codes []int) element.Sequence {
		return SequenceFromCodes(codes)
	})
}

// PropertyParameters returns deterministic gopter parameters.
func PropertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100
	return parameters
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
