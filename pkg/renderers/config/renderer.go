package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-headtags/pkg/adapters/grouping"
	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/render"
)

const (
	JSONName = "json"
	YAMLName = "yaml"

	defaultIndent = "  "
)

type encoder func(groups grouping.Groups, indent string) ([]byte, error)

// Renderer serialises the grouped head configuration (meta, links, scripts,
// styles) as a structured document.
type Renderer struct {
	name        string
	contentType string
	adapter     grouping.Adapter
	encode      encoder
}

var _ render.Renderer = (*Renderer)(nil)

// NewJSON returns a renderer producing indented JSON.
func NewJSON(options ...grouping.Option) *Renderer {
	return &Renderer{
		name:        JSONName,
		contentType: "application/json",
		adapter:     grouping.New(options...),
		encode:      encodeJSON,
	}
}

// NewYAML returns a renderer producing a YAML document.
func NewYAML(options ...grouping.Option) *Renderer {
	return &Renderer{
		name:        YAMLName,
		contentType: "application/yaml",
		adapter:     grouping.New(options...),
		encode:      encodeYAML,
	}
}

func (r *Renderer) Name() string {
	return r.name
}

func (r *Renderer) ContentType() string {
	return r.contentType
}

// Render groups seq and encodes the result. options.Indent overrides the
// default two-space indent.
func (r *Renderer) Render(ctx context.Context, seq element.Sequence, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prepared, err := render.Prepare(seq, options)
	if err != nil {
		return nil, fmt.Errorf("%s renderer: %w", r.name, err)
	}

	indent := options.Indent
	if indent == "" {
		indent = defaultIndent
	}
	out, err := r.encode(r.adapter.Transform(prepared), indent)
	if err != nil {
		return nil, fmt.Errorf("%s renderer: encode: %w", r.name, err)
	}
	return out, nil
}

func encodeJSON(groups grouping.Groups, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(groups); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeYAML(groups grouping.Groups, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(len(indent))
	if err := enc.Encode(groups); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
