package markup

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-headtags/pkg/element"
	"github.com/goliatone/go-headtags/pkg/render"
	rendertemplate "github.com/goliatone/go-headtags/pkg/render/template"
	gotemplate "github.com/goliatone/go-headtags/pkg/render/template/gotemplate"
)

const (
	// Name identifies the renderer inside a registry.
	Name = "html"

	templateName = "templates/head.tmpl"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	strictText       bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must contain templates/head.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStrictText strips markup from meta content and link titles before
// rendering.
func WithStrictText() Option {
	return func(cfg *config) {
		cfg.strictText = true
	}
}

// Renderer serialises a sequence into head markup, one tag per line.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	strictText bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the markup renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	templates := cfg.templateRenderer
	if templates == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("markup renderer: template %q not found: %w", templateName, err)
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("markup renderer: configure template renderer: %w", err)
		}
		templates = engine
	}

	return &Renderer{templates: templates, strictText: cfg.strictText}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the head markup for seq.
func (r *Renderer) Render(ctx context.Context, seq element.Sequence, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("markup renderer: template renderer is nil")
	}

	prepared, err := render.Prepare(seq, options)
	if err != nil {
		return nil, fmt.Errorf("markup renderer: %w", err)
	}

	tags := make([]map[string]any, 0, len(prepared))
	for _, decl := range prepared {
		if decl.Validate() != nil {
			continue
		}
		tags = append(tags, r.tagData(decl))
	}

	result, err := r.templates.RenderTemplate(templateName, map[string]any{
		"tags":   tags,
		"indent": options.Indent,
	})
	if err != nil {
		return nil, fmt.Errorf("markup renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) tagData(decl element.Declaration) map[string]any {
	attrs := decl.Attributes
	if r.strictText {
		attrs = sanitizeText(decl)
	}

	pairs := attrs.Pairs()
	data := make([]map[string]any, len(pairs))
	for i, pair := range pairs {
		data[i] = map[string]any{
			"name":    pair.Name,
			"value":   pair.Value,
			"boolean": pair.Boolean,
		}
	}

	return map[string]any{
		"name":  string(decl.Kind),
		"attrs": data,
		"body":  element.InlineBody(attrs),
		"void":  decl.Kind == element.KindMeta || decl.Kind == element.KindLink,
	}
}

func sanitizeText(decl element.Declaration) element.Attributes {
	if meta, ok := decl.AsMeta(); ok {
		meta.Content = plainText(meta.Content)
		return meta
	}
	if link, ok := decl.AsLink(); ok {
		link.Title = plainText(link.Title)
		return link
	}
	return decl.Attributes
}
