package template

import (
	"io"
)

// TemplateRenderer is the template engine contract. Markup renderers depend on this seam rather than on a concrete
// engine so callers can inject their own.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
