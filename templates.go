package headtags

import (
	"io/fs"

	"github.com/goliatone/go-headtags/pkg/renderers/markup"
)

// EmbeddedTemplates exposes the built-in html renderer templates so callers
// can copy or override them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return markup.TemplatesFS()
}
