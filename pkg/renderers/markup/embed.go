package markup

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded head template so callers can copy or
// extend it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
