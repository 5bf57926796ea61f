package html

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded statutory form templates for consumers
// that want to extend or restyle the built-in notices.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
