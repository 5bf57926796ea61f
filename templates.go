package noticegen

import (
	"io/fs"

	html "github.com/goliatone/go-noticegen/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in statutory form templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
