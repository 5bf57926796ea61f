// Package template defines the rendering engine seam used by the notice
// renderers. The gotemplate subpackage provides the default pongo2-backed
// implementation.
package template
