package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-noticegen/pkg/notice"
	"github.com/goliatone/go-noticegen/pkg/render"
	rendertemplate "github.com/goliatone/go-noticegen/pkg/render/template"
	gotemplate "github.com/goliatone/go-noticegen/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
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

// Renderer produces the complete HTML document for a statutory notice. The
// output is self-contained (inline styles, no external assets) so the
// document converter can consume it from a single temp file.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the HTML renderer applying any provided options.
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

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render substitutes the notice's field values into its form template. Field
// overrides from the options are merged first and the form's free-text fields
// are sanitised, so the output only ever embeds cleaned values.
func (r *Renderer) Render(_ context.Context, n notice.Notice, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	name, err := templateFor(n.Definition.Kind)
	if err != nil {
		return nil, err
	}

	fields := n.Fields.Merge(options.Values)
	fields = notice.CleanFields(n.Definition, fields)

	result, err := r.templates.RenderTemplate(name, map[string]any{
		"form": map[string]any{
			"form_number": n.Definition.FormNumber,
			"statute":     n.Definition.Statute,
			"summary":     n.Definition.Summary,
		},
		"fields":    fieldContext(fields),
		"theme_css": themeStyle(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func templateFor(kind notice.Kind) (string, error) {
	switch kind {
	case notice.KindSection8:
		return "templates/form3.tmpl", nil
	case notice.KindSection21:
		return "templates/form6a.tmpl", nil
	default:
		return "", fmt.Errorf("html renderer: no template for form kind %q", kind)
	}
}

func fieldContext(fields notice.FieldSet) map[string]any {
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		out[name] = value
	}
	return out
}
