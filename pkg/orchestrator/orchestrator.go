package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-noticegen/pkg/convert"
	"github.com/goliatone/go-noticegen/pkg/notice"
	"github.com/goliatone/go-noticegen/pkg/render"
	"github.com/goliatone/go-noticegen/pkg/renderers/html"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithConverter injects a configured document converter.
func WithConverter(converter *convert.Converter) Option {
	return func(o *Orchestrator) {
		o.converter = converter
	}
}

// WithFields replaces the built-in sample dataset as the base field set for
// every generated notice.
func WithFields(fields notice.FieldSet) Option {
	return func(o *Orchestrator) {
		if fields != nil {
			o.fields = fields
		}
	}
}

// WithTheme applies a resolved go-theme renderer configuration to every
// request that does not carry its own.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(o *Orchestrator) {
		o.theme = cfg
	}
}

// WithLogger attaches a structured logger used for pipeline progress and
// conversion diagnostics. The default is a nop logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// Orchestrator coordinates the full pipeline from field set to rendered
// notice and converted fixture artifacts. It applies sensible defaults (html
// renderer, sample dataset, soffice converter) while remaining open to
// dependency injection for advanced callers.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	converter       *convert.Converter
	fields          notice.FieldSet
	theme           *theme.RendererConfig
	log             *zap.SugaredLogger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a single notice.
type Request struct {
	// Kind selects which statutory form to render.
	Kind notice.Kind

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as field value
	// overrides or a theme configuration. When omitted, renderers receive the
	// zero-value struct (with the orchestrator's default theme, if any).
	RenderOptions render.RenderOptions
}

// Generate executes the definition lookup → validation → renderer sequence
// and returns the rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if req.Kind == "" {
		return nil, errors.New("orchestrator: form kind is required")
	}

	def, err := notice.DefinitionFor(req.Kind)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve form: %w", err)
	}

	fields := o.fields.Merge(req.RenderOptions.Values)
	if err := def.Validate(fields); err != nil {
		return nil, fmt.Errorf("orchestrator: validate fields: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		options.Theme = o.theme
	}

	output, err := renderer.Render(ctx, notice.Notice{Definition: def, Fields: fields}, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render notice: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

// FixtureRequest describes a fixture-generation run: which forms, which
// formats, and where the artifacts land.
type FixtureRequest struct {
	// OutputDir receives the generated artifacts; created when absent.
	OutputDir string

	// Kinds restricts the run to specific forms. Empty means all forms.
	Kinds []notice.Kind

	// Formats restricts the conversion targets. Empty means ODT then PDF,
	// matching the fixture layout.
	Formats []convert.Format

	// Renderer and RenderOptions are forwarded to Generate per form.
	Renderer      string
	RenderOptions render.RenderOptions
}

// GenerateFixtures renders every requested form once, converts it to each
// requested format, then verifies the artifacts on disk. Conversion failures
// are logged and reflected in the report rather than aborting the run, so a
// single broken conversion still leaves the remaining artifacts in place.
func (o *Orchestrator) GenerateFixtures(ctx context.Context, req FixtureRequest) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("orchestrator: context is required")
	}
	if req.OutputDir == "" {
		return Report{}, errors.New("orchestrator: output directory is required")
	}
	if err := o.initialiseErr; err != nil {
		return Report{}, err
	}
	if o.converter == nil {
		return Report{}, errors.New("orchestrator: converter is nil")
	}

	kinds := req.Kinds
	if len(kinds) == 0 {
		for _, def := range notice.Definitions() {
			kinds = append(kinds, def.Kind)
		}
	}
	formats := req.Formats
	if len(formats) == 0 {
		formats = []convert.Format{convert.FormatODT, convert.FormatPDF}
	}

	report := Report{OutputDir: req.OutputDir}

	for _, kind := range kinds {
		def, err := notice.DefinitionFor(kind)
		if err != nil {
			return Report{}, fmt.Errorf("orchestrator: resolve form: %w", err)
		}

		o.log.Infow("generating notice fixtures", "form", string(kind), "summary", def.Summary)

		output, err := o.Generate(ctx, Request{
			Kind:          kind,
			Renderer:      req.Renderer,
			RenderOptions: req.RenderOptions,
		})
		if err != nil {
			return Report{}, err
		}

		for _, format := range formats {
			path := filepath.Join(req.OutputDir, def.OutputBase+"."+string(format))
			if err := o.converter.Convert(ctx, output, path); err != nil {
				o.log.Warnw("conversion failed", "form", string(kind), "format", string(format), "error", err)
			}
			report.Artifacts = append(report.Artifacts, inspectArtifact(kind, format, path))
		}
	}

	if missing := report.Missing(); len(missing) > 0 {
		o.log.Warnw("fixture run incomplete", "missing", missing)
	} else {
		o.log.Infow("fixture run complete", "artifacts", len(report.Artifacts), "dir", req.OutputDir)
	}

	return report, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.log == nil {
		o.log = zap.NewNop().Sugar()
	}
	if o.fields == nil {
		o.fields = notice.SampleFields()
	}
	if o.converter == nil {
		o.converter = convert.New(convert.WithLogger(o.log))
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
