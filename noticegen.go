package noticegen

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-noticegen/pkg/convert"
	"github.com/goliatone/go-noticegen/pkg/notice"
	"github.com/goliatone/go-noticegen/pkg/orchestrator"
	"github.com/goliatone/go-noticegen/pkg/render"
)

// Kind re-exports the statutory form identifiers via the root package for
// convenience.
type Kind = notice.Kind

const (
	KindSection8  = notice.KindSection8
	KindSection21 = notice.KindSection21
)

// FieldSet names the string values substituted into a notice template.
type FieldSet = notice.FieldSet

// RenderOptions describes per-request overrides that renderers can use to
// replace field values or apply a theme.
type RenderOptions = render.RenderOptions

// Report summarises a fixture run: one verified artifact per form × format.
type Report = orchestrator.Report

// FixtureRequest configures a fixture run for GenerateFixtures.
type FixtureRequest = orchestrator.FixtureRequest

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the named statutory form with the built-in sample
// dataset (or the field set configured through options) and returns the
// complete HTML document. It is the simplest entry point for callers that
// just want the rendered notice.
func GenerateHTML(ctx context.Context, kind Kind, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Kind: kind})
}

// GenerateFixtures runs the full pipeline: render every form, convert each to
// ODT and PDF under outputDir, and verify the four artifacts.
func GenerateFixtures(ctx context.Context, outputDir string, options ...orchestrator.Option) (Report, error) {
	gen := orchestrator.New(options...)
	return gen.GenerateFixtures(ctx, orchestrator.FixtureRequest{OutputDir: outputDir})
}

// WithFields replaces the sample dataset for the constructed orchestrator.
func WithFields(fields FieldSet) orchestrator.Option {
	return orchestrator.WithFields(fields)
}

// WithConverter injects a configured document converter.
func WithConverter(converter *convert.Converter) orchestrator.Option {
	return orchestrator.WithConverter(converter)
}

// WithTheme applies a resolved go-theme renderer configuration to every
// generated notice.
func WithTheme(cfg *theme.RendererConfig) orchestrator.Option {
	return orchestrator.WithTheme(cfg)
}
