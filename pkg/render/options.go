package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the notice pipeline.
type RenderOptions struct {
	// Values overlays individual field values for this render only, taking
	// precedence over the notice's field set. Useful for fixture variants that
	// tweak a single date or amount.
	Values map[string]string
	// Theme carries a resolved go-theme renderer configuration. The HTML
	// renderer folds its CSS variables into the document's style block so the
	// statutory layout can be re-skinned without touching the templates.
	Theme *theme.RendererConfig
}
