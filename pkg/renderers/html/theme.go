package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeStyle folds a resolved theme's CSS variables into a :root block that
// the notice template appends to its inline stylesheet. Keys are sorted so
// output stays byte-stable between runs.
func themeStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
