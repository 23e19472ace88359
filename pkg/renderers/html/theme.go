package html

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// themeContext is the shape exposed to templates under the "theme" key.
type themeContext struct {
	Name    string            `json:"name,omitempty"`
	Variant string            `json:"variant,omitempty"`
	Tokens  map[string]string `json:"tokens,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

func buildThemeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return nil
	}
	ctx := themeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
		CSSVars: copyStringMap(cfg.CSSVars),
	}
	return map[string]any{
		"name":    ctx.Name,
		"variant": ctx.Variant,
		"tokens":  ctx.Tokens,
		"cssVars": ctx.CSSVars,
	}
}

// themeStyleBlock emits the theme's CSS custom properties as a :root style
// block preceding the wrapper output, so projected content and chrome share
// the same variables.
func themeStyleBlock(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<style>:root {")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";")
	}
	b.WriteString("}</style>")
	return b.String()
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
