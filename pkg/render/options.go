package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-projection/pkg/model"
)

// RenderOptions describe per-composition data renderers can use to customise
// their output without mutating the wrapper model. Everything here is owned by
// the caller; renderers only read it.
type RenderOptions struct {
	// Values binds data into value-bound markup: any content block or wrapper
	// segment containing template syntax is evaluated against this map.
	Values map[string]any

	// Templates holds the caller-owned TemplateRefs keyed by name. Content
	// blocks reference them by name; an unresolved reference renders nothing
	// for its slot.
	Templates map[string]model.TemplateRef

	// Collections supplies the identity-keyed item sequences driving repeated
	// materialization, keyed by TemplateRef name. The caller owns and may
	// mutate a sequence between renders; each render reads it fresh.
	Collections map[string][]model.Item

	// Theme carries renderer theming (tokens, CSS variables, partial
	// overrides) resolved by the host application.
	Theme *theme.RendererConfig

	// Sanitize runs projected content blocks through the shared content
	// policy before splicing. Wrapper chrome is never sanitized; it is owned
	// by the wrapper author.
	Sanitize bool
}

// ResolveTemplate looks up a TemplateRef by name.
func (o RenderOptions) ResolveTemplate(name string) (model.TemplateRef, bool) {
	if name == "" || len(o.Templates) == 0 {
		return model.TemplateRef{}, false
	}
	ref, ok := o.Templates[name]
	return ref, ok
}

// Items returns the sequence registered for the given TemplateRef name.
func (o RenderOptions) Items(name string) []model.Item {
	if len(o.Collections) == 0 {
		return nil
	}
	return o.Collections[name]
}
