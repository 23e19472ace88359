package html

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-projection/pkg/model"
	"github.com/goliatone/go-projection/pkg/render"
	rendertemplate "github.com/goliatone/go-projection/pkg/render/template"
	gotemplate "github.com/goliatone/go-projection/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateRenderer rendertemplate.TemplateRenderer
	slotChrome       bool
	sanitizer        func(string) string
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSlotChrome wraps each slot's output in a marker element carrying the
// slot class and a data-slot attribute. Off by default so the wrapper's
// authored markup stays the only chrome.
func WithSlotChrome() Option {
	return func(cfg *config) {
		cfg.slotChrome = true
	}
}

// WithSanitizer overrides the content sanitizer applied when
// RenderOptions.Sanitize is set.
func WithSanitizer(fn func(string) string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.sanitizer = fn
		}
	}
}

// Renderer splices bound content into a wrapper's segment stream, producing
// HTML. Slots render in declaration order; static markup and fallback content
// pass through verbatim unless they contain template syntax, in which case
// they are evaluated against the render values.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	materializer *render.Materializer
	slotChrome   bool
	sanitizer    func(string) string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{sanitizer: render.SanitizeContent}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	engine := cfg.templateRenderer
	if engine == nil {
		built, err := gotemplate.New()
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	return &Renderer{
		templates:    engine,
		materializer: render.NewMaterializer(engine),
		slotChrome:   cfg.slotChrome,
		sanitizer:    cfg.sanitizer,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render recomputes the slot binding from scratch and walks the wrapper's
// segment stream, splicing bound content at each slot reference.
func (r *Renderer) Render(ctx context.Context, wrapper model.WrapperModel, blocks []model.ContentBlock, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	set := model.Bind(wrapper, blocks)
	globals := composeContext(options)

	var buf bytes.Buffer
	if style := themeStyleBlock(options.Theme); style != "" {
		buf.WriteString(style)
	}

	for _, segment := range wrapper.Segments {
		if segment.Slot == nil {
			out, err := r.evalMarkup(segment.Markup, globals)
			if err != nil {
				return nil, fmt.Errorf("html renderer: render wrapper chrome: %w", err)
			}
			buf.WriteString(out)
			continue
		}

		out, err := r.renderSlot(segment.Slot, set, options, globals)
		if err != nil {
			return nil, err
		}
		buf.WriteString(out)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) renderSlot(ref *model.SlotRef, set model.BindingSet, options render.RenderOptions, globals map[string]any) (string, error) {
	var body strings.Builder

	if ref.Inert || !set.Bound(ref.Selector) {
		if ref.Fallback != "" {
			out, err := r.evalMarkup(ref.Fallback, globals)
			if err != nil {
				return "", fmt.Errorf("html renderer: render slot fallback %q: %w", ref.Selector, err)
			}
			body.WriteString(out)
		}
	} else {
		for _, block := range set.Blocks(ref.Selector) {
			out, err := r.renderBlock(block, options, globals)
			if err != nil {
				return "", err
			}
			body.WriteString(out)
		}
	}

	if !r.slotChrome {
		return body.String(), nil
	}
	return wrapSlotChrome(ref.Selector, body.String()), nil
}

func (r *Renderer) renderBlock(block model.ContentBlock, options render.RenderOptions, globals map[string]any) (string, error) {
	if block.IsTemplate() {
		ref, ok := options.ResolveTemplate(block.Template)
		if !ok {
			// Unresolved weak reference: the slot renders nothing.
			return "", nil
		}
		outputs, err := r.materializer.Materialize(ref, options.Items(block.Template), globals)
		if err != nil {
			return "", fmt.Errorf("html renderer: %w", err)
		}
		return strings.Join(outputs, ""), nil
	}

	out, err := r.evalMarkup(block.Markup, globals)
	if err != nil {
		return "", fmt.Errorf("html renderer: render content block %q: %w", block.Selector, err)
	}
	if options.Sanitize && r.sanitizer != nil {
		out = r.sanitizer(out)
	}
	return out, nil
}

// evalMarkup passes literal markup through untouched and evaluates
// value-bound markup against the composed context.
func (r *Renderer) evalMarkup(raw string, globals map[string]any) (string, error) {
	if raw == "" || !isTemplateContent(raw) {
		return raw, nil
	}
	return r.templates.RenderString(raw, globals)
}

func isTemplateContent(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

func composeContext(options render.RenderOptions) map[string]any {
	out := make(map[string]any, len(options.Values)+1)
	for key, value := range options.Values {
		out[key] = value
	}
	if options.Theme != nil {
		out["theme"] = buildThemeContext(options.Theme)
	}
	return out
}
