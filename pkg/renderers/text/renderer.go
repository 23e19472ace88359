package text

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
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer composes the same slot binding as the HTML renderer but emits a
// plain-text reduction: markup is stripped to its text content and whitespace
// runs collapse to single spaces. Useful for previews, logs, and notification
// payloads that reuse wrapper definitions.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	materializer *render.Materializer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the text renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
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
			return nil, fmt.Errorf("text renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	return &Renderer{
		templates:    engine,
		materializer: render.NewMaterializer(engine),
	}, nil
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render walks the wrapper's segment stream like the HTML renderer, then
// reduces the composed output to stripped text.
func (r *Renderer) Render(ctx context.Context, wrapper model.WrapperModel, blocks []model.ContentBlock, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := model.Bind(wrapper, blocks)
	globals := composeContext(options)

	var buf bytes.Buffer
	for _, segment := range wrapper.Segments {
		if segment.Slot == nil {
			out, err := r.eval(segment.Markup, globals)
			if err != nil {
				return nil, fmt.Errorf("text renderer: render wrapper chrome: %w", err)
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

	return []byte(stripMarkup(buf.String())), nil
}

func (r *Renderer) renderSlot(ref *model.SlotRef, set model.BindingSet, options render.RenderOptions, globals map[string]any) (string, error) {
	if ref.Inert || !set.Bound(ref.Selector) {
		if ref.Fallback == "" {
			return "", nil
		}
		out, err := r.eval(ref.Fallback, globals)
		if err != nil {
			return "", fmt.Errorf("text renderer: render slot fallback %q: %w", ref.Selector, err)
		}
		return out, nil
	}

	var body strings.Builder
	for _, block := range set.Blocks(ref.Selector) {
		out, err := r.renderBlock(block, options, globals)
		if err != nil {
			return "", err
		}
		body.WriteString(out)
		body.WriteString(" ")
	}
	return body.String(), nil
}

func (r *Renderer) renderBlock(block model.ContentBlock, options render.RenderOptions, globals map[string]any) (string, error) {
	if block.IsTemplate() {
		ref, ok := options.ResolveTemplate(block.Template)
		if !ok {
			return "", nil
		}
		outputs, err := r.materializer.Materialize(ref, options.Items(block.Template), globals)
		if err != nil {
			return "", fmt.Errorf("text renderer: %w", err)
		}
		return strings.Join(outputs, " "), nil
	}

	out, err := r.eval(block.Markup, globals)
	if err != nil {
		return "", fmt.Errorf("text renderer: render content block %q: %w", block.Selector, err)
	}
	return out, nil
}

func (r *Renderer) eval(raw string, globals map[string]any) (string, error) {
	if raw == "" || !isTemplateContent(raw) {
		return raw, nil
	}
	return r.templates.RenderString(raw, globals)
}

func isTemplateContent(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%")
}

func composeContext(options render.RenderOptions) map[string]any {
	out := make(map[string]any, len(options.Values))
	for key, value := range options.Values {
		out[key] = value
	}
	return out
}
