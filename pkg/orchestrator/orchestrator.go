package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-projection/pkg/catalog"
	"github.com/goliatone/go-projection/pkg/markup"
	"github.com/goliatone/go-projection/pkg/model"
	"github.com/goliatone/go-projection/pkg/render"
	"github.com/goliatone/go-projection/pkg/wrapper"
)

// Orchestrator drives the full projection pipeline: resolve wrapper markup
// (inline, loaded from a source, or looked up in a catalog), scan it into a
// WrapperModel, and hand it to a named renderer together with the caller's
// content and template data.
type Orchestrator struct {
	loader   wrapper.Loader
	scan     scanFn
	registry *render.Registry
	catalog  *catalog.Store
	defaults defaults
}

type scanFn func(ctx context.Context, doc markup.Document, name string) (model.WrapperModel, error)

type defaults struct {
	renderer string
	options  render.RenderOptions
}

// New builds an orchestrator applying the provided options. Without options
// it loads from the local filesystem, scans with the default policy, and
// routes to a registry pre-seeded by the caller.
func New(options ...Option) (*Orchestrator, error) {
	cfg := config{defaultRenderer: "html"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}

	if cfg.registry == nil {
		return nil, fmt.Errorf("orchestrator: renderer registry is required")
	}
	if !cfg.registry.Has(cfg.defaultRenderer) {
		return nil, fmt.Errorf("orchestrator: default renderer %q not registered", cfg.defaultRenderer)
	}
	if cfg.loader == nil {
		cfg.loader = defaultLoader(cfg.loaderOptions)
	}
	if cfg.scan == nil {
		cfg.scan = scanWith(cfg.scannerOptions)
	}

	return &Orchestrator{
		loader:   cfg.loader,
		scan:     cfg.scan,
		registry: cfg.registry,
		catalog:  cfg.catalog,
		defaults: defaults{
			renderer: cfg.defaultRenderer,
			options: render.RenderOptions{
				Theme:    cfg.theme,
				Sanitize: cfg.sanitize,
			},
		},
	}, nil
}

// Request describes a single composition. Exactly one of Wrapper (catalog
// id), Markup (inline), or Source must be set.
type Request struct {
	// Wrapper names a catalogued wrapper definition.
	Wrapper string

	// Markup supplies wrapper markup inline.
	Markup string

	// Source loads wrapper markup through the configured loader.
	Source markup.Source

	// Name overrides the wrapper name used in errors and renderer metadata.
	Name string

	// Blocks is the content to project into the wrapper's slots.
	Blocks []model.ContentBlock

	// Templates resolves TemplateRef names used by template blocks. Catalog
	// templates fill any names the request leaves unresolved.
	Templates map[string]model.TemplateRef

	// Collections supplies identity-keyed items per TemplateRef name.
	Collections map[string][]model.Item

	// Values binds data into value-bound markup.
	Values map[string]any

	// Renderer selects a registered renderer; empty means the default.
	Renderer string

	// Sanitize runs projected content through the shared content policy.
	Sanitize bool
}

// Compose runs the pipeline for a single request and returns the rendered
// output bytes.
func (o *Orchestrator) Compose(ctx context.Context, req Request) ([]byte, error) {
	scanned, cfg, err := o.resolveWrapper(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := o.validateRequired(cfg, scanned, req.Blocks); err != nil {
		return nil, err
	}

	name := req.Renderer
	if name == "" {
		name = o.defaults.renderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	options := o.defaults.options
	options.Values = req.Values
	options.Templates = o.resolveTemplates(req)
	options.Collections = req.Collections
	if req.Sanitize {
		options.Sanitize = true
	}

	out, err := renderer.Render(ctx, scanned, req.Blocks, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render %q with %q: %w", scanned.Name, name, err)
	}
	return out, nil
}

// ContentType reports the content type of the renderer a request would use.
func (o *Orchestrator) ContentType(req Request) (string, error) {
	name := req.Renderer
	if name == "" {
		name = o.defaults.renderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return "", fmt.Errorf("orchestrator: %w", err)
	}
	return renderer.ContentType(), nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	return o.registry.List()
}

// Catalog exposes the configured catalog store, if any.
func (o *Orchestrator) Catalog() *catalog.Store {
	return o.catalog
}

func (o *Orchestrator) resolveWrapper(ctx context.Context, req Request) (model.WrapperModel, *catalog.WrapperConfig, error) {
	switch {
	case req.Wrapper != "":
		if o.catalog == nil {
			return model.WrapperModel{}, nil, fmt.Errorf("orchestrator: wrapper %q requested but no catalog configured", req.Wrapper)
		}
		cfg, ok := o.catalog.Wrapper(req.Wrapper)
		if !ok {
			return model.WrapperModel{}, nil, fmt.Errorf("orchestrator: wrapper %q not found in catalog", req.Wrapper)
		}
		name := req.Name
		if name == "" {
			name = cfg.ID
		}
		scanned, err := o.scanMarkup(ctx, name, cfg.Markup)
		if err != nil {
			return model.WrapperModel{}, nil, err
		}
		return scanned, &cfg, nil

	case req.Markup != "":
		name := req.Name
		if name == "" {
			name = "inline"
		}
		scanned, err := o.scanMarkup(ctx, name, req.Markup)
		if err != nil {
			return model.WrapperModel{}, nil, err
		}
		return scanned, nil, nil

	case req.Source != nil:
		doc, err := o.loader.Load(ctx, req.Source)
		if err != nil {
			return model.WrapperModel{}, nil, fmt.Errorf("orchestrator: load wrapper: %w", err)
		}
		scanned, err := o.scan(ctx, doc, req.Name)
		if err != nil {
			return model.WrapperModel{}, nil, fmt.Errorf("orchestrator: scan wrapper: %w", err)
		}
		return scanned, nil, nil
	}

	return model.WrapperModel{}, nil, fmt.Errorf("orchestrator: request needs a wrapper id, inline markup, or a source")
}

func (o *Orchestrator) scanMarkup(ctx context.Context, name, raw string) (model.WrapperModel, error) {
	doc, err := markup.NewDocument(markup.SourceFromFS(name+".html"), []byte(raw))
	if err != nil {
		return model.WrapperModel{}, fmt.Errorf("orchestrator: wrap markup: %w", err)
	}
	scanned, err := o.scan(ctx, doc, name)
	if err != nil {
		return model.WrapperModel{}, fmt.Errorf("orchestrator: scan wrapper %q: %w", name, err)
	}
	return scanned, nil
}

// validateRequired enforces catalog slot requirements before rendering so
// incomplete compositions fail loudly instead of rendering fallbacks.
func (o *Orchestrator) validateRequired(cfg *catalog.WrapperConfig, scanned model.WrapperModel, blocks []model.ContentBlock) error {
	if cfg == nil {
		return nil
	}
	required := cfg.RequiredSlots()
	if len(required) == 0 {
		return nil
	}

	set := model.Bind(scanned, blocks)

	var missing []string
	for _, selector := range required {
		if !set.Bound(selector) {
			label := selector
			if label == "" {
				label = "(default)"
			}
			missing = append(missing, label)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("orchestrator: wrapper %q is missing required slot content: %s",
			cfg.ID, strings.Join(missing, ", "))
	}
	return nil
}

// resolveTemplates merges request templates over catalog templates for any
// TemplateRef name the request's blocks mention.
func (o *Orchestrator) resolveTemplates(req Request) map[string]model.TemplateRef {
	out := make(map[string]model.TemplateRef, len(req.Templates))
	for name, ref := range req.Templates {
		out[name] = ref
	}

	if o.catalog == nil {
		if len(out) == 0 {
			return nil
		}
		return out
	}

	for _, block := range req.Blocks {
		if !block.IsTemplate() {
			continue
		}
		if _, resolved := out[block.Template]; resolved {
			continue
		}
		cfg, ok := o.catalog.Template(block.Template)
		if !ok {
			continue
		}
		out[block.Template] = model.TemplateRef{
			Name:    cfg.ID,
			Var:     cfg.Var,
			Content: cfg.Content,
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
