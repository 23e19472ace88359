// Package projection composes content into reusable markup wrappers through
// named slots. Wrappers declare slots, callers supply content blocks, and
// renderers splice the two together, materializing parameterized templates
// with stable per-item identity along the way.
//
// The root package wires the internal loader and scanner implementations to
// their public contracts and offers convenience constructors for the common
// pipeline.
package projection

import (
	"context"
	"fmt"

	internalloader "github.com/goliatone/go-projection/internal/wrapper/loader"
	internalscanner "github.com/goliatone/go-projection/internal/wrapper/scanner"
	"github.com/goliatone/go-projection/pkg/catalog"
	"github.com/goliatone/go-projection/pkg/markup"
	"github.com/goliatone/go-projection/pkg/model"
	"github.com/goliatone/go-projection/pkg/orchestrator"
	"github.com/goliatone/go-projection/pkg/render"
	"github.com/goliatone/go-projection/pkg/renderers/html"
	"github.com/goliatone/go-projection/pkg/renderers/text"
	"github.com/goliatone/go-projection/pkg/wrapper"
)

// Commonly used types re-exported so most callers only import the root
// package.
type (
	Source       = markup.Source
	Document     = markup.Document
	WrapperModel = model.WrapperModel
	ContentBlock = model.ContentBlock
	TemplateRef  = model.TemplateRef
	Item         = model.Item
	Request      = orchestrator.Request
)

// SourceFromFile builds a Source for an operating system path.
func SourceFromFile(path string) Source { return markup.SourceFromFile(path) }

// SourceFromFS builds a Source resolved against a configured fs.FS.
func SourceFromFS(path string) Source { return markup.SourceFromFS(path) }

// SourceFromURL builds a Source for a remote wrapper document.
func SourceFromURL(raw string) Source { return markup.SourceFromURL(raw) }

// NewDocument pairs a source with its raw wrapper markup.
func NewDocument(src Source, raw []byte) (Document, error) {
	return markup.NewDocument(src, raw)
}

// NewLoader builds a wrapper loader with the given options.
func NewLoader(options ...wrapper.LoaderOption) wrapper.Loader {
	return internalloader.New(wrapper.NewLoaderOptions(options...))
}

// NewScanner builds a slot scanner with the given options.
func NewScanner(options ...wrapper.ScannerOption) wrapper.Scanner {
	return internalscanner.New(wrapper.NewScannerOptions(options...))
}

// NewRegistry builds a renderer registry pre-seeded with the html and text
// renderers.
func NewRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("projection: build html renderer: %w", err)
	}
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}

	textRenderer, err := text.New()
	if err != nil {
		return nil, fmt.Errorf("projection: build text renderer: %w", err)
	}
	if err := registry.Register(textRenderer); err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}

	return registry, nil
}

// EmbeddedCatalog returns the builtin wrapper/template catalog.
func EmbeddedCatalog() (*catalog.Store, error) {
	return catalog.Builtin()
}

// New builds a ready-to-use orchestrator: html and text renderers registered,
// html as the default. Additional options layer on top.
func New(options ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	registry, err := NewRegistry()
	if err != nil {
		return nil, err
	}

	merged := append([]orchestrator.Option{orchestrator.WithRegistry(registry)}, options...)
	return orchestrator.New(merged...)
}

// Bind resolves which declared slot each content block projects into.
func Bind(wrapper WrapperModel, blocks []ContentBlock) model.BindingSet {
	return model.Bind(wrapper, blocks)
}

// ComposeHTML is the one-call path: scan inline wrapper markup and render the
// blocks into it with the html renderer.
func ComposeHTML(ctx context.Context, wrapperMarkup string, blocks []ContentBlock) ([]byte, error) {
	svc, err := New()
	if err != nil {
		return nil, err
	}
	return svc.Compose(ctx, Request{Markup: wrapperMarkup, Blocks: blocks})
}
