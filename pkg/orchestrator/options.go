package orchestrator

import (
	"context"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	internalloader "github.com/goliatone/go-projection/internal/wrapper/loader"
	internalscanner "github.com/goliatone/go-projection/internal/wrapper/scanner"
	"github.com/goliatone/go-projection/pkg/catalog"
	"github.com/goliatone/go-projection/pkg/markup"
	"github.com/goliatone/go-projection/pkg/model"
	"github.com/goliatone/go-projection/pkg/render"
	"github.com/goliatone/go-projection/pkg/wrapper"
)

// Option configures the orchestrator during construction.
type Option func(*config) error

type config struct {
	loader          wrapper.Loader
	loaderOptions   []wrapper.LoaderOption
	scan            scanFn
	scannerOptions  []wrapper.ScannerOption
	registry        *render.Registry
	catalog         *catalog.Store
	defaultRenderer string
	theme           *theme.RendererConfig
	sanitize        bool
}

// WithLoader injects a custom wrapper loader.
func WithLoader(loader wrapper.Loader) Option {
	return func(cfg *config) error {
		if loader == nil {
			return fmt.Errorf("loader is nil")
		}
		cfg.loader = loader
		return nil
	}
}

// WithLoaderOptions configures the default loader. Ignored when WithLoader
// supplies a full implementation.
func WithLoaderOptions(options ...wrapper.LoaderOption) Option {
	return func(cfg *config) error {
		cfg.loaderOptions = append(cfg.loaderOptions, options...)
		return nil
	}
}

// WithScanner injects a custom wrapper scanner. The scanner's own naming
// configuration applies; per-request name overrides are ignored.
func WithScanner(scan wrapper.Scanner) Option {
	return func(cfg *config) error {
		if scan == nil {
			return fmt.Errorf("scanner is nil")
		}
		cfg.scan = func(ctx context.Context, doc markup.Document, _ string) (model.WrapperModel, error) {
			return scan.Scan(ctx, doc)
		}
		return nil
	}
}

// WithScannerOptions configures the default scanner (strict slots, metadata).
// Ignored when WithScanner supplies a full implementation.
func WithScannerOptions(options ...wrapper.ScannerOption) Option {
	return func(cfg *config) error {
		cfg.scannerOptions = append(cfg.scannerOptions, options...)
		return nil
	}
}

// WithRegistry injects the renderer registry requests route through.
func WithRegistry(registry *render.Registry) Option {
	return func(cfg *config) error {
		if registry == nil {
			return fmt.Errorf("registry is nil")
		}
		cfg.registry = registry
		return nil
	}
}

// WithDefaultRenderer names the renderer used when a request does not pick
// one.
func WithDefaultRenderer(name string) Option {
	return func(cfg *config) error {
		if name == "" {
			return fmt.Errorf("default renderer name is empty")
		}
		cfg.defaultRenderer = name
		return nil
	}
}

// WithCatalog attaches a wrapper/template catalog.
func WithCatalog(store *catalog.Store) Option {
	return func(cfg *config) error {
		if store == nil {
			return fmt.Errorf("catalog store is nil")
		}
		cfg.catalog = store
		return nil
	}
}

// WithCatalogFS loads a catalog from the given filesystem root and attaches
// it.
func WithCatalogFS(fsys fs.FS, root string) Option {
	return func(cfg *config) error {
		store, err := catalog.LoadFS(fsys, root)
		if err != nil {
			return err
		}
		cfg.catalog = store
		return nil
	}
}

// WithTheme applies a theme configuration to every composition.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) error {
		c.theme = cfg
		return nil
	}
}

// WithSanitize sanitizes projected content on every composition, regardless
// of per-request settings.
func WithSanitize() Option {
	return func(cfg *config) error {
		cfg.sanitize = true
		return nil
	}
}

func defaultLoader(options []wrapper.LoaderOption) wrapper.Loader {
	return internalloader.New(wrapper.NewLoaderOptions(options...))
}

// scanWith builds a scanFn that constructs a scanner per call so the request
// name can override the source-derived wrapper name.
func scanWith(base []wrapper.ScannerOption) scanFn {
	return func(ctx context.Context, doc markup.Document, name string) (model.WrapperModel, error) {
		options := base
		if name != "" {
			options = append(append([]wrapper.ScannerOption{}, base...), wrapper.WithName(name))
		}
		scan := internalscanner.New(wrapper.NewScannerOptions(options...))
		return scan.Scan(ctx, doc)
	}
}
