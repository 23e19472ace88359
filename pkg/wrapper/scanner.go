package wrapper

import (
	"context"

	"github.com/goliatone/go-projection/pkg/markup"
	"github.com/goliatone/go-projection/pkg/model"
)

// Scanner turns a wrapper's markup document into an ordered WrapperModel:
// slot declarations plus the segment stream renderers splice content into.
type Scanner interface {
	Scan(ctx context.Context, doc markup.Document) (model.WrapperModel, error)
}

// ScannerOptions configures slot scanning.
type ScannerOptions struct {
	// Name overrides the wrapper name derived from the source location.
	Name string

	// StrictSlots surfaces duplicate slot selectors as an error instead of
	// applying the default first-wins policy.
	StrictSlots bool

	// Metadata is attached verbatim to the scanned model.
	Metadata map[string]string
}

// ScannerOption mutates ScannerOptions prior to construction.
type ScannerOption func(*ScannerOptions)

// WithName overrides the wrapper name derived from the source location.
func WithName(name string) ScannerOption {
	return func(opts *ScannerOptions) {
		opts.Name = name
	}
}

// WithStrictSlots makes duplicate slot selectors an error. By default the
// first declaration wins and later duplicates become inert.
func WithStrictSlots() ScannerOption {
	return func(opts *ScannerOptions) {
		opts.StrictSlots = true
	}
}

// WithMetadata attaches metadata to the scanned wrapper model.
func WithMetadata(meta map[string]string) ScannerOption {
	return func(opts *ScannerOptions) {
		if len(meta) == 0 {
			return
		}
		if opts.Metadata == nil {
			opts.Metadata = make(map[string]string, len(meta))
		}
		for key, value := range meta {
			opts.Metadata[key] = value
		}
	}
}

// NewScannerOptions applies a set of ScannerOption values and returns the
// resulting configuration.
func NewScannerOptions(options ...ScannerOption) ScannerOptions {
	cfg := ScannerOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
