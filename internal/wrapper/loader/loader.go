package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-projection/pkg/markup"
	pkgwrapper "github.com/goliatone/go-projection/pkg/wrapper"
)

// Loader implements pkgwrapper.Loader. Wrapper markup is small and local by
// default: file and fs.FS sources always work, HTTP is opt-in so compositions
// stay reproducible offline.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

var _ pkgwrapper.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. A nil http field means
// URL sources are rejected.
func New(options pkgwrapper.LoaderOptions) pkgwrapper.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Loader{
		fs:      options.FileSystem,
		http:    httpClient,
		timeout: timeout,
	}
}

// Load fetches wrapper markup from the source and wraps it in a Document.
func (l *Loader) Load(ctx context.Context, src markup.Source) (markup.Document, error) {
	if src == nil {
		return markup.Document{}, errors.New("wrapper loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return markup.Document{}, err
	}

	location := src.Location()

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case markup.SourceKindFile:
		data, err = l.readFile(location)
	case markup.SourceKindFS:
		data, err = l.readFS(location)
	case markup.SourceKindURL:
		data, err = l.fetch(ctx, location)
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return markup.Document{}, fmt.Errorf("wrapper loader: load %s: %w", location, err)
	}

	return markup.NewDocument(src, data)
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("file path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func (l *Loader) readFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("no filesystem configured for fs sources")
	}
	if name == "" {
		return nil, errors.New("fs path is required")
	}
	return fs.ReadFile(l.fs, name)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("http loading is disabled; enable it explicitly")
	}
	if url == "" {
		return nil, errors.New("url is required")
	}

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
