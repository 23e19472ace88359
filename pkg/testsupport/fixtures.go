package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	internalscanner "github.com/goliatone/go-projection/internal/wrapper/scanner"
	"github.com/goliatone/go-projection/pkg/markup"
	pkgmodel "github.com/goliatone/go-projection/pkg/model"
	pkgwrapper "github.com/goliatone/go-projection/pkg/wrapper"
)

// Context returns the background context; a named helper keeps contract tests
// uniform.
func Context() context.Context {
	return context.Background()
}

// MustLoadWrapperModel loads a JSON fixture into a WrapperModel structure.
func MustLoadWrapperModel(t *testing.T, path string) pkgmodel.WrapperModel {
	t.Helper()

	wrapper, err := LoadWrapperModel(path)
	if err != nil {
		t.Fatalf("load wrapper model: %v", err)
	}
	return wrapper
}

// LoadWrapperModel reads a JSON fixture into a WrapperModel, returning an
// error for callers managing setup outside of *testing.T.
func LoadWrapperModel(path string) (pkgmodel.WrapperModel, error) {
	if path == "" {
		return pkgmodel.WrapperModel{}, errors.New("testsupport: wrapper model path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pkgmodel.WrapperModel{}, fmt.Errorf("testsupport: read wrapper model: %w", err)
	}
	var out pkgmodel.WrapperModel
	if err := json.Unmarshal(data, &out); err != nil {
		return pkgmodel.WrapperModel{}, fmt.Errorf("testsupport: unmarshal wrapper model: %w", err)
	}
	return out, nil
}

// MustScanWrapper scans inline markup into a WrapperModel so tests can build
// fixtures without touching disk.
func MustScanWrapper(t *testing.T, name, raw string) pkgmodel.WrapperModel {
	t.Helper()

	doc := markup.MustNewDocument(markup.SourceFromFS(name+".html"), []byte(raw))
	scan := internalscanner.New(pkgwrapper.NewScannerOptions(pkgwrapper.WithName(name)))

	out, err := scan.Scan(context.Background(), doc)
	if err != nil {
		t.Fatalf("scan wrapper: %v", err)
	}
	return out
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is
// set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
