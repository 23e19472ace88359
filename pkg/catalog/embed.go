package catalog

import (
	"embed"
	"fmt"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin loads the catalog shipped with the module: a small set of common
// wrappers (card, alert, panel) and list templates.
func Builtin() (*Store, error) {
	store, err := LoadFS(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("catalog: load builtin: %w", err)
	}
	return store, nil
}

// MustBuiltin loads the builtin catalog and panics on error. The builtin
// documents are embedded and validated by tests, so failure here means a
// broken build.
func MustBuiltin() *Store {
	store, err := Builtin()
	if err != nil {
		panic(err)
	}
	return store
}
