package markup

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Source identifies where a wrapper's markup originates so loaders can route
// between files, fs.FS entries, and URLs without callers knowing which
// strategy runs.
type Source interface {
	Kind() SourceKind
	Location() string
}

// source is the single implementation behind every constructor; the kind tag
// is what loaders dispatch on.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind { return s.kind }
func (s source) Location() string { return s.location }

// SourceFromFile returns a Source pointing at an operating system path.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS returns a Source naming an entry inside a configured fs.FS.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL parses the supplied URL string and returns a Source. It
// panics on an invalid URL so configuration mistakes surface at wiring time.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("markup: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("markup: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
