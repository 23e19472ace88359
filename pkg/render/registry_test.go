package render

import (
	"context"
	"testing"

	"github.com/goliatone/go-projection/pkg/model"
)

type namedRenderer struct {
	name string
}

func (r namedRenderer) Name() string        { return r.name }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(context.Context, model.WrapperModel, []model.ContentBlock, RenderOptions) ([]byte, error) {
	return nil, nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(namedRenderer{name: "html"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(namedRenderer{name: "html"})

	if err := registry.Register(namedRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(namedRenderer{name: "text"})
	registry.MustRegister(namedRenderer{name: "html"})

	names := registry.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "text" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestRegistry_ContentTypes(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(namedRenderer{name: "html"})

	types := registry.ContentTypes()
	if types["html"] != "text/plain" {
		t.Fatalf("unexpected content types: %v", types)
	}
}

func TestRegistry_MissingRenderer(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Get("missing"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	if registry.Has("missing") {
		t.Fatalf("expected Has to report false")
	}
}
