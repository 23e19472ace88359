package gotemplate_test

import (
	"strings"
	"testing"
	"testing/fstest"

	gotemplate "github.com/goliatone/go-projection/pkg/render/template/gotemplate"
)

func TestNew_LoaderlessEngine(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("loaderless construction must succeed: %v", err)
	}

	out, err := engine.RenderString("Hello {{ user }}", map[string]any{"user": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := engine.RenderTemplate("card", nil); err == nil {
		t.Fatalf("named templates must stay rejected without a loader")
	}
}

func TestRenderString(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("Hello {{ user }}", map[string]any{"user": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderString_NestedMapAccess(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ product.name }}", map[string]any{
		"product": map[string]any{"name": "Shoes"},
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "Shoes" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRenderTemplate_RequiresLoader(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if _, err := engine.RenderTemplate("card", nil); err == nil {
		t.Fatalf("expected loaderless engine to reject named templates")
	}
}

func TestRenderTemplate_FromFS(t *testing.T) {
	files := fstest.MapFS{
		"card.html": &fstest.MapFile{Data: []byte(`<div>{{ label }}</div>`)},
	}

	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("card", map[string]any{"label": "hi"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if out != "<div>hi</div>" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestGlobalData(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithGlobalData(map[string]any{
		"site": "go-projection",
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("{{ site }}", nil)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "go-projection" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	if err := engine.RegisterFilter("shout", func(in any, _ any) (any, error) {
		s, _ := in.(string)
		return strings.ToUpper(s), nil
	}); err != nil {
		t.Fatalf("register filter: %v", err)
	}

	out, err := engine.RenderString("{{ word|shout }}", map[string]any{"word": "psst"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "PSST" {
		t.Fatalf("unexpected output %q", out)
	}
}
