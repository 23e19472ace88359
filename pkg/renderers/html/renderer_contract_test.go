package html_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-projection/pkg/model"
	"github.com/goliatone/go-projection/pkg/render"
	"github.com/goliatone/go-projection/pkg/renderers/html"
	"github.com/goliatone/go-projection/pkg/testsupport"
)

func TestRenderer_RenderContract(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("testdata", "card.html"))
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	wrapper := testsupport.MustScanWrapper(t, "card", string(raw))

	renderer, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	blocks := []model.ContentBlock{
		{Selector: "footer", Markup: "<small>&copy; Acme</small>"},
		{Selector: "header", Markup: "<h2>Product</h2>"},
		{Selector: "content", Markup: "<p>Great product</p>"},
	}

	output, err := renderer.Render(testsupport.Context(), wrapper, blocks, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "card_output.golden.html")
	if testsupport.WriteMaybeGolden(t, goldenPath, output) {
		return
	}

	want := testsupport.MustReadGolden(t, goldenPath)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderStringFunc: func(content string, data any) (string, error) {
			return "custom-output", nil
		},
	}

	renderer, err := html.New(html.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	wrapper := testsupport.MustScanWrapper(t, "alert", `<div class="alert"><slot></slot></div>`)
	blocks := []model.ContentBlock{{Markup: "{{ greeting }}"}}

	out, err := renderer.Render(testsupport.Context(), wrapper, blocks, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != `<div class="alert">custom-output</div>` {
		t.Fatalf("unexpected output: %s", out)
	}
	if !stub.called {
		t.Fatalf("expected the injected engine to be used")
	}
}

type stubTemplateRenderer struct {
	called           bool
	renderStringFunc func(content string, data any) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderString(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, _ ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(content string, data any, _ ...io.Writer) (string, error) {
	s.called = true
	if s.renderStringFunc != nil {
		return s.renderStringFunc(content, data)
	}
	return content, nil
}

func (s *stubTemplateRenderer) RegisterFilter(string, func(any, any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(any) error {
	return nil
}
