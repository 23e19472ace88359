package projection_test

import (
	"context"
	"testing"

	projection "github.com/goliatone/go-projection"
	"github.com/goliatone/go-projection/pkg/orchestrator"
)

func TestComposeHTML(t *testing.T) {
	out, err := projection.ComposeHTML(context.Background(),
		`<div class="alert" role="alert"><slot></slot></div>`,
		[]projection.ContentBlock{{Markup: "Alert!"}})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if string(out) != `<div class="alert" role="alert">Alert!</div>` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewRegistry_SeedsDefaultRenderers(t *testing.T) {
	registry, err := projection.NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	for _, name := range []string{"html", "text"} {
		if !registry.Has(name) {
			t.Fatalf("expected renderer %q to be registered", name)
		}
	}
}

func TestNew_WithEmbeddedCatalog(t *testing.T) {
	store, err := projection.EmbeddedCatalog()
	if err != nil {
		t.Fatalf("embedded catalog: %v", err)
	}

	svc, err := projection.New(orchestrator.WithCatalog(store))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	out, err := svc.Compose(context.Background(), projection.Request{
		Wrapper: "alert",
		Blocks:  []projection.ContentBlock{{Markup: "Heads up"}},
	})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if string(out) != `<div class="alert" role="alert">Heads up</div>` {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNewScanner_Scan(t *testing.T) {
	scanner := projection.NewScanner()

	doc, err := projection.NewDocument(projection.SourceFromFS("card.html"),
		[]byte(`<div><slot name="header"></slot><slot></slot></div>`))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	scanned, err := scanner.Scan(context.Background(), doc)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(scanned.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(scanned.Slots))
	}
	if scanned.Slots[0].Selector != "header" || !scanned.Slots[1].IsDefault() {
		t.Fatalf("unexpected slot declarations: %+v", scanned.Slots)
	}
}
