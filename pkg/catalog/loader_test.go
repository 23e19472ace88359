package catalog_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-projection/pkg/catalog"
)

func TestLoadFS_MergesJSONAndYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"defs/wrappers.yaml": &fstest.MapFile{Data: []byte(`
wrappers:
  - id: badge
    markup: '<span class="badge"><slot></slot></span>'
    slots:
      "":
        label: Content
        required: true
`)},
		"defs/templates.json": &fstest.MapFile{Data: []byte(`{
  "templates": [
    {"id": "row", "var": "row", "content": "<tr><td>{{ row }}</td></tr>"}
  ]
}`)},
		"defs/notes.txt": &fstest.MapFile{Data: []byte("ignored")},
	}

	store, err := catalog.LoadFS(fsys, "defs")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"badge"}, store.WrapperIDs()); diff != "" {
		t.Fatalf("wrapper ids mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"row"}, store.TemplateIDs()); diff != "" {
		t.Fatalf("template ids mismatch (-want +got):\n%s", diff)
	}

	wrapper, ok := store.Wrapper("badge")
	if !ok {
		t.Fatalf("expected badge wrapper")
	}
	if got := wrapper.RequiredSlots(); len(got) != 1 || got[0] != "" {
		t.Fatalf("expected default slot required, got %v", got)
	}

	template, ok := store.Template("row")
	if !ok {
		t.Fatalf("expected row template")
	}
	if template.Var != "row" {
		t.Fatalf("expected var row, got %q", template.Var)
	}
}

func TestLoadFS_DuplicateWrapperID(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("wrappers:\n  - id: card\n    markup: '<slot></slot>'\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("wrappers:\n  - id: card\n    markup: '<slot></slot>'\n")},
	}

	_, err := catalog.LoadFS(fsys, ".")
	if err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), `duplicate wrapper id "card"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFS_MissingMarkup(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("wrappers:\n  - id: card\n")},
	}

	_, err := catalog.LoadFS(fsys, ".")
	if err == nil || !strings.Contains(err.Error(), "has no markup") {
		t.Fatalf("expected missing markup error, got %v", err)
	}
}

func TestBuiltin(t *testing.T) {
	store, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}

	for _, id := range []string{"card", "alert", "panel"} {
		wrapper, ok := store.Wrapper(id)
		if !ok {
			t.Fatalf("expected builtin wrapper %q", id)
		}
		if !strings.Contains(wrapper.Markup, "<slot") {
			t.Fatalf("builtin wrapper %q declares no slots", id)
		}
	}

	if _, ok := store.Template("item-list"); !ok {
		t.Fatalf("expected builtin item-list template")
	}

	required := mustWrapper(t, store, "card").RequiredSlots()
	if diff := cmp.Diff([]string{"content"}, required); diff != "" {
		t.Fatalf("required slots mismatch (-want +got):\n%s", diff)
	}
}

func mustWrapper(t *testing.T, store *catalog.Store, id string) catalog.WrapperConfig {
	t.Helper()
	wrapper, ok := store.Wrapper(id)
	if !ok {
		t.Fatalf("wrapper %q not found", id)
	}
	return wrapper
}
