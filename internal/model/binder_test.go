package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func cardWrapper() WrapperModel {
	return WrapperModel{
		Name: "card",
		Slots: []SlotDeclaration{
			{Selector: "header", Position: 0},
			{Selector: "content", Position: 1},
			{Selector: "footer", Position: 2},
		},
	}
}

func alertWrapper() WrapperModel {
	return WrapperModel{
		Name:  "alert",
		Slots: []SlotDeclaration{{Selector: "", Position: 0}},
	}
}

func TestBind_SelectorEquality(t *testing.T) {
	blocks := []ContentBlock{
		{Selector: "footer", Markup: "<small>fine print</small>"},
		{Selector: "header", Markup: "<h2>Title</h2>"},
		{Selector: "content", Markup: "<p>Body</p>"},
	}

	set := Bind(cardWrapper(), blocks)

	want := map[string][]ContentBlock{
		"header":  {{Selector: "header", Markup: "<h2>Title</h2>"}},
		"content": {{Selector: "content", Markup: "<p>Body</p>"}},
		"footer":  {{Selector: "footer", Markup: "<small>fine print</small>"}},
	}
	if diff := cmp.Diff(want, set.Mapping()); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}

	wantOrder := []string{"header", "content", "footer"}
	if diff := cmp.Diff(wantOrder, set.Selectors()); diff != "" {
		t.Fatalf("selector order mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_UnmatchedFallsBackToDefault(t *testing.T) {
	wrapper := WrapperModel{
		Name: "panel",
		Slots: []SlotDeclaration{
			{Selector: "header", Position: 0},
			{Selector: "", Position: 1},
		},
	}
	blocks := []ContentBlock{
		{Selector: "sidebar", Markup: "<nav>links</nav>"},
		{Selector: "header", Markup: "<h1>Panel</h1>"},
		{Markup: "plain text"},
	}

	set := Bind(wrapper, blocks)

	want := map[string][]ContentBlock{
		"header": {{Selector: "header", Markup: "<h1>Panel</h1>"}},
		"": {
			{Selector: "sidebar", Markup: "<nav>links</nav>"},
			{Markup: "plain text"},
		},
	}
	if diff := cmp.Diff(want, set.Mapping()); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestBind_UnmatchedWithoutDefaultIsDropped(t *testing.T) {
	blocks := []ContentBlock{
		{Selector: "sidebar", Markup: "<nav>links</nav>"},
		{Selector: "header", Markup: "<h2>Kept</h2>"},
	}

	set := Bind(cardWrapper(), blocks)

	if set.Bound("sidebar") {
		t.Fatalf("expected sidebar block to be dropped")
	}
	if got := set.Len(); got != 1 {
		t.Fatalf("expected 1 bound block, got %d", got)
	}
	if !set.Bound("header") {
		t.Fatalf("expected header block to survive")
	}
}

func TestBind_DefaultSlotOnly(t *testing.T) {
	set := Bind(alertWrapper(), []ContentBlock{{Markup: "Alert!"}})

	blocks := set.Blocks("")
	if len(blocks) != 1 || blocks[0].Markup != "Alert!" {
		t.Fatalf("unexpected default slot content: %#v", blocks)
	}
}

func TestBind_EachBlockClaimedOnce(t *testing.T) {
	wrapper := WrapperModel{
		Name: "panel",
		Slots: []SlotDeclaration{
			{Selector: "header", Position: 0},
			{Selector: "", Position: 1},
		},
	}
	set := Bind(wrapper, []ContentBlock{{Selector: "header", Markup: "<h1>once</h1>"}})

	if got := set.Len(); got != 1 {
		t.Fatalf("expected block to land in exactly one slot, got %d bindings", got)
	}
	if set.Bound("") {
		t.Fatalf("claimed block must not also reach the default slot")
	}
}

func TestBind_Idempotent(t *testing.T) {
	wrapper := cardWrapper()
	blocks := []ContentBlock{
		{Selector: "content", Markup: "<p>Body</p>"},
		{Selector: "header", Markup: "<h2>Title</h2>"},
	}

	first := Bind(wrapper, blocks)
	second := Bind(wrapper, blocks)

	if diff := cmp.Diff(first.Mapping(), second.Mapping()); diff != "" {
		t.Fatalf("binder is not idempotent (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first.Selectors(), second.Selectors()); diff != "" {
		t.Fatalf("selector order changed between runs (-first +second):\n%s", diff)
	}
}

func TestBind_SupplyOrderPreservedWithinSlot(t *testing.T) {
	set := Bind(alertWrapper(), []ContentBlock{
		{Markup: "first"},
		{Markup: "second"},
		{Markup: "third"},
	})

	blocks := set.Blocks("")
	want := []string{"first", "second", "third"}
	for i, block := range blocks {
		if block.Markup != want[i] {
			t.Fatalf("block %d: got %q, want %q", i, block.Markup, want[i])
		}
	}
}
