package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeyedItems(t *testing.T) {
	type product struct {
		SKU  string
		Name string
	}

	items := KeyedItems([]product{
		{SKU: "p-1", Name: "shoes"},
		{SKU: "p-2", Name: "socks"},
	}, func(p product) string { return p.SKU })

	want := []Item{
		{Key: "p-1", Value: product{SKU: "p-1", Name: "shoes"}},
		{Key: "p-2", Value: product{SKU: "p-2", Name: "socks"}},
	}
	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestKeyedItems_Empty(t *testing.T) {
	if got := KeyedItems(nil, func(int) string { return "" }); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
