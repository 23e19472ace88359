package main

import "testing"

func TestWrapperNameFromPath(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"card.html", "card"},
		{"wrappers/card.html", "card"},
		{"/abs/path/to/panel.html", "panel"},
		{"alert", "alert"},
	}

	for _, tc := range cases {
		if got := wrapperNameFromPath(tc.path); got != tc.want {
			t.Fatalf("wrapperNameFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}
