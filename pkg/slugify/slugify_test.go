package slugify

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Fresh Vegetables", "fresh-vegetables"},
		{"Rice 5kg", "rice-5kg"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER_case.name", "upper-case-name"},
		{"100% Organic!", "100-organic"},
		{"---", ""},
		{"", ""},
		{"already-a-slug", "already-a-slug"},
	}
	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeOrFallback(t *testing.T) {
	if got := MakeOrFallback("Fresh Vegetables"); got != "fresh-vegetables" {
		t.Fatalf("got %q", got)
	}
	fallback := MakeOrFallback("!!!")
	if !strings.HasPrefix(fallback, "item-") || len(fallback) <= len("item-") {
		t.Fatalf("expected timestamp fallback, got %q", fallback)
	}
}
