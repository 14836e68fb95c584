package utils

import (
	"strings"
	"testing"
)

func TestGenerateID(t *testing.T) {
	id := GenerateID(14)
	if len(id) != 14 {
		t.Fatalf("len = %d, want 14", len(id))
	}
	for _, r := range id {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz0123456789", r) {
			t.Errorf("unexpected rune %q in id %q", r, id)
		}
	}
}

func TestContainsSubstring(t *testing.T) {
	cases := []struct {
		s, q string
		want bool
	}{
		{"Grand Wedding Hall", "wedding", true},
		{"Grand Wedding Hall", "WEDDING HALL", true},
		{"Grand Wedding Hall", "weding", false}, // literal match, no fuzziness
		{"Grand Wedding Hall", "", true},
		{"", "x", false},
	}
	for _, tc := range cases {
		if got := ContainsSubstring(tc.s, tc.q); got != tc.want {
			t.Errorf("ContainsSubstring(%q, %q) = %v, want %v", tc.s, tc.q, got, tc.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	if got := Paginate(items, 1, 2); len(got) != 2 || got[0] != "a" {
		t.Errorf("page 1 = %v", got)
	}
	if got := Paginate(items, 3, 2); len(got) != 1 || got[0] != "e" {
		t.Errorf("last partial page = %v", got)
	}
	if got := Paginate(items, 4, 2); len(got) != 0 {
		t.Errorf("past-the-end page = %v, want empty", got)
	}
	if got := Paginate(items, 0, 2); len(got) != 5 {
		t.Errorf("invalid page should pass items through, got %v", got)
	}
}

func TestGetUUID(t *testing.T) {
	a, b := GetUUID(), GetUUID()
	if a == b {
		t.Error("consecutive uuids should differ")
	}
	if len(a) != 36 {
		t.Errorf("len = %d, want 36", len(a))
	}
}
