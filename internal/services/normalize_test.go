package services

import "testing"

func TestNormalizeQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"3", 3},
		{" 2 ", 2},
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-5", 1},
	}
	for _, tc := range cases {
		if got := normalizeQuantity(tc.raw); got != tc.want {
			t.Fatalf("normalizeQuantity(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeExtraQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"2", 2},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-1", 0},
	}
	for _, tc := range cases {
		if got := normalizeExtraQuantity(tc.raw); got != tc.want {
			t.Fatalf("normalizeExtraQuantity(%q) = %d, want %d", tc.raw, got, tc.want)
		}
	}
}

func TestBuildAddress(t *testing.T) {
	cases := []struct {
		name                                    string
		street, number, apartment, city, region string
		want                                    string
	}{
		{"full", "Main St", "42", "3B", "Springfield", "Centro", "Main St 42, 3B, Springfield, Centro"},
		{"no apartment", "Main St", "42", "", "Springfield", "Centro", "Main St 42, Springfield, Centro"},
		{"street only", "Main St", "", "", "", "", "Main St"},
		{"empty", "", "", "", "", "", ""},
		{"trims whitespace", " Main St ", " 42 ", "", " Springfield ", "", "Main St 42, Springfield"},
	}
	for _, tc := range cases {
		if got := buildAddress(tc.street, tc.number, tc.apartment, tc.city, tc.region); got != tc.want {
			t.Fatalf("%s: buildAddress = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestSortedExtraIDsNumericFirst(t *testing.T) {
	ids := sortedExtraIDs(map[string]string{"10": "1", "2": "1", "abc": "1", " ": "1"})
	want := []string{"2", "10", "abc"}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, ids)
		}
	}
}
