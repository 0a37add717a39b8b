package utils

import (
	"reflect"
	"testing"
)

func TestAtoiDefault(t *testing.T) {
	cases := []struct {
		s    string
		def  int
		want int
	}{
		// empty -> default
		{"", 10, 10},
		// valid ints
		{"42", 0, 42},
		{"-13", 1, -13},
		{"0012", 99, 12},
		// invalid -> default (no trim)
		{"x", 5, 5},
		{" 42", 7, 7},
		// overflow -> default
		{"999999999999999999999999", -1, -1},
	}

	for _, tc := range cases {
		if got := AtoiDefault(tc.s, tc.def); got != tc.want {
			t.Fatalf("AtoiDefault(%q, %d) = %d; want %d", tc.s, tc.def, got, tc.want)
		}
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	cases := []struct {
		name               string
		offset, limit, max int
		want               []int
	}{
		{"first page", 0, 2, 100, []int{1, 2}},
		{"middle page", 2, 2, 100, []int{3, 4}},
		{"partial tail", 4, 10, 100, []int{5}},
		{"offset past end", 9, 2, 100, []int{}},
		{"negative offset", -3, 2, 100, []int{1, 2}},
		{"zero limit uses max", 0, 0, 3, []int{1, 2, 3}},
		{"limit clamped to max", 0, 50, 2, []int{1, 2}},
	}

	for _, tc := range cases {
		got := Paginate(items, tc.offset, tc.limit, tc.max)
		if got == nil {
			t.Fatalf("%s: Paginate returned nil", tc.name)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: Paginate = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	got := Paginate([]string{}, 0, 10, 10)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
