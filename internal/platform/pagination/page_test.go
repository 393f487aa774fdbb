package pagination

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.einride.tech/aip/ordering"
)

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	cfg := PageSizeConfig{Default: 25, Max: 100}
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: 25},
		{in: -3, want: 25},
		{in: 10, want: 10},
		{in: 500, want: 100},
	}
	for _, tc := range tests {
		if got := ClampPageSize(tc.in, cfg); got != tc.want {
			t.Fatalf("ClampPageSize(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
	if got := ClampPageSize(0, PageSizeConfig{}); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
}

func TestClampPageNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page, total, want int
	}{
		{page: 0, total: 4, want: 1},
		{page: 3, total: 4, want: 3},
		{page: 9, total: 4, want: 4},
		{page: 2, total: 0, want: 2},
	}
	for _, tc := range tests {
		if got := ClampPageNumber(tc.page, tc.total); got != tc.want {
			t.Fatalf("ClampPageNumber(%d, %d) = %d, want %d", tc.page, tc.total, got, tc.want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	if got := TotalPages(0, 25); got != 0 {
		t.Fatalf("TotalPages(0) = %d", got)
	}
	if got := TotalPages(25, 25); got != 1 {
		t.Fatalf("TotalPages(25) = %d", got)
	}
	if got := TotalPages(26, 25); got != 2 {
		t.Fatalf("TotalPages(26) = %d", got)
	}
}

func TestParseOrderBy(t *testing.T) {
	t.Parallel()

	cfg := OrderByConfig{Default: "created_at desc", Allowed: []string{"created_at", "title"}}

	got, err := ParseOrderBy("", cfg)
	if err != nil {
		t.Fatalf("parse default: %v", err)
	}
	want := ordering.OrderBy{Fields: []ordering.Field{{Path: "created_at", Desc: true}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("default order (-want +got):\n%s", diff)
	}

	got, err = ParseOrderBy("title, created_at desc", cfg)
	if err != nil {
		t.Fatalf("parse explicit: %v", err)
	}
	if FormatOrderBy(got) != "title, created_at desc" {
		t.Fatalf("FormatOrderBy() = %q", FormatOrderBy(got))
	}

	if _, err := ParseOrderBy("status", cfg); err == nil {
		t.Fatal("expected unknown path error")
	}
	if _, err := ParseOrderBy("title sideways", cfg); err == nil {
		t.Fatal("expected syntax error")
	}
}
