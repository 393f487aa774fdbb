package restclient

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDrainPagesStopsAtLastPage(t *testing.T) {
	t.Parallel()

	var requested []int
	got, err := drainPages(context.Background(), "list_all_test", 5, func(_ context.Context, number int) (Page[int], error) {
		requested = append(requested, number)
		return Page[int]{Content: []int{number}, TotalPages: 3, Number: number, Last: number == 2}, nil
	})
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 2}, requested); diff != "" {
		t.Fatalf("pages mismatch (-want +got):\n%s", diff)
	}
}

func TestDrainPagesReturnsFetchError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	_, err := drainPages(context.Background(), "list_all_test", 5, func(_ context.Context, number int) (Page[int], error) {
		if number == 1 {
			return Page[int]{}, want
		}
		return Page[int]{Content: []int{number}, TotalPages: 3}, nil
	})
	if !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}

// TestDrainPagesLogsTruncation swaps the global logger, so it does not run
// in parallel.
func TestDrainPagesLogsTruncation(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(previous) })

	calls := 0
	got, err := drainPages(context.Background(), "list_all_test", 2, func(_ context.Context, number int) (Page[int], error) {
		calls++
		return Page[int]{Content: []int{number}, TotalPages: 10, Number: number}, nil
	})
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if calls != 2 || len(got) != 2 {
		t.Fatalf("calls = %d rows = %d, want 2 and 2", calls, len(got))
	}
	if out := buf.String(); !strings.Contains(out, "list_all_test") || !strings.Contains(out, "truncated") {
		t.Fatalf("expected truncation log, got %q", out)
	}
}
