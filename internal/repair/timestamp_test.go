package repair

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2025-10-10T10:10:10Z", want: time.Date(2025, 10, 10, 10, 10, 10, 0, time.UTC)},
		{raw: "2025-10-10T10:10:10.25", want: time.Date(2025, 10, 10, 10, 10, 10, 250000000, time.UTC)},
		{raw: "2025-10-10T08:30", want: time.Date(2025, 10, 10, 8, 30, 0, 0, time.UTC)},
		{raw: "2025-10-10", want: time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		got, err := ParseTimestamp(tc.raw)
		if err != nil {
			t.Fatalf("ParseTimestamp(%q): %v", tc.raw, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("ParseTimestamp(%q) = %v, want %v", tc.raw, got.Time, tc.want)
		}
	}

	if got, err := ParseTimestamp(""); err != nil || !got.IsZero() {
		t.Fatalf("empty input = %v, %v", got, err)
	}
	if _, err := ParseTimestamp("yesterday"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTimestampJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		At Timestamp `json:"at"`
	}
	encoded, err := json.Marshal(payload{At: NewTimestamp(time.Date(2025, 1, 2, 3, 4, 5, 0, time.FixedZone("BRT", -3*3600)))})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"at":"2025-01-02T06:04:05Z"}` {
		t.Fatalf("unexpected encoding %s", encoded)
	}

	zero, err := json.Marshal(payload{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(zero) != `{"at":null}` {
		t.Fatalf("unexpected zero encoding %s", zero)
	}

	var decoded payload
	if err := json.Unmarshal([]byte(`{"at":null}`), &decoded); err != nil || !decoded.At.IsZero() {
		t.Fatalf("decode null = %v, %v", decoded.At, err)
	}
	if err := json.Unmarshal([]byte(`{"at":42}`), &decoded); err == nil {
		t.Fatal("expected error for numeric timestamp")
	}
}
