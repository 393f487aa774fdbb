package otel

import (
	"context"
	"testing"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv(envEndpoint, "")
	t.Setenv(envEnabled, "")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupNoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv(envEndpoint, "http://localhost:4318")
	t.Setenv(envEnabled, "false")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; nothing is exported before shutdown.
	t.Setenv(envEndpoint, "http://192.0.2.1:4318")
	t.Setenv(envEnabled, "")
	t.Setenv(envRatio, "0.5")

	shutdown, err := Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestParseRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{raw: "", ok: false},
		{raw: "abc", ok: false},
		{raw: "0", ok: false},
		{raw: "1", ok: false},
		{raw: " 0.25 ", want: 0.25, ok: true},
	}
	for _, tc := range tests {
		got, ok := parseRatio(tc.raw)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseRatio(%q) = (%v, %v), want (%v, %v)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}
