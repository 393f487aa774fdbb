package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	APIURL string `env:"CMD_TEST_API_URL" envDefault:"http://localhost:8080"`
	Addr   string `env:"CMD_TEST_ADDR" envDefault:":8082"`
}

func TestParseConfigReadsEnvThenFlags(t *testing.T) {
	t.Setenv("CMD_TEST_API_URL", "http://api:9000")
	t.Setenv("CMD_TEST_ADDR", ":9001")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "api url")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "addr")

	if err := ParseArgs(fs, []string{"-addr", ":9002"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Addr != ":9002" {
		t.Fatalf("expected flag value for addr, got %q", cfg.Addr)
	}
	if cfg.APIURL != "http://api:9000" {
		t.Fatalf("expected env api url, got %q", cfg.APIURL)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryValidatesInput(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), " ", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected error for empty service name")
	}
	if err := RunWithTelemetry(context.Background(), ServiceAdmin, nil); err == nil {
		t.Fatal("expected error for nil run function")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("CONECTA_REPARO_OTEL_ENDPOINT", "")

	want := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceAdmin, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run to be called")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
