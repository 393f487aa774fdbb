package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Addr    string        `env:"CONECTA_REPARO_TEST_ADDR" envDefault:":8082"`
	Timeout time.Duration `env:"CONECTA_REPARO_TEST_TIMEOUT" envDefault:"5s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != ":8082" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestParseEnvFromMap(t *testing.T) {
	t.Parallel()

	var cfg envTestConfig
	err := ParseEnvFrom(&cfg, map[string]string{
		"CONECTA_REPARO_TEST_ADDR":    "localhost:9000",
		"CONECTA_REPARO_TEST_TIMEOUT": "250ms",
	})
	if err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9000" || cfg.Timeout != 250*time.Millisecond {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("CONECTA_REPARO_TEST_TIMEOUT", "soon")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
