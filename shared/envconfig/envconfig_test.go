package envconfig

import (
	"strings"
	"testing"
)

type testConfig struct {
	Width   int     `env:"TEST_WIDTH"`
	Overlay bool    `env:"TEST_OVERLAY"`
	Species string  `env:"TEST_SPECIES"`
	IdleTPS float64 `env:"TEST_IDLE_TPS"`
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg := testConfig{Width: 1280, Species: "bunny", IdleTPS: 15}

	if err := Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 1280 || cfg.Species != "bunny" || cfg.IdleTPS != 15 || cfg.Overlay {
		t.Fatalf("defaults changed: %+v", cfg)
	}
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PETHUB_TEST_WIDTH", "640")
	t.Setenv("PETHUB_TEST_OVERLAY", "true")
	t.Setenv("PETHUB_TEST_SPECIES", "cat")

	cfg := testConfig{Width: 1280, Species: "bunny"}
	if err := Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 640 || !cfg.Overlay || cfg.Species != "cat" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestParseIgnoresUnprefixed(t *testing.T) {
	t.Setenv("TEST_WIDTH", "1")

	cfg := testConfig{Width: 1280}
	if err := Parse(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Width != 1280 {
		t.Fatalf("width = %d, want 1280", cfg.Width)
	}
}

func TestParseError(t *testing.T) {
	t.Setenv("PETHUB_TEST_WIDTH", "wide")

	var cfg testConfig
	err := Parse(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
