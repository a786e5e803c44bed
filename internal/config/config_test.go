// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsValidate(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Discovery.MinContextScore != 30 {
		t.Errorf("MinContextScore = %v, want 30", cfg.Discovery.MinContextScore)
	}
	if cfg.Scoring.ReferenceYear != 2025 {
		t.Errorf("scoring ReferenceYear = %d, want 2025", cfg.Scoring.ReferenceYear)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("logging defaults = %s/%s, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadDefaultsOnly(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Discovery.DefaultLimit != 60 {
		t.Errorf("DefaultLimit = %d, want 60", cfg.Discovery.DefaultLimit)
	}
	if cfg.Catalog.Path != "catalog.json" {
		t.Errorf("catalog path = %q, want catalog.json", cfg.Catalog.Path)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cinecanon.yaml")
	content := []byte(`
catalog:
  path: /data/films.json
discovery:
  default_limit: 25
logging:
  level: debug
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != "/data/films.json" {
		t.Errorf("catalog path = %q, want file value", cfg.Catalog.Path)
	}
	if cfg.Discovery.DefaultLimit != 25 {
		t.Errorf("DefaultLimit = %d, want 25 from file", cfg.Discovery.DefaultLimit)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug from file", cfg.Logging.Level)
	}
	// Untouched values keep their defaults.
	if cfg.Discovery.MaxLimit != 500 {
		t.Errorf("MaxLimit = %d, want default 500", cfg.Discovery.MaxLimit)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cinecanon.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DISCOVERY_MIN_CONTEXT_SCORE", "40")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("log level = %q, want env override warn", cfg.Logging.Level)
	}
	if cfg.Discovery.MinContextScore != 40 {
		t.Errorf("MinContextScore = %v, want env override 40", cfg.Discovery.MinContextScore)
	}
}

func TestUnmappedEnvIgnored(t *testing.T) {
	t.Setenv("PATH_INFO", "garbage")
	t.Setenv("RANDOM_SETTING", "true")

	if _, err := Load(); err != nil {
		t.Fatalf("Load with unrelated env vars: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log format")
	}

	cfg = defaultConfig()
	cfg.Discovery.MinContextScore = 150
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range threshold")
	}

	cfg = defaultConfig()
	cfg.Enrich.Workers = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative workers")
	}
}
