// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package config loads layered application configuration for Cinecanon:
// built-in defaults, an optional YAML file, and environment variable
// overrides, in ascending precedence.
package config

import (
	"fmt"

	"github.com/aubertine/cinecanon/internal/discovery"
	"github.com/aubertine/cinecanon/internal/scoring"
)

// Config is the full application configuration.
type Config struct {
	// Catalog locates the film catalog file.
	Catalog CatalogConfig `koanf:"catalog"`

	// Enrich tunes the enrichment pipeline.
	Enrich EnrichConfig `koanf:"enrich"`

	// Scoring holds the arthouse/canon scoring configuration.
	Scoring scoring.Config `koanf:"scoring"`

	// Discovery holds the ranking engine configuration.
	Discovery discovery.Config `koanf:"discovery"`

	// Logging configures the global logger.
	Logging LoggingConfig `koanf:"logging"`
}

// CatalogConfig locates catalog data.
type CatalogConfig struct {
	// Path is the JSON catalog file read at startup.
	Path string `koanf:"path"`
}

// EnrichConfig tunes the enrichment pipeline.
type EnrichConfig struct {
	// Workers bounds enrichment concurrency. Zero uses the CPU count.
	Workers int `koanf:"workers"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the full configuration tree.
func (c *Config) Validate() error {
	if c.Enrich.Workers < 0 {
		return fmt.Errorf("enrich.workers must be >= 0, got %d", c.Enrich.Workers)
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	if err := c.Discovery.Validate(); err != nil {
		return fmt.Errorf("discovery: %w", err)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
