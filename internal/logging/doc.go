// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package logging provides centralized zerolog-based structured logging
// for Cinecanon.
//
// The package wraps a single global zerolog.Logger so every component
// logs through the same configuration, with JSON output for production
// and console output for development.
//
// # Quick Start
//
//	import "github.com/aubertine/cinecanon/internal/logging"
//
//	// Initialize at application startup
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	// Log messages
//	logging.Info().Msg("Catalog loaded")
//	logging.Error().Err(err).Msg("Enrichment failed")
//
//	// With context (request ID)
//	logging.Ctx(ctx).Info().Str("context", "mood").Msg("Ranking request")
//
// # Configuration
//
//   - Level: trace, debug, info, warn, error, fatal (default: info)
//   - Format: json or console (default: json)
//   - Caller: include caller file and line (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("film", id).Msg("enriched")  // Correct
//	logging.Info().Str("film", id)                  // WRONG - log not emitted
//
// Prefer structured fields over string formatting:
//
//	logging.Info().Int("films", n).Msg("catalog loaded")     // Correct
//	logging.Info().Msgf("catalog loaded with %d films", n)   // Avoid
package logging
