// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package catalog defines the film record shape shared by the scoring and
// discovery packages, the JSON codec for catalog files, and an in-memory
// store used by the CLI and by tests.
//
// The core scoring functions treat a Film as read-only input owned by an
// external persistence collaborator. Missing numeric fields default to
// zero and missing lists to empty; Normalize applies the documented
// defaults so downstream code never has to guard against malformed records.
package catalog
