// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package scoring computes the two per-film composite scores cached on the
// catalog record: the arthouse suitability score and the base canon score.
//
// Both are deterministic functions of the film's metadata. The arthouse
// score blends five additive terms (popularity, vote pattern, genre, derived
// tags, country of origin) and clamps the sum to [0, 100]. The base canon
// score is a weighted blend of five sub-scores (critical consensus,
// historical importance, auteur importance, formal innovation, cultural
// influence), rounded and capped at 100.
//
// All lookup tables are immutable package data; tunable knobs (blend
// weights, reference year) live in Config so a Scorer stays pure and
// trivially testable.
package scoring
