// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package mood derives weighted mood vectors from a film's style tags.
//
// The mood vocabulary is fixed at fifteen labels. A static co-occurrence
// table maps every style tag to a handful of moods with fixed weights;
// Assign accumulates the contributions of a film's tags (capped at 1.0 per
// mood) and normalizes against the strongest mood, so any non-empty tag set
// yields at least one mood with weight exactly 1.0.
//
// Vector absorbs both external serializations of the moods field: a JSON
// object keyed by mood name and an ordered list of mood/weight pairs.
package mood
