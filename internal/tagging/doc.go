// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package tagging assigns descriptive style tags to films by rule-based
// keyword matching against free-text metadata.
//
// The tag vocabulary is fixed at fifteen labels. Each label carries a static
// set of keyword stems; a film's synopsis, keywords and genres are combined
// into one lowercase string and every word-boundary occurrence of a stem
// counts toward that label's match score. Labels with at least one match are
// ranked by match count and the top five become the film's derived tags.
//
// Films whose text matches nothing fall back to a small genre mapping, and
// ultimately to the single tag "contemplative", so every film carries at
// least one tag.
//
// Classification is a pure function of its inputs: no I/O, no randomness,
// safe for concurrent use.
package tagging
