// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package discovery implements the film discovery ranking engine.
//
// The engine performs a stateless per-request scoring pass over a
// candidate set supplied by a Store, blending each film's base canon
// score with recency, rarity, mood affinity, and a small day-seeded
// rotation noise. Four ranking contexts are exposed:
//
//   - Explore: the full catalog under the default "curated" ordering,
//     with alternate sort modes (influence, gems, new)
//   - Decade: films of one decade, ranked by influence within it
//   - Mood: films matching a selected mood set, below-threshold
//     matches dropped
//   - Combined: decade and mood restrictions together
//
// Every context paginates after sorting and reports totals counted
// before pagination.
//
// The engine never blocks on persistence. Show counts for served films
// are bumped through a ShowRecorder collaborator asynchronously, behind
// a circuit breaker; recorder failures are logged and never affect the
// response.
//
//	store := catalog.NewMemoryStore(films)
//	eng, err := discovery.NewEngine(nil, logger, store, store)
//	resp, err := eng.Explore(ctx, discovery.ExploreRequest{Limit: 20})
//
// All score computations are pure and the engine is safe for
// concurrent use.
package discovery
