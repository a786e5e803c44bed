// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package catalog

import (
	"context"
	"sync"
	"time"
)

// MemoryStore holds a catalog in memory and satisfies the discovery
// package's Store and ShowRecorder interfaces. It backs the CLI, which
// treats a catalog file as its persistence collaborator, and the tests.
//
// Show counts are approximate by contract: concurrent bumps may race with
// readers and exactness is not required, but the map itself is guarded for
// memory safety.
type MemoryStore struct {
	mu    sync.RWMutex
	films []*Film
	byID  map[string]*Film
}

// NewMemoryStore builds a store over the given films.
func NewMemoryStore(films []*Film) *MemoryStore {
	byID := make(map[string]*Film, len(films))
	for _, f := range films {
		byID[f.ID] = f
	}
	return &MemoryStore{films: films, byID: byID}
}

// AllFilms returns every film in the store.
func (s *MemoryStore) AllFilms(_ context.Context) ([]*Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Film, len(s.films))
	copy(out, s.films)
	return out, nil
}

// FilmsByDecade returns the films whose decade matches.
func (s *MemoryStore) FilmsByDecade(_ context.Context, decade int) ([]*Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*Film
	for _, f := range s.films {
		if f.Decade == decade {
			out = append(out, f)
		}
	}
	return out, nil
}

// RecordShown bumps showCount and lastShownAt for the served films.
func (s *MemoryStore) RecordShown(_ context.Context, ids []string, shownAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		f, ok := s.byID[id]
		if !ok {
			continue
		}
		f.ShowCount++
		t := shownAt
		f.LastShownAt = &t
	}
	return nil
}

// Films returns the underlying slice for callers that need to persist the
// catalog back to disk.
func (s *MemoryStore) Films() []*Film {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.films
}
