// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

// Package enrich computes the derived fields of catalog films: style
// tags, mood vectors, and the arthouse and base canon scores. It is
// the ingestion-time counterpart of the discovery engine, run when a
// catalog is seeded or migrated.
package enrich

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/aubertine/cinecanon/internal/catalog"
	"github.com/aubertine/cinecanon/internal/metrics"
	"github.com/aubertine/cinecanon/internal/mood"
	"github.com/aubertine/cinecanon/internal/scoring"
	"github.com/aubertine/cinecanon/internal/tagging"
)

// Enricher computes derived film fields. Safe for concurrent use; each
// call only touches its own film argument.
type Enricher struct {
	scorer  *scoring.Scorer
	logger  zerolog.Logger
	workers int
}

// NewEnricher creates an enricher. workers bounds EnrichAll
// concurrency; values below 1 use the number of CPUs.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEnricher(scorer *scoring.Scorer, logger zerolog.Logger, workers int) *Enricher {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Enricher{
		scorer:  scorer,
		logger:  logger.With().Str("component", "enrich").Logger(),
		workers: workers,
	}
}

// Enrich computes derived fields for one film in place: normalization,
// style tags, mood vector, arthouse score, base canon score. Pre-set
// formal innovation and cultural influence curation values survive;
// the scorer only recomputes them when zero. Idempotent for identical
// source fields.
func (e *Enricher) Enrich(f *catalog.Film) {
	f.Normalize()

	f.DerivedTags = tagging.Classify(tagging.Input{
		Synopsis: f.Synopsis,
		Keywords: f.Keywords,
		Genres:   f.Genres,
	})
	f.Moods = mood.Assign(f.DerivedTags)
	f.ArthouseScore = e.scorer.ArthouseScore(f)
	f.BaseCanonScore = e.scorer.BaseCanonScore(f)
}

// EnrichAll enriches every film using a bounded worker pool. Returns
// the number of films enriched; stops early when ctx is canceled and
// returns its error alongside the partial count.
func (e *Enricher) EnrichAll(ctx context.Context, films []*catalog.Film) (int, error) {
	start := time.Now()

	jobs := make(chan *catalog.Film)
	var enriched atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				e.Enrich(f)
				enriched.Add(1)
			}
		}()
	}

	var err error
feed:
	for _, f := range films {
		select {
		case jobs <- f:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	n := int(enriched.Load())
	metrics.RecordEnrichment(time.Since(start), n, len(films)-n)
	e.logger.Info().
		Int("films", len(films)).
		Int("enriched", n).
		Int("workers", e.workers).
		Dur("elapsed", time.Since(start)).
		Msg("catalog enrichment finished")

	return n, err
}
