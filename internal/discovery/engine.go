// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/aubertine/cinecanon/internal/catalog"
	"github.com/aubertine/cinecanon/internal/logging"
	"github.com/aubertine/cinecanon/internal/metrics"
	"github.com/aubertine/cinecanon/internal/mood"
	"github.com/aubertine/cinecanon/internal/validation"
)

// recordTimeout bounds one fire-and-forget show recording attempt.
const recordTimeout = 5 * time.Second

// Store supplies ranking candidates. Typically backed by
// catalog.MemoryStore; the engine never mutates returned films.
type Store interface {
	// AllFilms returns every candidate film.
	AllFilms(ctx context.Context) ([]*catalog.Film, error)

	// FilmsByDecade returns candidates whose decade equals decade.
	FilmsByDecade(ctx context.Context, decade int) ([]*catalog.Film, error)
}

// ShowRecorder persists serving side effects for films returned to a
// caller. Implementations increment show counts and stamp last-shown
// times; lost updates under concurrency are acceptable.
type ShowRecorder interface {
	RecordShown(ctx context.Context, ids []string, shownAt time.Time) error
}

// Engine ranks catalog films for discovery requests. It is safe for
// concurrent use; each request only reads the candidate set.
type Engine struct {
	config *Config
	logger zerolog.Logger
	store  Store

	// recorder is optional. When set, served film IDs are recorded
	// asynchronously behind the breaker.
	recorder ShowRecorder
	breaker  *gobreaker.CircuitBreaker[struct{}]

	// now supplies the request clock for recency and rotation noise.
	now func() time.Time

	// pending tracks in-flight show recordings so tests and shutdown
	// can drain them.
	pending sync.WaitGroup
}

// NewEngine creates a discovery engine. A nil cfg uses DefaultConfig.
// recorder may be nil to disable show recording.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger, store Store, recorder ShowRecorder) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, errors.New("store is required")
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "show-recorder",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String())
			metrics.SetCircuitBreakerState(name, breakerStateValue(to))
		},
	})

	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "discovery").Logger(),
		store:    store,
		recorder: recorder,
		breaker:  breaker,
		now:      time.Now,
	}, nil
}

// SetClock replaces the engine's clock. Intended for tests that need a
// fixed calendar day for rotation noise.
func (e *Engine) SetClock(now func() time.Time) {
	e.now = now
}

// Wait blocks until all in-flight show recordings complete. Call on
// shutdown or in tests.
func (e *Engine) Wait() {
	e.pending.Wait()
}

// Explore ranks the full catalog. The default curated ordering uses
// the explore score; SortBy selects an alternate ordering.
func (e *Engine) Explore(ctx context.Context, req ExploreRequest) (*Response, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordDiscoveryRequest("explore", "invalid", 0, 0)
		return nil, &InvalidRequestError{Reason: verr.Error()}
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = SortCurated
	}

	films, err := e.store.AllFilms(ctx)
	if err != nil {
		metrics.RecordDiscoveryRequest("explore", "error", 0, 0)
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	day := e.now()
	ranked := make([]RankedFilm, len(films))
	for i, f := range films {
		ranked[i] = RankedFilm{Film: f, Score: e.config.ExploreScore(f, day)}
	}
	e.applySort(ranked, sortBy)

	resp := e.respond(ctx, "explore", ranked, req.Page, req.Limit)
	resp.SortBy = sortBy

	metrics.RecordDiscoveryRequest("explore", "success", time.Since(start), len(films))
	e.logger.Debug().
		Str("request_id", resp.RequestID).
		Str("sort_by", string(sortBy)).
		Int("candidates", len(films)).
		Int("returned", len(resp.Items)).
		Msg("explore ranking served")

	return resp, nil
}

// Decade ranks films of one decade by their influence within it.
func (e *Engine) Decade(ctx context.Context, req DecadeRequest) (*Response, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordDiscoveryRequest("decade", "invalid", 0, 0)
		return nil, &InvalidRequestError{Reason: verr.Error()}
	}

	films, err := e.store.FilmsByDecade(ctx, req.Decade)
	if err != nil {
		metrics.RecordDiscoveryRequest("decade", "error", 0, 0)
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	maxInDecade := MaxCanonScore(films)
	ranked := make([]RankedFilm, len(films))
	for i, f := range films {
		ranked[i] = RankedFilm{Film: f, Score: e.config.DecadeScore(f, maxInDecade)}
	}
	sortByScore(ranked)

	resp := e.respond(ctx, "decade", ranked, req.Page, req.Limit)
	resp.Decade = req.Decade

	metrics.RecordDiscoveryRequest("decade", "success", time.Since(start), len(films))
	e.logger.Debug().
		Str("request_id", resp.RequestID).
		Int("decade", req.Decade).
		Int("candidates", len(films)).
		Int("returned", len(resp.Items)).
		Msg("decade ranking served")

	return resp, nil
}

// Mood ranks the catalog against a selected mood set, dropping films
// below the configured minimum context score.
func (e *Engine) Mood(ctx context.Context, req MoodRequest) (*Response, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordDiscoveryRequest("mood", "invalid", 0, 0)
		return nil, &InvalidRequestError{Reason: verr.Error()}
	}
	if err := checkMoodNames(req.Moods); err != nil {
		metrics.RecordDiscoveryRequest("mood", "invalid", 0, 0)
		return nil, err
	}

	films, err := e.store.AllFilms(ctx)
	if err != nil {
		metrics.RecordDiscoveryRequest("mood", "error", 0, 0)
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	ranked := make([]RankedFilm, 0, len(films))
	for _, f := range films {
		ranked = append(ranked, RankedFilm{Film: f, Score: e.config.MoodScore(f, req.Moods)})
	}
	ranked, rejected := e.filterThreshold(ranked)
	metrics.RecordThresholdRejections("mood", rejected)
	sortByScore(ranked)

	resp := e.respond(ctx, "mood", ranked, req.Page, req.Limit)
	resp.Moods = req.Moods

	metrics.RecordDiscoveryRequest("mood", "success", time.Since(start), len(films))
	e.logger.Debug().
		Str("request_id", resp.RequestID).
		Strs("moods", req.Moods).
		Int("candidates", len(films)).
		Int("rejected", rejected).
		Int("returned", len(resp.Items)).
		Msg("mood ranking served")

	return resp, nil
}

// Combined ranks films of one decade against a mood set, dropping
// films below the configured minimum context score.
func (e *Engine) Combined(ctx context.Context, req CombinedRequest) (*Response, error) {
	start := time.Now()

	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordDiscoveryRequest("combined", "invalid", 0, 0)
		return nil, &InvalidRequestError{Reason: verr.Error()}
	}
	if err := checkMoodNames(req.Moods); err != nil {
		metrics.RecordDiscoveryRequest("combined", "invalid", 0, 0)
		return nil, err
	}

	films, err := e.store.FilmsByDecade(ctx, req.Decade)
	if err != nil {
		metrics.RecordDiscoveryRequest("combined", "error", 0, 0)
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	ranked := make([]RankedFilm, 0, len(films))
	for _, f := range films {
		ranked = append(ranked, RankedFilm{Film: f, Score: e.config.CombinedScore(f, req.Moods, req.Decade)})
	}
	ranked, rejected := e.filterThreshold(ranked)
	metrics.RecordThresholdRejections("combined", rejected)
	sortByScore(ranked)

	resp := e.respond(ctx, "combined", ranked, req.Page, req.Limit)
	resp.Decade = req.Decade
	resp.Moods = req.Moods

	metrics.RecordDiscoveryRequest("combined", "success", time.Since(start), len(films))
	e.logger.Debug().
		Str("request_id", resp.RequestID).
		Int("decade", req.Decade).
		Strs("moods", req.Moods).
		Int("candidates", len(films)).
		Int("rejected", rejected).
		Int("returned", len(resp.Items)).
		Msg("combined ranking served")

	return resp, nil
}

// AvailableMoods returns the sorted union of mood names present across
// the candidate set, for building filter choices.
func (e *Engine) AvailableMoods(ctx context.Context) ([]string, error) {
	films, err := e.store.AllFilms(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	seen := make(map[string]struct{})
	for _, f := range films {
		for name := range f.Moods {
			seen[name] = struct{}{}
		}
	}

	moods := make([]string, 0, len(seen))
	for name := range seen {
		moods = append(moods, name)
	}
	sort.Strings(moods)
	return moods, nil
}

// respond paginates ranked results, fires the show recording, and
// assembles the response envelope.
func (e *Engine) respond(ctx context.Context, contextName string, ranked []RankedFilm, page, limit int) *Response {
	if limit <= 0 {
		limit = e.config.DefaultLimit
	}
	if limit > e.config.MaxLimit {
		limit = e.config.MaxLimit
	}
	if page <= 0 {
		page = 1
	}

	total := len(ranked)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := ranked[start:end]

	e.recordShown(ctx, items)

	return &Response{
		RequestID:  logging.GenerateRequestID(),
		Context:    contextName,
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// filterThreshold drops items scoring below the minimum context score
// and reports how many were rejected.
func (e *Engine) filterThreshold(ranked []RankedFilm) ([]RankedFilm, int) {
	kept := ranked[:0]
	for _, r := range ranked {
		if r.Score >= e.config.MinContextScore {
			kept = append(kept, r)
		}
	}
	return kept, len(ranked) - len(kept)
}

// recordShown bumps show counts for served films without blocking the
// response path. Failures are logged and counted, never returned.
func (e *Engine) recordShown(ctx context.Context, items []RankedFilm) {
	if e.recorder == nil || len(items) == 0 {
		return
	}

	ids := make([]string, len(items))
	for i, r := range items {
		ids[i] = r.Film.ID
	}
	shownAt := e.now()
	requestID := logging.RequestIDFromContext(ctx)

	e.pending.Add(1)
	go func() {
		defer e.pending.Done()

		// The response has already been assembled; the recording gets
		// its own deadline detached from the request context.
		rctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		_, err := e.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, e.recorder.RecordShown(rctx, ids, shownAt)
		})
		switch {
		case err == nil:
			metrics.RecordShowRecord("success")
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			metrics.RecordShowRecord("rejected")
			e.logger.Debug().
				Str("request_id", requestID).
				Int("films", len(ids)).
				Msg("show recording rejected by open breaker")
		default:
			metrics.RecordShowRecord("failure")
			e.logger.Warn().
				Err(err).
				Str("request_id", requestID).
				Int("films", len(ids)).
				Msg("show recording failed")
		}
	}()
}

// applySort orders explore results by the selected sort option.
func (e *Engine) applySort(ranked []RankedFilm, sortBy SortOption) {
	switch sortBy {
	case SortInfluence:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Film.BaseCanonScore > ranked[j].Film.BaseCanonScore
		})
	case SortGems:
		sort.SliceStable(ranked, func(i, j int) bool {
			return RarityBoost(ranked[i].Film.ShowCount) > RarityBoost(ranked[j].Film.ShowCount)
		})
	case SortNew:
		key := func(f *catalog.Film) float64 {
			return e.config.RecencyBoost(f.Year) + 5*float64(len(f.FestivalWins))
		}
		sort.SliceStable(ranked, func(i, j int) bool {
			return key(ranked[i].Film) > key(ranked[j].Film)
		})
	default:
		sortByScore(ranked)
	}
}

// sortByScore orders ranked items by descending context score.
func sortByScore(ranked []RankedFilm) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
}

// checkMoodNames rejects mood names outside the fixed vocabulary.
func checkMoodNames(names []string) error {
	for _, name := range names {
		if !mood.InVocabulary(name) {
			return &InvalidRequestError{Reason: fmt.Sprintf("unknown mood %q", name)}
		}
	}
	return nil
}

// breakerStateValue maps a breaker state onto the metrics gauge scale.
func breakerStateValue(s gobreaker.State) int {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	default:
		return 2
	}
}
