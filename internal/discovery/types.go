// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package discovery

import (
	"errors"
	"fmt"

	"github.com/aubertine/cinecanon/internal/catalog"
)

// ErrInvalidRequest is the sentinel for client input errors. Use
// errors.Is to distinguish them from candidate-fetch failures.
var ErrInvalidRequest = errors.New("invalid discovery request")

// InvalidRequestError carries the reason a request was rejected.
// It unwraps to ErrInvalidRequest.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid discovery request: %s", e.Reason)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// SortOption selects the explore context ordering.
type SortOption string

const (
	// SortCurated orders by explore score. The default.
	SortCurated SortOption = "curated"

	// SortInfluence orders by base canon score.
	SortInfluence SortOption = "influence"

	// SortGems orders by rarity boost, surfacing rarely shown films.
	SortGems SortOption = "gems"

	// SortNew orders by recency boost plus a festival-win bonus.
	SortNew SortOption = "new"
)

// ExploreRequest ranks the full catalog.
type ExploreRequest struct {
	// Limit is the page size. Zero means the configured default;
	// values above the configured maximum are capped.
	Limit int `json:"limit" validate:"omitempty,min=1"`

	// Page is 1-based. Zero means the first page.
	Page int `json:"page" validate:"omitempty,min=1"`

	// SortBy selects the ordering. Empty means curated.
	SortBy SortOption `json:"sortBy" validate:"omitempty,oneof=curated influence gems new"`
}

// DecadeRequest ranks films of a single decade.
type DecadeRequest struct {
	// Decade is the decade start year, e.g. 1960.
	Decade int `json:"decade" validate:"required,decade"`

	Limit int `json:"limit" validate:"omitempty,min=1"`
	Page  int `json:"page" validate:"omitempty,min=1"`
}

// MoodRequest ranks films against a selected mood set.
type MoodRequest struct {
	// Moods are mood vocabulary names. At least one is required.
	Moods []string `json:"moods" validate:"required,min=1,max=15"`

	Limit int `json:"limit" validate:"omitempty,min=1"`
	Page  int `json:"page" validate:"omitempty,min=1"`
}

// CombinedRequest ranks films of one decade against a mood set.
type CombinedRequest struct {
	Decade int      `json:"decade" validate:"required,decade"`
	Moods  []string `json:"moods" validate:"required,min=1,max=15"`

	Limit int `json:"limit" validate:"omitempty,min=1"`
	Page  int `json:"page" validate:"omitempty,min=1"`
}

// RankedFilm is one result item with the context score that ranked it.
type RankedFilm struct {
	Film  *catalog.Film `json:"film"`
	Score float64       `json:"score"`
}

// Response is the result of one ranking request. Total and TotalPages
// count the whole ranked (and filtered) set before pagination.
type Response struct {
	// RequestID is a unique identifier for tracing.
	RequestID string `json:"requestId"`

	// Context is the ranking context: explore, decade, mood, combined.
	Context string `json:"context"`

	Items      []RankedFilm `json:"items"`
	Page       int          `json:"page"`
	TotalPages int          `json:"totalPages"`
	Total      int          `json:"total"`

	// Echoes of request parameters, set per context.
	SortBy SortOption `json:"sortBy,omitempty"`
	Decade int        `json:"decade,omitempty"`
	Moods  []string   `json:"moods,omitempty"`
}
