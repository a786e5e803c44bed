// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package catalog

import (
	"time"

	"github.com/aubertine/cinecanon/internal/mood"
)

// Tier classifies a film's editorial provenance. It is assigned upstream by
// curation, never computed here.
const (
	// TierCanon marks hand-curated canonical films.
	TierCanon = 1
	// TierDirector marks films added by expanding a director's filmography.
	TierDirector = 2
	// TierDiscovery marks films from broad algorithmic discovery.
	TierDiscovery = 3
)

// DefaultDepthScore is assumed when a record carries no depth score.
const DefaultDepthScore = 50

// Film is one catalog record. Field names follow the upstream document
// schema, including the snake_case popularity signals.
type Film struct {
	// ID is the opaque record identity. It seeds the daily rotation noise,
	// so it must be stable across requests.
	ID string `json:"id"`

	Title string `json:"title"`
	Year  int    `json:"year"`

	// Decade is floor(Year/10)*10. Derived by Normalize when zero.
	Decade int `json:"decade,omitempty"`

	Synopsis  string   `json:"synopsis,omitempty"`
	Keywords  []string `json:"keywords,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Country   string   `json:"country,omitempty"`
	Runtime   int      `json:"runtime,omitempty"`
	PosterURL string   `json:"posterUrl,omitempty"`

	// Directors is ordered; the first entry is the primary director.
	Directors []string `json:"directors,omitempty"`

	// Popularity signals from upstream metadata.
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`

	// Tier is the editorial provenance bucket (TierCanon..TierDiscovery).
	Tier int `json:"tier"`

	// Derived fields, written at enrichment time and read by ranking.
	DerivedTags    []string    `json:"derivedTags,omitempty"`
	Moods          mood.Vector `json:"moods,omitempty"`
	ArthouseScore  int         `json:"arthouseScore"`
	BaseCanonScore int         `json:"baseCanonScore"`

	// DepthScore defaults to DefaultDepthScore when zero.
	DepthScore int `json:"depthScore,omitempty"`

	// FormalInnovation and CulturalInfluence may be pre-set by upstream
	// curation; zero means "recompute from the heuristic".
	FormalInnovation  int `json:"formalInnovation,omitempty"`
	CulturalInfluence int `json:"culturalInfluence,omitempty"`

	FestivalWins []string `json:"festivalWins,omitempty"`
	Movements    []string `json:"movements,omitempty"`

	// Serving side effects, owned by the persistence collaborator.
	ShowCount   int        `json:"showCount"`
	LastShownAt *time.Time `json:"lastShownAt,omitempty"`
}

// DepthOrDefault returns the film's depth score, substituting the default
// for absent values.
func (f *Film) DepthOrDefault() int {
	if f.DepthScore == 0 {
		return DefaultDepthScore
	}
	return f.DepthScore
}

// PrimaryDirector returns the first-listed director, or "" if none.
func (f *Film) PrimaryDirector() string {
	if len(f.Directors) == 0 {
		return ""
	}
	return f.Directors[0]
}

// Normalize applies the documented defaults in place: negative counters are
// zeroed, nil lists become empty, nil moods become an empty vector, and the
// decade is derived from the year when unset.
func (f *Film) Normalize() {
	if f.Popularity < 0 {
		f.Popularity = 0
	}
	if f.VoteCount < 0 {
		f.VoteCount = 0
	}
	if f.ShowCount < 0 {
		f.ShowCount = 0
	}
	if f.Keywords == nil {
		f.Keywords = []string{}
	}
	if f.Genres == nil {
		f.Genres = []string{}
	}
	if f.Directors == nil {
		f.Directors = []string{}
	}
	if f.DerivedTags == nil {
		f.DerivedTags = []string{}
	}
	if f.FestivalWins == nil {
		f.FestivalWins = []string{}
	}
	if f.Movements == nil {
		f.Movements = []string{}
	}
	if f.Moods == nil {
		f.Moods = mood.Vector{}
	}
	if f.Decade == 0 && f.Year != 0 {
		f.Decade = DecadeOf(f.Year)
	}
}

// DecadeOf returns the decade bucket for a year, e.g. 1967 -> 1960.
func DecadeOf(year int) int {
	return (year / 10) * 10
}
