// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package scoring

import "github.com/aubertine/cinecanon/internal/catalog"

// arthouseCountries awards a bonus per country of origin. USA gets a flat
// -10, any other country not listed here gets +8.
var arthouseCountries = map[string]int{
	"France":         15,
	"Italy":          15,
	"Japan":          15,
	"Iran":           15,
	"South Korea":    15,
	"Germany":        12,
	"Russia":         12,
	"Sweden":         12,
	"Poland":         12,
	"Taiwan":         12,
	"Spain":          10,
	"China":          10,
	"Brazil":         10,
	"Mexico":         10,
	"Argentina":      10,
	"United Kingdom": 8,
	"India":          8,
}

// arthouseGenres and mainstreamGenres adjust the genre term. The summed
// genre score is clamped to [-10, 20].
var arthouseGenres = map[string]int{
	"Drama":       10,
	"Documentary": 8,
	"History":     8,
	"War":         6,
	"Music":       6,
	"Romance":     4,
}

var mainstreamGenres = map[string]int{
	"Action":          -10,
	"Adventure":       -10,
	"Science Fiction": -10,
	"Fantasy":         -8,
	"Animation":       -5,
	"Comedy":          -3,
}

// arthouseTagBonus awards per derived tag, capped at 20 total. The table
// has no negative entries, so no floor is needed.
var arthouseTagBonus = map[string]int{
	"contemplative": 5,
	"existential":   5,
	"slow":          5,
	"austere":       5,
	"poetic":        4,
	"minimalist":    4,
	"dreamlike":     3,
	"surreal":       3,
	"enigmatic":     3,
	"lyrical":       3,
	"fragmented":    3,
	"psychological": 2,
	"intimate":      2,
	"melancholic":   2,
}

// ArthouseBreakdown itemizes the arthouse score for diagnostics. Total
// always equals ArthouseScore for the same film.
type ArthouseBreakdown struct {
	Popularity  int `json:"popularity"`
	VotePattern int `json:"votePattern"`
	Genre       int `json:"genre"`
	Tags        int `json:"tags"`
	Country     int `json:"country"`
	Total       int `json:"total"`
}

// ArthouseScore estimates how arthouse a film is from its metadata, in
// [0, 100]. Higher means more arthouse. The five terms are additive; only
// the genre and tag terms are clamped individually, the popularity, vote
// and country terms rely on the final clamp alone. That asymmetry only
// shows in the breakdown diagnostic, never in the total, and is preserved
// as intentional tuning.
func (s *Scorer) ArthouseScore(f *catalog.Film) int {
	b := s.ArthouseBreakdown(f)
	return b.Total
}

// ArthouseBreakdown computes the per-term diagnostic view of the arthouse
// score.
func (s *Scorer) ArthouseBreakdown(f *catalog.Film) ArthouseBreakdown {
	b := ArthouseBreakdown{
		Popularity:  popularityTerm(f.Popularity),
		VotePattern: votePatternTerm(f.VoteAverage, f.VoteCount),
		Genre:       genreTerm(f.Genres),
		Tags:        tagTerm(f.DerivedTags),
		Country:     countryTerm(f.Country),
	}
	b.Total = clampInt(b.Popularity+b.VotePattern+b.Genre+b.Tags+b.Country, 0, 100)
	return b
}

// popularityTerm: lower popularity is a proxy for niche appeal. Max 25.
func popularityTerm(popularity float64) int {
	switch {
	case popularity < 20:
		return 25
	case popularity < 50:
		return 15
	case popularity < 100:
		return 5
	default:
		return 0
	}
}

// votePatternTerm: high average with a relatively small audience signals
// critical-but-niche reception. Max 20; thresholds checked in order, first
// match wins.
func votePatternTerm(avg float64, count int) int {
	switch {
	case avg >= 7.5 && count < 5000:
		return 20
	case avg >= 7.0 && count < 10000:
		return 15
	case avg >= 6.5:
		return 10
	case avg >= 6.0:
		return 5
	default:
		return 0
	}
}

func genreTerm(genres []string) int {
	score := 0
	for _, g := range genres {
		score += arthouseGenres[g]
		score += mainstreamGenres[g]
	}
	return clampInt(score, -10, 20)
}

func tagTerm(tags []string) int {
	score := 0
	for _, t := range tags {
		score += arthouseTagBonus[t]
	}
	if score > 20 {
		score = 20
	}
	return score
}

func countryTerm(country string) int {
	switch {
	case country == "United States of America" || country == "USA":
		return -10
	case country == "":
		return 0
	default:
		if bonus, ok := arthouseCountries[country]; ok {
			return bonus
		}
		// Any other non-USA country gets some points.
		return 8
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
