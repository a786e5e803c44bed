// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package scoring

import (
	"math"
	"strings"

	"github.com/aubertine/cinecanon/internal/catalog"
)

// masterAuteurs and establishedAuteurs drive the auteur-importance
// sub-score. Lookup is by substring so "Andrei Tarkovsky (uncredited)"
// still resolves.
var masterAuteurs = []string{
	"Robert Bresson", "Andrei Tarkovsky", "Carl Theodor Dreyer", "Yasujirō Ozu",
	"Ingmar Bergman", "Akira Kurosawa", "Jean-Luc Godard", "François Truffaut",
	"Michelangelo Antonioni", "Federico Fellini", "Luis Buñuel", "Orson Welles",
	"Stanley Kubrick", "Terrence Malick", "Béla Tarr",
	"Abbas Kiarostami", "Wong Kar-wai", "Edward Yang", "Hou Hsiao-hsien",
	"Krzysztof Kieślowski", "Jean-Pierre Melville", "Chris Marker", "Chantal Akerman",
}

var establishedAuteurs = []string{
	"David Lynch", "Pedro Almodóvar", "Wes Anderson", "Paul Thomas Anderson",
	"Dardenne", "Michael Haneke", "Claire Denis", "Apichatpong Weerasethakul",
	"Jafar Panahi", "Kelly Reichardt", "Carlos Reygadas", "Lucrecia Martel",
	"Pedro Costa", "Tsai Ming-liang", "Nuri Bilge Ceylan", "Aki Kaurismäki",
}

// innovativeTags is the tag subset that signals formal experimentation.
var innovativeTags = []string{"surreal", "enigmatic", "fragmented", "dreamlike", "minimalist"}

// CanonBreakdown itemizes the canon sub-scores for diagnostics.
type CanonBreakdown struct {
	CriticalConsensus    float64 `json:"criticalConsensus"`
	HistoricalImportance float64 `json:"historicalImportance"`
	AuteurImportance     float64 `json:"auteurImportance"`
	FormalInnovation     float64 `json:"formalInnovation"`
	CulturalInfluence    float64 `json:"culturalInfluence"`
	Total                int     `json:"total"`
}

// BaseCanonScore estimates a film's canonical importance in [0, 100],
// independent of any per-request context.
func (s *Scorer) BaseCanonScore(f *catalog.Film) int {
	return s.CanonBreakdown(f).Total
}

// CanonBreakdown computes the five sub-scores and the blended total.
// Pre-set formalInnovation/culturalInfluence values on the record supersede
// the heuristics, letting upstream curation override them.
func (s *Scorer) CanonBreakdown(f *catalog.Film) CanonBreakdown {
	b := CanonBreakdown{
		CriticalConsensus:    s.CriticalConsensus(f),
		HistoricalImportance: s.HistoricalImportance(f),
		AuteurImportance:     s.AuteurImportance(f),
		FormalInnovation:     float64(f.FormalInnovation),
		CulturalInfluence:    float64(f.CulturalInfluence),
	}
	if f.FormalInnovation == 0 {
		b.FormalInnovation = s.FormalInnovation(f)
	}
	if f.CulturalInfluence == 0 {
		b.CulturalInfluence = s.CulturalInfluence(f)
	}

	w := s.cfg.CanonWeights
	blended := w.CriticalConsensus*b.CriticalConsensus +
		w.HistoricalImportance*b.HistoricalImportance +
		w.AuteurImportance*b.AuteurImportance +
		w.FormalInnovation*b.FormalInnovation +
		w.CulturalInfluence*b.CulturalInfluence
	if blended > 100 {
		blended = 100
	}
	b.Total = int(math.Round(blended))
	return b
}

// CriticalConsensus scales the 0-10 vote average to 0-100, weighted by a
// reliability multiplier that grows with vote count and saturates at 5000
// votes: 0.7 + 0.3*min(count/5000, 1).
func (s *Scorer) CriticalConsensus(f *catalog.Film) float64 {
	voteScore := f.VoteAverage * 10

	countWeight := float64(f.VoteCount) / 5000
	if countWeight > 1 {
		countWeight = 1
	}
	return voteScore * (0.7 + 0.3*countWeight)
}

// HistoricalImportance combines the editorial tier, an age bonus against
// the configured reference year, and festival wins. Clamped to 100.
func (s *Scorer) HistoricalImportance(f *catalog.Film) float64 {
	score := 30.0
	switch f.Tier {
	case catalog.TierCanon:
		score = 70
	case catalog.TierDirector:
		score = 50
	}

	age := 0
	if f.Year != 0 {
		age = s.cfg.ReferenceYear - f.Year
	}
	switch {
	case age > 70:
		score += 20
	case age > 50:
		score += 15
	case age > 30:
		score += 10
	case age > 10:
		score += 5
	}

	if n := len(f.FestivalWins); n > 0 {
		bonus := float64(n * 5)
		if bonus > 10 {
			bonus = 10
		}
		score += bonus
	}

	if score > 100 {
		score = 100
	}
	return score
}

// AuteurImportance looks the primary director up against the auteur lists:
// master 100, established 75, unknown 50, no director listed 25.
func (s *Scorer) AuteurImportance(f *catalog.Film) float64 {
	director := f.PrimaryDirector()
	if director == "" {
		return 25
	}
	if matchesAuteur(director, masterAuteurs) {
		return 100
	}
	if matchesAuteur(director, establishedAuteurs) {
		return 75
	}
	return 50
}

func matchesAuteur(director string, list []string) bool {
	for _, name := range list {
		if strings.Contains(director, name) {
			return true
		}
	}
	return false
}

// FormalInnovation is the heuristic fallback when the record carries no
// curated value: +15 per innovative derived tag, +20 for pre-1940 cinema,
// +10 for post-1960 documentary. Clamped to 100.
func (s *Scorer) FormalInnovation(f *catalog.Film) float64 {
	score := 0.0
	for _, tag := range f.DerivedTags {
		for _, innovative := range innovativeTags {
			if tag == innovative {
				score += 15
				break
			}
		}
	}

	if f.Year != 0 && f.Year < 1940 {
		score += 20
	}
	if f.Year > 1960 && hasGenre(f.Genres, "Documentary") {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// CulturalInfluence is the heuristic fallback when the record carries no
// curated value: vote-count reach, tier significance, contemporary impact
// and enduring-classic bonuses. Clamped to 100.
func (s *Scorer) CulturalInfluence(f *catalog.Film) float64 {
	score := 0.0
	switch {
	case f.VoteCount > 10000:
		score += 30
	case f.VoteCount > 5000:
		score += 20
	case f.VoteCount > 1000:
		score += 10
	}

	switch f.Tier {
	case catalog.TierCanon:
		score += 40
	case catalog.TierDirector:
		score += 20
	}

	if f.Year > 2010 && f.VoteAverage > 7.5 {
		score += 20
	}
	if f.Year != 0 && f.Year < 1980 && f.VoteAverage > 7.0 {
		score += 30
	}

	if score > 100 {
		score = 100
	}
	return score
}

func hasGenre(genres []string, want string) bool {
	for _, g := range genres {
		if g == want {
			return true
		}
	}
	return false
}
