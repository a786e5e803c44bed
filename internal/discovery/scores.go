// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package discovery

import (
	"time"

	"github.com/aubertine/cinecanon/internal/catalog"
	"github.com/aubertine/cinecanon/internal/mood"
)

// ExploreScore blends base canon score with recency, rarity, and the
// day-seeded rotation noise for the given calendar day.
func (c *Config) ExploreScore(f *catalog.Film, day time.Time) float64 {
	return c.Explore.BaseCanon*float64(f.BaseCanonScore) +
		c.Explore.Recency*c.RecencyBoost(f.Year) +
		c.Explore.Rarity*RarityBoost(f.ShowCount) +
		c.Explore.Rotation*RotationNoise(day, f.ID)
}

// DecadeScore blends base canon score with the film's influence within
// its decade and a movement representativeness bonus. maxInDecade is
// the highest base canon score among the decade's candidates; callers
// compute it once per request with MaxCanonScore.
func (c *Config) DecadeScore(f *catalog.Film, maxInDecade int) float64 {
	influence := float64(f.BaseCanonScore) / float64(maxInDecade) * 100

	movementBonus := 50.0
	if len(f.Movements) > 0 {
		movementBonus = 100
	}

	return c.Decade.BaseCanon*float64(f.BaseCanonScore) +
		c.Decade.Influence*influence +
		c.Decade.Movement*movementBonus
}

// MoodScore blends mood match strength with base canon score, depth,
// and rarity.
func (c *Config) MoodScore(f *catalog.Film, selected []string) float64 {
	match := mood.Match(f.Moods, selected)

	return c.Mood.MoodMatch*(match*100) +
		c.Mood.BaseCanon*float64(f.BaseCanonScore) +
		c.Mood.Depth*float64(f.DepthOrDefault()) +
		c.Mood.Rarity*RarityBoost(f.ShowCount)
}

// CombinedScore blends mood match with base canon score, period
// authenticity, and rarity. Films whose own decade equals the
// requested decade receive full period authenticity.
func (c *Config) CombinedScore(f *catalog.Film, selected []string, decade int) float64 {
	match := mood.Match(f.Moods, selected)

	periodAuth := 50.0
	if catalog.DecadeOf(f.Year) == decade {
		periodAuth = 100
	}

	return c.Combined.MoodMatch*(match*100) +
		c.Combined.BaseCanon*float64(f.BaseCanonScore) +
		c.Combined.PeriodAuth*periodAuth +
		c.Combined.Rarity*RarityBoost(f.ShowCount)
}

// MaxCanonScore returns the highest base canon score among films, with
// a floor of 1 so influence normalization never divides by zero.
func MaxCanonScore(films []*catalog.Film) int {
	max := 1
	for _, f := range films {
		if f.BaseCanonScore > max {
			max = f.BaseCanonScore
		}
	}
	return max
}
