// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package discovery

import (
	"fmt"
	"math"
)

// Config holds discovery engine configuration. The defaults reproduce
// the catalog's tuned ranking behavior; changing the weights rebalances
// orderings across every context.
type Config struct {
	// ReferenceYear anchors the recency ramp. Films at or after this
	// year receive the full recency boost.
	ReferenceYear int `json:"reference_year" koanf:"reference_year"`

	// RecencyWindowYears is the width of the linear recency ramp.
	// Films at or before ReferenceYear-RecencyWindowYears receive zero.
	RecencyWindowYears int `json:"recency_window_years" koanf:"recency_window_years"`

	// MinContextScore is the floor applied to mood and combined
	// rankings. Films scoring below it are dropped from results.
	MinContextScore float64 `json:"min_context_score" koanf:"min_context_score"`

	// DefaultLimit is the page size used when a request omits one.
	DefaultLimit int `json:"default_limit" koanf:"default_limit"`

	// MaxLimit caps the page size of any single request.
	MaxLimit int `json:"max_limit" koanf:"max_limit"`

	// Explore blends base canon score with recency, rarity, and noise.
	Explore ExploreWeights `json:"explore" koanf:"explore"`

	// Decade blends base canon score with within-decade influence and
	// movement representativeness.
	Decade DecadeWeights `json:"decade" koanf:"decade"`

	// Mood blends mood match strength with base canon score, depth,
	// and rarity.
	Mood MoodWeights `json:"mood" koanf:"mood"`

	// Combined blends mood match with base canon score, period
	// authenticity, and rarity for decade+mood requests.
	Combined CombinedWeights `json:"combined" koanf:"combined"`
}

// ExploreWeights are the explore context blend weights.
type ExploreWeights struct {
	BaseCanon float64 `json:"base_canon" koanf:"base_canon"`
	Recency   float64 `json:"recency" koanf:"recency"`
	Rarity    float64 `json:"rarity" koanf:"rarity"`
	Rotation  float64 `json:"rotation" koanf:"rotation"`
}

// DecadeWeights are the decade context blend weights.
type DecadeWeights struct {
	BaseCanon float64 `json:"base_canon" koanf:"base_canon"`
	Influence float64 `json:"influence" koanf:"influence"`
	Movement  float64 `json:"movement" koanf:"movement"`
}

// MoodWeights are the mood context blend weights.
type MoodWeights struct {
	MoodMatch float64 `json:"mood_match" koanf:"mood_match"`
	BaseCanon float64 `json:"base_canon" koanf:"base_canon"`
	Depth     float64 `json:"depth" koanf:"depth"`
	Rarity    float64 `json:"rarity" koanf:"rarity"`
}

// CombinedWeights are the combined (decade+mood) context blend weights.
type CombinedWeights struct {
	MoodMatch  float64 `json:"mood_match" koanf:"mood_match"`
	BaseCanon  float64 `json:"base_canon" koanf:"base_canon"`
	PeriodAuth float64 `json:"period_auth" koanf:"period_auth"`
	Rarity     float64 `json:"rarity" koanf:"rarity"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		ReferenceYear:      2025,
		RecencyWindowYears: 10,
		MinContextScore:    30,
		DefaultLimit:       60,
		MaxLimit:           500,
		Explore: ExploreWeights{
			BaseCanon: 0.60,
			Recency:   0.20,
			Rarity:    0.10,
			Rotation:  0.10,
		},
		Decade: DecadeWeights{
			BaseCanon: 0.70,
			Influence: 0.20,
			Movement:  0.10,
		},
		Mood: MoodWeights{
			MoodMatch: 0.50,
			BaseCanon: 0.30,
			Depth:     0.10,
			Rarity:    0.10,
		},
		Combined: CombinedWeights{
			MoodMatch:  0.40,
			BaseCanon:  0.40,
			PeriodAuth: 0.10,
			Rarity:     0.10,
		},
	}
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.ReferenceYear < 1900 {
		return fmt.Errorf("reference_year must be >= 1900, got %d", c.ReferenceYear)
	}
	if c.RecencyWindowYears < 1 {
		return fmt.Errorf("recency_window_years must be >= 1, got %d", c.RecencyWindowYears)
	}
	if c.MinContextScore < 0 || c.MinContextScore > 100 {
		return fmt.Errorf("min_context_score must be in [0,100], got %v", c.MinContextScore)
	}
	if c.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be >= 1, got %d", c.DefaultLimit)
	}
	if c.MaxLimit < c.DefaultLimit {
		return fmt.Errorf("max_limit %d must be >= default_limit %d", c.MaxLimit, c.DefaultLimit)
	}

	sums := []struct {
		name string
		sum  float64
	}{
		{"explore", c.Explore.BaseCanon + c.Explore.Recency + c.Explore.Rarity + c.Explore.Rotation},
		{"decade", c.Decade.BaseCanon + c.Decade.Influence + c.Decade.Movement},
		{"mood", c.Mood.MoodMatch + c.Mood.BaseCanon + c.Mood.Depth + c.Mood.Rarity},
		{"combined", c.Combined.MoodMatch + c.Combined.BaseCanon + c.Combined.PeriodAuth + c.Combined.Rarity},
	}
	for _, s := range sums {
		if math.Abs(s.sum-1.0) > 0.001 {
			return fmt.Errorf("%s weights must sum to 1.0, got %v", s.name, s.sum)
		}
	}
	return nil
}
