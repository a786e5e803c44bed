// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package discovery

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"
)

// RecencyBoost returns a 0-100 linear ramp over the configured recency
// window: 0 at or before ReferenceYear-RecencyWindowYears, 100 at or
// after ReferenceYear.
func (c *Config) RecencyBoost(year int) float64 {
	start := c.ReferenceYear - c.RecencyWindowYears
	score := 100 * float64(year-start) / float64(c.RecencyWindowYears)
	return clamp(score, 0, 100)
}

// RarityBoost returns a 0-100 boost that decreases monotonically with
// show count. Rarely shown films rank higher; showCount 0 yields the
// raw value 100/ln(2), clamped to 100.
func RarityBoost(showCount int) float64 {
	if showCount < 0 {
		showCount = 0
	}
	score := 100 / math.Log(float64(showCount)+2)
	return clamp(score, 0, 100)
}

// RotationNoise returns a deterministic perturbation in [-3,3) seeded
// by the UTC calendar date and the film's identity. The same (day,
// filmID) pair always reproduces the same value; values are
// independent across films and across days.
func RotationNoise(day time.Time, filmID string) float64 {
	seed := day.UTC().Format("2006-01-02") + filmID

	h := fnv.New64a()
	h.Write([]byte(seed)) //nolint:errcheck // fnv Write cannot fail

	//nolint:gosec // deterministic ranking jitter, not security-sensitive
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	return rng.Float64()*6 - 3
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
