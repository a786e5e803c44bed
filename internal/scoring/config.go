// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package scoring

import "fmt"

// Config carries the tunable parts of the scorer. The defaults reproduce
// the production formulas exactly; changing the canon weights reshapes the
// whole catalog ordering, so treat them as carefully as schema changes.
type Config struct {
	// ReferenceYear anchors the age bonus in the historical-importance
	// sub-score. Scores drift as real time advances unless the catalog is
	// periodically re-enriched against a newer reference year.
	ReferenceYear int `json:"reference_year" koanf:"reference_year"`

	// CanonWeights blends the five canon sub-scores. The weights should sum
	// to 1.0; Validate enforces a small tolerance.
	CanonWeights CanonWeights `json:"canon_weights" koanf:"canon_weights"`
}

// CanonWeights holds the blend weights for the base canon score.
type CanonWeights struct {
	// CriticalConsensus weights the vote-derived consensus sub-score.
	CriticalConsensus float64 `json:"critical_consensus" koanf:"critical_consensus"`

	// HistoricalImportance weights the tier/age/festival sub-score.
	HistoricalImportance float64 `json:"historical_importance" koanf:"historical_importance"`

	// AuteurImportance weights the director-lookup sub-score.
	AuteurImportance float64 `json:"auteur_importance" koanf:"auteur_importance"`

	// FormalInnovation weights the formal-experimentation sub-score.
	FormalInnovation float64 `json:"formal_innovation" koanf:"formal_innovation"`

	// CulturalInfluence weights the cultural-reach sub-score.
	CulturalInfluence float64 `json:"cultural_influence" koanf:"cultural_influence"`
}

// DefaultConfig returns the production scoring configuration.
func DefaultConfig() Config {
	return Config{
		ReferenceYear: 2025,
		CanonWeights: CanonWeights{
			CriticalConsensus:    0.35,
			HistoricalImportance: 0.25,
			AuteurImportance:     0.20,
			FormalInnovation:     0.10,
			CulturalInfluence:    0.10,
		},
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.ReferenceYear < 1900 {
		return fmt.Errorf("reference_year must be >= 1900, got %d", c.ReferenceYear)
	}

	w := c.CanonWeights
	for name, v := range map[string]float64{
		"critical_consensus":    w.CriticalConsensus,
		"historical_importance": w.HistoricalImportance,
		"auteur_importance":     w.AuteurImportance,
		"formal_innovation":     w.FormalInnovation,
		"cultural_influence":    w.CulturalInfluence,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("canon_weights.%s must be in [0, 1], got %f", name, v)
		}
	}

	sum := w.CriticalConsensus + w.HistoricalImportance + w.AuteurImportance +
		w.FormalInnovation + w.CulturalInfluence
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("canon_weights must sum to 1.0, got %f", sum)
	}
	return nil
}

// Scorer computes film scores with a fixed configuration. Safe for
// concurrent use; it holds no mutable state.
type Scorer struct {
	cfg Config
}

// NewScorer builds a Scorer, validating the configuration.
func NewScorer(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return &Scorer{cfg: cfg}, nil
}
