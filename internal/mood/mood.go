// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package mood

// Vocabulary is the fixed set of mood labels. It overlaps the style-tag
// vocabulary by name but the two are distinct contracts; adding a mood
// requires updating tagContributions below.
var Vocabulary = []string{
	"contemplative", "melancholic", "dreamlike", "surreal", "intimate",
	"existential", "psychological", "minimalist", "slow", "austere",
	"poetic", "lyrical", "enigmatic", "fragmented", "bleak",
}

// tagContributions maps each style tag to the moods it evokes, with fixed
// weights. Every tag contributes to 2-4 moods.
var tagContributions = map[string]map[string]float64{
	"contemplative": {"contemplative": 0.9, "slow": 0.5, "existential": 0.3},
	"melancholic":   {"melancholic": 0.9, "intimate": 0.4, "bleak": 0.3},
	"dreamlike":     {"dreamlike": 0.9, "surreal": 0.6, "enigmatic": 0.5, "poetic": 0.4},
	"surreal":       {"surreal": 0.9, "dreamlike": 0.6, "enigmatic": 0.5},
	"intimate":      {"intimate": 0.9, "psychological": 0.5, "melancholic": 0.3},
	"existential":   {"existential": 0.9, "contemplative": 0.6, "bleak": 0.4},
	"psychological": {"psychological": 0.9, "intimate": 0.5, "enigmatic": 0.3},
	"minimalist":    {"minimalist": 0.9, "austere": 0.7, "slow": 0.5},
	"slow":          {"slow": 0.9, "contemplative": 0.6, "minimalist": 0.4},
	"austere":       {"austere": 0.9, "minimalist": 0.7, "bleak": 0.4},
	"poetic":        {"poetic": 0.9, "lyrical": 0.7, "dreamlike": 0.5},
	"lyrical":       {"lyrical": 0.9, "poetic": 0.7, "intimate": 0.4},
	"enigmatic":     {"enigmatic": 0.9, "surreal": 0.6, "dreamlike": 0.5},
	"fragmented":    {"fragmented": 0.9, "enigmatic": 0.6, "psychological": 0.4},
	"bleak":         {"bleak": 0.9, "melancholic": 0.5, "austere": 0.4},
}

// Assign derives a mood vector from a film's derived tags. The result is a
// pure, order-independent function of tag set membership: contributions are
// summed per mood (capped at 1.0), then every weight is divided by the
// maximum observed weight (or 1 if the maximum is below 1) and re-capped.
// Films without tags get the default {contemplative: 0.5}.
func Assign(derivedTags []string) Vector {
	if len(derivedTags) == 0 {
		return Vector{"contemplative": 0.5}
	}

	v := make(Vector)
	for _, tag := range derivedTags {
		for m, w := range tagContributions[tag] {
			sum := v[m] + w
			if sum > 1.0 {
				sum = 1.0
			}
			v[m] = sum
		}
	}

	maxWeight := 1.0
	for _, w := range v {
		if w > maxWeight {
			maxWeight = w
		}
	}
	for m, w := range v {
		n := w / maxWeight
		if n > 1.0 {
			n = 1.0
		}
		v[m] = n
	}
	return v
}

// Match scores how well a film's mood vector satisfies the requested moods:
// the mean of the film's weights for the requested moods, in [0, 1].
// An empty vector or an empty request scores 0.
func Match(filmMoods Vector, selected []string) float64 {
	if len(filmMoods) == 0 || len(selected) == 0 {
		return 0
	}

	total := 0.0
	for _, m := range selected {
		total += filmMoods[m]
	}
	return total / float64(len(selected))
}

// InVocabulary reports whether name is a member of the mood vocabulary.
func InVocabulary(name string) bool {
	for _, m := range Vocabulary {
		if m == name {
			return true
		}
	}
	return false
}
