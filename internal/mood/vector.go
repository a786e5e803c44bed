// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package mood

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Vector is a film's weighted mood mapping. Weights are in [0, 1].
//
// Upstream catalogs serialize the moods field in two shapes: a plain JSON
// object ({"bleak": 0.4}) and an ordered list of pairs, either as
// {"mood": "bleak", "weight": 0.4} objects or as ["bleak", 0.4] tuples.
// UnmarshalJSON canonicalizes all three into the map form.
type Vector map[string]float64

// weightedPair is the list-of-pairs element shape.
type weightedPair struct {
	Mood   string  `json:"mood"`
	Weight float64 `json:"weight"`
}

// UnmarshalJSON implements json.Unmarshaler, absorbing both the object and
// the list-of-pairs serializations.
func (v *Vector) UnmarshalJSON(data []byte) error {
	// Object form.
	var obj map[string]float64
	if err := json.Unmarshal(data, &obj); err == nil {
		*v = obj
		return nil
	}

	// List-of-pairs form.
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("moods: unsupported shape: %w", err)
	}

	out := make(Vector, len(raw))
	for i, elem := range raw {
		var pair weightedPair
		if err := json.Unmarshal(elem, &pair); err == nil && pair.Mood != "" {
			out[pair.Mood] = pair.Weight
			continue
		}

		var tuple []json.RawMessage
		if err := json.Unmarshal(elem, &tuple); err != nil || len(tuple) != 2 {
			return fmt.Errorf("moods: element %d is neither a pair object nor a tuple", i)
		}
		var name string
		var weight float64
		if err := json.Unmarshal(tuple[0], &name); err != nil {
			return fmt.Errorf("moods: element %d: %w", i, err)
		}
		if err := json.Unmarshal(tuple[1], &weight); err != nil {
			return fmt.Errorf("moods: element %d: %w", i, err)
		}
		out[name] = weight
	}
	*v = out
	return nil
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	for m, w := range v {
		out[m] = w
	}
	return out
}
