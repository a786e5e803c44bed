// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package catalog

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
)

// Decode reads a catalog from r: a JSON array of film records. Every record
// is normalized before it is returned.
func Decode(r io.Reader) ([]*Film, error) {
	var films []*Film
	dec := json.NewDecoder(r)
	if err := dec.Decode(&films); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for _, f := range films {
		f.Normalize()
	}
	return films, nil
}

// Encode writes the catalog to w as an indented JSON array.
func Encode(w io.Writer, films []*Film) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(films); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return nil
}

// LoadFile reads and normalizes a catalog file.
func LoadFile(path string) ([]*Film, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// SaveFile writes a catalog file, creating or truncating path.
func SaveFile(path string, films []*Film) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	if err := Encode(f, films); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close catalog: %w", err)
	}
	return nil
}
