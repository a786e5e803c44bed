// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package scoring

import (
	"math"
	"testing"

	"github.com/aubertine/cinecanon/internal/catalog"
)

func TestCriticalConsensus(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	tests := []struct {
		name string
		avg  float64
		num  int
		want float64
	}{
		{name: "no votes gets floor multiplier", avg: 8.0, num: 0, want: 56},  // 80 * 0.7
		{name: "saturated vote count", avg: 8.0, num: 5000, want: 80},         // 80 * 1.0
		{name: "beyond saturation is capped", avg: 8.0, num: 50000, want: 80}, // weight capped at 1
		{name: "half reliability", avg: 6.0, num: 2500, want: 51},             // 60 * 0.85
		{name: "zero average", avg: 0, num: 10000, want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := &catalog.Film{VoteAverage: tt.avg, VoteCount: tt.num}
			if got := s.CriticalConsensus(f); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CriticalConsensus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistoricalImportance(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	tests := []struct {
		name string
		film catalog.Film
		want float64
	}{
		{
			name: "tier 1 silent era",
			film: catalog.Film{Tier: catalog.TierCanon, Year: 1928}, // age 97 -> +20
			want: 90,
		},
		{
			name: "tier 2 new wave",
			film: catalog.Film{Tier: catalog.TierDirector, Year: 1962}, // age 63 -> +15
			want: 65,
		},
		{
			name: "tier 3 recent",
			film: catalog.Film{Tier: catalog.TierDiscovery, Year: 2023}, // age 2 -> +0
			want: 30,
		},
		{
			name: "festival wins capped at 10",
			film: catalog.Film{Tier: catalog.TierCanon, Year: 1928,
				FestivalWins: []string{"Cannes", "Venice", "Berlin"}},
			want: 100, // 70 + 20 + min(15, 10) = 100
		},
		{
			name: "clamped at 100",
			film: catalog.Film{Tier: catalog.TierCanon, Year: 1920,
				FestivalWins: []string{"Cannes", "Venice", "Berlin"}},
			want: 100,
		},
		{
			name: "missing year gets no age bonus",
			film: catalog.Film{Tier: catalog.TierCanon},
			want: 70,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.HistoricalImportance(&tt.film); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("HistoricalImportance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAuteurImportance(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	tests := []struct {
		name      string
		directors []string
		want      float64
	}{
		{name: "master auteur", directors: []string{"Andrei Tarkovsky"}, want: 100},
		{name: "substring match", directors: []string{"Jean-Pierre and Luc Dardenne"}, want: 75},
		{name: "established auteur", directors: []string{"Claire Denis"}, want: 75},
		{name: "only primary director counts", directors: []string{"Unknown Person", "Ingmar Bergman"}, want: 50},
		{name: "unknown director", directors: []string{"Alex Newcomer"}, want: 50},
		{name: "no director", directors: nil, want: 25},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := &catalog.Film{Directors: tt.directors}
			if got := s.AuteurImportance(f); got != tt.want {
				t.Errorf("AuteurImportance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormalInnovation(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	tests := []struct {
		name string
		film catalog.Film
		want float64
	}{
		{
			name: "innovative tags",
			film: catalog.Film{Year: 1995, DerivedTags: []string{"surreal", "fragmented", "slow"}},
			want: 30, // two innovative tags
		},
		{
			name: "early cinema",
			film: catalog.Film{Year: 1929},
			want: 20,
		},
		{
			name: "modern documentary",
			film: catalog.Film{Year: 1975, Genres: []string{"Documentary"}},
			want: 10,
		},
		{
			name: "stacked tags and early cinema",
			film: catalog.Film{Year: 1935,
				DerivedTags: []string{"surreal", "enigmatic", "fragmented", "dreamlike", "minimalist"}},
			want: 95, // 5*15 + 20
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.FormalInnovation(&tt.film); got != tt.want {
				t.Errorf("FormalInnovation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCulturalInfluence(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	tests := []struct {
		name string
		film catalog.Film
		want float64
	}{
		{
			name: "tier 1 enduring classic",
			film: catalog.Film{Tier: catalog.TierCanon, Year: 1954, VoteAverage: 8.5, VoteCount: 50000},
			want: 100, // 30 + 40 + 30
		},
		{
			name: "contemporary impact",
			film: catalog.Film{Tier: catalog.TierDiscovery, Year: 2019, VoteAverage: 7.8, VoteCount: 2000},
			want: 30, // 10 + 20
		},
		{
			name: "nothing",
			film: catalog.Film{Year: 2000, VoteAverage: 5, VoteCount: 10},
			want: 0,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.CulturalInfluence(&tt.film); got != tt.want {
				t.Errorf("CulturalInfluence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseCanonScore(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	// Mirror, Tarkovsky 1975: consensus 80*1.0=80, historical 70+10=80
	// (age exactly 50 misses the >50 bracket), auteur 100, innovation
	// 2*15=30, influence 30+40+30=100.
	// 0.35*80 + 0.25*80 + 0.20*100 + 0.10*30 + 0.10*100 = 81.
	f := &catalog.Film{
		Tier:        catalog.TierCanon,
		Year:        1975,
		Directors:   []string{"Andrei Tarkovsky"},
		VoteAverage: 8.0,
		VoteCount:   20000,
		DerivedTags: []string{"dreamlike", "fragmented", "poetic"},
	}

	if got := s.BaseCanonScore(f); got != 81 {
		t.Errorf("BaseCanonScore() = %d, want 81", got)
	}
}

func TestBaseCanonScoreRange(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	films := []*catalog.Film{
		{},
		{Tier: catalog.TierCanon, Year: 1925, Directors: []string{"Carl Theodor Dreyer"},
			VoteAverage: 9.9, VoteCount: 500000, FestivalWins: []string{"a", "b", "c"},
			DerivedTags: []string{"surreal", "enigmatic", "fragmented", "dreamlike", "minimalist"}},
		{Tier: catalog.TierDiscovery, Year: 2024, VoteAverage: 2.1, VoteCount: 3},
	}

	for i, f := range films {
		got := s.BaseCanonScore(f)
		if got < 0 || got > 100 {
			t.Errorf("film %d: BaseCanonScore() = %d, outside [0,100]", i, got)
		}
	}
}

func TestCanonBreakdownCurationOverride(t *testing.T) {
	t.Parallel()

	s := newTestScorer(t)

	f := &catalog.Film{
		Year:              1995,
		FormalInnovation:  88,
		CulturalInfluence: 77,
		DerivedTags:       []string{"surreal"},
	}

	b := s.CanonBreakdown(f)
	if b.FormalInnovation != 88 {
		t.Errorf("FormalInnovation = %v, want curated 88", b.FormalInnovation)
	}
	if b.CulturalInfluence != 77 {
		t.Errorf("CulturalInfluence = %v, want curated 77", b.CulturalInfluence)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}, wantErr: false},
		{name: "ancient reference year", mutate: func(c *Config) { c.ReferenceYear = 1800 }, wantErr: true},
		{name: "negative weight", mutate: func(c *Config) { c.CanonWeights.AuteurImportance = -0.2 }, wantErr: true},
		{name: "weights not summing to one", mutate: func(c *Config) { c.CanonWeights.CriticalConsensus = 0.5 }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
