// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package tagging

import (
	"strings"
	"testing"
)

func TestVocabularySize(t *testing.T) {
	t.Parallel()

	if len(Vocabulary) != 15 {
		t.Fatalf("Vocabulary size = %d, want 15", len(Vocabulary))
	}
	for _, tag := range Vocabulary {
		if _, ok := tagStems[tag]; !ok {
			t.Errorf("tag %q has no keyword stems", tag)
		}
	}
	if len(tagStems) != len(Vocabulary) {
		t.Errorf("tagStems has %d entries, want %d", len(tagStems), len(Vocabulary))
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Input
		want []string
	}{
		{
			name: "empty input defaults to contemplative",
			in:   Input{},
			want: []string{"contemplative"},
		},
		{
			name: "single strong match",
			in: Input{
				Synopsis: "A surreal journey through a dreamscape of bizarre visions.",
			},
			// "surreal" scores surreal(1)+bizarre(1)+dreamscape(1)=3,
			// "dreamlike" scores dream(1)+surreal(1)=2.
			want: []string{"surreal", "dreamlike"},
		},
		{
			name: "tie keeps vocabulary order",
			in: Input{
				// One match each: "grief" -> melancholic, "intimate" -> intimate.
				Synopsis: "grief and an intimate portrait",
			},
			want: []string{"melancholic", "intimate"},
		},
		{
			name: "genre fallback drama",
			in: Input{
				Synopsis: "xyzzy",
				Genres:   []string{"Drama"},
			},
			want: []string{"contemplative"},
		},
		{
			name: "genre fallback horror",
			in: Input{
				Genres: []string{"Horror"},
			},
			want: []string{"psychological"},
		},
		{
			name: "genre fallback stacks drama and romance",
			in: Input{
				Genres: []string{"Drama", "Romance"},
			},
			want: []string{"contemplative", "intimate"},
		},
		{
			name: "keywords and genres contribute to matching",
			in: Input{
				Keywords: []string{"nonlinear", "memory"},
				Genres:   []string{"Documentary"},
			},
			want: []string{"psychological", "fragmented"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Classify() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Classify()[%d] = %q, want %q (full: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestClassifyNeverExceedsMaxTags(t *testing.T) {
	t.Parallel()

	// Text engineered to hit many tags at once.
	in := Input{
		Synopsis: "A slow meditative dream of grief and loss, an intimate personal " +
			"study of existence and meaning, sparse and minimal, bleak and dark, " +
			"poetic lyrical imagery, psychological memory, fragmented nonlinear, " +
			"contemplative reflective, surreal bizarre, austere severe, musical " +
			"flowing, enigmatic mysterious",
	}

	got := Classify(in)
	if len(got) > MaxTags {
		t.Fatalf("Classify() returned %d tags, want <= %d", len(got), MaxTags)
	}
	for _, tag := range got {
		if !InVocabulary(tag) {
			t.Errorf("Classify() returned %q, not in vocabulary", tag)
		}
	}
}

func TestClassifyWordBoundary(t *testing.T) {
	t.Parallel()

	// "unsad" must not match the "sad" stem mid-word, but "sadness" extends
	// the stem past a word boundary and does count.
	got := Classify(Input{Synopsis: "an unsad tale"})
	if len(got) != 1 || got[0] != "contemplative" {
		t.Fatalf("Classify() = %v, want fallback [contemplative]", got)
	}

	got = Classify(Input{Synopsis: "a tale of sadness"})
	if len(got) != 1 || got[0] != "melancholic" {
		t.Fatalf("Classify() = %v, want [melancholic]", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	lower := Classify(Input{Synopsis: "surreal dreams"})
	upper := Classify(Input{Synopsis: "SURREAL DREAMS"})
	if strings.Join(lower, ",") != strings.Join(upper, ",") {
		t.Errorf("case sensitivity: %v != %v", lower, upper)
	}
}
