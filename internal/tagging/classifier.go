// Cinecanon - Arthouse Film Catalog and Discovery Ranking
// Copyright 2026 A. Aubertine (aubertine)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/aubertine/cinecanon

package tagging

import (
	"regexp"
	"sort"
	"strings"
)

// MaxTags is the maximum number of derived tags assigned to a film.
const MaxTags = 5

// Vocabulary is the fixed set of style tags, in declaration order.
// Declaration order breaks ties between tags with equal match counts.
// Adding a tag requires a matching entry in tagStems below.
var Vocabulary = []string{
	"slow",
	"dreamlike",
	"melancholic",
	"intimate",
	"existential",
	"minimalist",
	"bleak",
	"poetic",
	"psychological",
	"fragmented",
	"contemplative",
	"surreal",
	"austere",
	"lyrical",
	"enigmatic",
}

// tagStems maps each vocabulary tag to the keyword stems that score it.
// Stems are matched at word boundaries as prefixes, so "dream" also counts
// "dreams" and "dreaming".
var tagStems = map[string][]string{
	"slow":          {"slow", "meditative", "paced", "deliberate", "contemplation", "quiet", "stillness"},
	"dreamlike":     {"dream", "surreal", "ethereal", "hypnotic", "trance", "fantastical", "otherworldly"},
	"melancholic":   {"melancholy", "sad", "grief", "loss", "sorrow", "tragic", "despair", "longing"},
	"intimate":      {"intimate", "personal", "close", "private", "confessional", "relationship", "character study"},
	"existential":   {"existential", "meaning", "existence", "philosophy", "identity", "absurd", "alienation"},
	"minimalist":    {"minimal", "sparse", "simple", "austere", "stripped", "bare", "essential"},
	"bleak":         {"bleak", "dark", "harsh", "grim", "desolate", "hopeless", "stark"},
	"poetic":        {"poetic", "lyrical", "visual poetry", "artistic", "metaphor", "symbolic", "imagery"},
	"psychological": {"psychological", "mind", "mental", "psyche", "inner", "subconscious", "memory"},
	"fragmented":    {"fragmented", "nonlinear", "disjointed", "experimental", "abstract", "unconventional"},
	"contemplative": {"contemplative", "reflective", "thoughtful", "introspective", "meditation"},
	"surreal":       {"surreal", "bizarre", "strange", "weird", "uncanny", "dreamscape"},
	"austere":       {"austere", "severe", "rigorous", "restrained", "disciplined", "stark"},
	"lyrical":       {"lyrical", "musical", "rhythmic", "flowing", "graceful", "elegant"},
	"enigmatic":     {"enigmatic", "mysterious", "ambiguous", "cryptic", "puzzling", "obscure"},
}

// stemPatterns holds the precompiled word-boundary pattern for every stem,
// built once at package init.
var stemPatterns = compileStemPatterns()

func compileStemPatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(tagStems))
	for tag, stems := range tagStems {
		compiled := make([]*regexp.Regexp, 0, len(stems))
		for _, stem := range stems {
			compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(stem)))
		}
		patterns[tag] = compiled
	}
	return patterns
}

// Input carries the free-text fields of a film record that drive
// classification. Missing fields are treated as empty.
type Input struct {
	Synopsis string
	Keywords []string
	Genres   []string
}

// Classify derives up to MaxTags style tags from the film's text metadata.
// Tags are ordered by descending match count; ties keep vocabulary order.
// The result is never empty and every element is a Vocabulary member.
func Classify(in Input) []string {
	combined := strings.ToLower(strings.Join([]string{
		in.Synopsis,
		strings.Join(in.Keywords, " "),
		strings.Join(in.Genres, " "),
	}, " "))

	type tagScore struct {
		tag   string
		score int
	}

	scored := make([]tagScore, 0, len(Vocabulary))
	for _, tag := range Vocabulary {
		score := 0
		for _, pattern := range stemPatterns[tag] {
			score += len(pattern.FindAllStringIndex(combined, -1))
		}
		if score > 0 {
			scored = append(scored, tagScore{tag: tag, score: score})
		}
	}

	// Stable sort keeps vocabulary declaration order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > MaxTags {
		scored = scored[:MaxTags]
	}

	tags := make([]string, 0, len(scored))
	for _, ts := range scored {
		tags = append(tags, ts.tag)
	}

	if len(tags) == 0 {
		tags = fallbackTags(in.Genres)
	}
	return tags
}

// fallbackTags maps genres to default tags for films whose text matched
// nothing. Always returns at least one tag.
func fallbackTags(genres []string) []string {
	genreStr := strings.ToLower(strings.Join(genres, " "))

	var tags []string
	if strings.Contains(genreStr, "drama") {
		tags = append(tags, "contemplative")
	}
	if strings.Contains(genreStr, "thriller") || strings.Contains(genreStr, "horror") {
		tags = append(tags, "psychological")
	}
	if strings.Contains(genreStr, "romance") {
		tags = append(tags, "intimate")
	}

	if len(tags) == 0 {
		tags = append(tags, "contemplative")
	}
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	return tags
}

// InVocabulary reports whether tag is a member of the fixed vocabulary.
func InVocabulary(tag string) bool {
	for _, t := range Vocabulary {
		if t == tag {
			return true
		}
	}
	return false
}
