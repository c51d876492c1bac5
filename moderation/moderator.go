// Package moderation censors dictionary words inside free text.
// Matching runs on a normalized view of the input (lowercased, leet speak
// folded, punctuation and spacing stripped) so obfuscated spellings are
// still caught, while the replacement is applied to the original runes.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"solid-lab/errors"
)

type Moderator struct {
	matcher     *goahocorasick.Machine
	replacement rune
	log         *slog.Logger
}

// NewModerator builds the Aho-Corasick automaton over the normalized
// dictionary. An empty dictionary is rejected up front.
func NewModerator(censoredWords []string, replacement rune, log *slog.Logger) (Moderator, error) {
	if len(censoredWords) == 0 {
		return Moderator{}, errors.ErrEmptyDictionary
	}

	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		norm, _ := normalize([]rune(word))
		patterns = append(patterns, norm)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	return Moderator{matcher: m, replacement: replacement, log: log}, nil
}

// Censor replaces every dictionary hit with the replacement rune, preserving
// the original spacing and punctuation. It also returns the normalized form
// of each censored word, in match order.
func (m Moderator) Censor(original string) (string, []string) {
	origRunes := []rune(original)
	norm, origIdx := normalize(origRunes)
	if len(norm) == 0 {
		return original, nil
	}

	spans := m.matcher.MultiPatternSearch(norm, false)
	if len(spans) == 0 {
		return original, nil
	}

	found := make([]string, 0, len(spans))
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			m.log.Debug("Span outside mapping, skipping", "start", start, "end", end)
			continue
		}
		found = append(found, string(span.Word))

		// Censor every original rune between the first and last matched one,
		// noise characters inside the span included.
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			origRunes[i] = m.replacement
		}
	}

	return string(origRunes), found
}

// normalize lowercases, folds leet speak and drops noise runes, keeping the
// position each kept rune had in the input.
func normalize(input []rune) ([]rune, []int) {
	norm := make([]rune, 0, len(input))
	origIdx := make([]int, 0, len(input))
	for i, r := range input {
		folded := foldLeet(r)
		if unicode.IsPunct(folded) || unicode.IsSpace(folded) || unicode.IsSymbol(folded) {
			continue
		}
		norm = append(norm, unicode.ToLower(folded))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

// foldLeet maps common leet speak characters back to their letters.
func foldLeet(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
