// Package moderation filters banned words out of announcement text
// before it is stored. Matching is tolerant of leet speak, casing and
// punctuation inserted inside a word.
package moderation

import (
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Censor struct {
	machine *goahocorasick.Machine
	mask    rune
	log     *slog.Logger
}

// NewCensor builds the Aho-Corasick automaton over the normalized word
// list. Words that normalize to nothing (pure punctuation) are dropped.
func NewCensor(words []string, mask rune, log *slog.Logger) (*Censor, error) {
	patterns := make([][]rune, 0, len(words))
	for _, w := range words {
		norm, _ := normalize(w)
		if len(norm) == 0 {
			continue
		}
		patterns = append(patterns, norm)
	}

	machine := new(goahocorasick.Machine)
	if err := machine.Build(patterns); err != nil {
		return nil, err
	}
	log.Debug("censor ready", slog.Int("patterns", len(patterns)))
	return &Censor{machine: machine, mask: mask, log: log}, nil
}

// Clean replaces every banned word in text with the mask rune, keeping
// the surrounding spacing intact. It also returns the normalized form
// of each word that was hit, in order of appearance.
func (c *Censor) Clean(text string) (string, []string) {
	norm, origIdx := normalize(text)
	if len(norm) == 0 {
		return text, nil
	}

	spans := c.machine.MultiPatternSearch(norm, false)
	if len(spans) == 0 {
		return text, nil
	}

	runes := []rune(text)
	var hits []string
	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		hits = append(hits, string(span.Word))

		// Mask the original range, punctuation typed inside the
		// word included.
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			runes[i] = c.mask
		}
	}

	c.log.Debug("text censored", slog.Int("hits", len(hits)))
	return string(runes), hits
}

// normalize lowercases, undoes leet substitutions and strips noise,
// returning the searchable runes and, for each one, its index in the
// original string.
func normalize(text string) ([]rune, []int) {
	orig := []rune(text)
	norm := make([]rune, 0, len(orig))
	origIdx := make([]int, 0, len(orig))

	for i, r := range orig {
		r = unleet(r)
		if isNoise(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return norm, origIdx
}

// unleet maps common leet speak characters back to letters.
func unleet(r rune) rune {
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

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
