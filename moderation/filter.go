// Package moderation provides the optional outbound composer filter: words
// from a configured list are masked before a message leaves the panel.
package moderation

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"

	"chat-panel/errors"
)

// Filter masks configured words in outbound text. Matching is
// case-insensitive; masking replaces exactly the matched runes, so the
// message keeps its length and spacing.
type Filter struct {
	matcher  *goahocorasick.Machine
	maskChar rune
}

func NewFilter(words []string, maskChar rune) (*Filter, error) {
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}
	patterns := make([][]rune, len(words))
	for i, w := range words {
		patterns[i] = lowerRunes([]rune(w))
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Filter{matcher: m, maskChar: maskChar}, nil
}

// Mask returns the text with every configured word replaced by the mask
// character, rune for rune.
func (f *Filter) Mask(text string) string {
	runes := []rune(text)
	spans := f.matcher.MultiPatternSearch(lowerRunes(runes), false)
	if len(spans) == 0 {
		return text
	}

	for _, span := range spans {
		start := span.Pos
		end := start + len(span.Word)
		if start < 0 || end > len(runes) {
			continue
		}
		for i := start; i < end; i++ {
			runes[i] = f.maskChar
		}
	}
	return string(runes)
}

func lowerRunes(in []rune) []rune {
	out := make([]rune, len(in))
	for i, r := range in {
		out[i] = unicode.ToLower(r)
	}
	return out
}
