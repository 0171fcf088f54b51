package words

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Punctuation is the printable ASCII punctuation set removed from story text.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

const minTokenRunes = 2

type Cleaner interface {
	Clean(text string) []string
}

// Normalizer turns raw story text into tokens. With FilterStopWords set it
// also drops stop words and single-character tokens.
type Normalizer struct {
	FilterStopWords bool
}

func NewNormalizer(filterStopWords bool) *Normalizer {
	return &Normalizer{FilterStopWords: filterStopWords}
}

// StripPunctuation deletes punctuation without inserting a separator, so
// "squirrel-like" becomes "squirrellike".
func StripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(Punctuation, r) {
			return -1
		}
		return r
	}, text)
}

// isSeparator matches unicode.IsSpace plus the ASCII information separators
// U+001C..U+001F, which also split words.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Split breaks text on runs of separators.
func Split(text string) []string {
	return strings.FieldsFunc(text, isSeparator)
}

func (n *Normalizer) Clean(text string) []string {
	if len(text) == 0 {
		return nil
	}

	// Lowercase word by word: the caser mishandles a final sigma that lands
	// on its internal chunk boundary, and whitespace ends the sigma context
	// anyway.
	fields := Split(StripPunctuation(text))
	lower := cases.Lower(language.Und)
	for i, word := range fields {
		fields[i] = lower.String(word)
	}

	if !n.FilterStopWords {
		return fields
	}

	res := fields[:0]
	for _, word := range fields {
		if IsStopWord(word) {
			continue
		}
		if utf8.RuneCountInString(word) < minTokenRunes {
			continue
		}
		res = append(res, word)
	}

	return res
}
