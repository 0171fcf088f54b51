package words

import "strings"

// Suffixes are tried in this order; the first one a token ends with is the
// only one stripped.
var Suffixes = []string{"s", "es", "ed", "ing", "er", "est"}

// Stem strips at most one suffix from word. It is a plain string heuristic:
// "boxes" gives "boxe" and "running" gives "runn".
func Stem(word string) string {
	for _, suffix := range Suffixes {
		if strings.HasSuffix(word, suffix) {
			return word[:len(word)-len(suffix)]
		}
	}
	return word
}

// IsVariation reports whether a and b reduce to the same stem.
func IsVariation(a, b string) bool {
	return Stem(a) == Stem(b)
}
