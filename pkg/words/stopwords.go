package words

import "slices"

// stopWords are common English function words excluded by the filtered
// pipeline. Matching is exact against lowercased tokens.
var stopWords = map[string]struct{}{
	"the": {}, "be": {}, "to": {}, "of": {}, "and": {}, "a": {}, "in": {}, "that": {}, "have": {}, "i": {},
	"it": {}, "for": {}, "not": {}, "on": {}, "with": {}, "he": {}, "as": {}, "you": {}, "do": {}, "at": {},
	"this": {}, "but": {}, "his": {}, "by": {}, "from": {}, "they": {}, "we": {}, "say": {}, "her": {}, "she": {},
	"or": {}, "an": {}, "will": {}, "my": {}, "one": {}, "all": {}, "would": {}, "there": {}, "their": {},
	"what": {}, "so": {}, "up": {}, "out": {}, "if": {}, "about": {}, "who": {}, "get": {}, "which": {}, "go": {},
	"me": {}, "when": {}, "make": {}, "can": {}, "like": {}, "time": {}, "no": {}, "just": {}, "him": {},
	"know": {}, "take": {}, "people": {}, "into": {}, "year": {}, "your": {}, "good": {}, "some": {}, "could": {},
	"them": {}, "see": {}, "other": {}, "than": {}, "then": {}, "now": {}, "look": {}, "only": {},
	"come": {}, "its": {}, "over": {}, "think": {}, "also": {}, "back": {}, "after": {}, "use": {}, "two": {},
	"how": {}, "our": {}, "work": {}, "first": {}, "well": {}, "way": {}, "even": {}, "new": {}, "want": {},
	"because": {}, "any": {}, "these": {}, "give": {}, "day": {}, "most": {}, "us": {}, "is": {}, "was": {},
	"were": {}, "been": {}, "being": {}, "am": {}, "are": {}, "had": {}, "has": {}, "having": {},
	"does": {}, "did": {}, "doing": {}, "shall": {}, "should": {}, "may": {}, "might": {}, "must": {},
	"ought": {}, "need": {}, "dare": {}, "used": {},
}

func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWords returns the stop words in alphabetical order.
func StopWords() []string {
	res := make([]string, 0, len(stopWords))
	for word := range stopWords {
		res = append(res, word)
	}
	slices.Sort(res)
	return res
}
