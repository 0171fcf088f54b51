package frequency

import "github.com/basedalex/storywords/pkg/words"

// Collapse keeps one representative per group of suffix variants.
//
// Entries are visited by descending count. A visited entry is kept unless a
// variant with a strictly higher count exists, in which case the first such
// variant in ranked order is kept instead. Entries already kept are skipped
// without being compared. Kept entries retain their own count; the counts of
// the entries they replaced are dropped, not added.
//
// Variants are looked up by stem rather than by scanning every pair, which
// visits candidates in the same ranked order as a full scan would.
func Collapse(t *Table) *Table {
	ranked := t.Ranked()

	byStem := make(map[string][]int, len(ranked))
	for i, e := range ranked {
		stem := words.Stem(e.Word)
		byStem[stem] = append(byStem[stem], i)
	}

	kept := make(map[string]struct{}, len(ranked))
	for _, e := range ranked {
		if _, ok := kept[e.Word]; ok {
			continue
		}

		kept[e.Word] = struct{}{}
		for _, j := range byStem[words.Stem(e.Word)] {
			other := ranked[j]
			if other.Count > e.Count {
				delete(kept, e.Word)
				kept[other.Word] = struct{}{}
				break
			}
		}
	}

	res := NewTable()
	for _, e := range ranked {
		if _, ok := kept[e.Word]; ok {
			res.AddCount(e.Word, e.Count)
		}
	}

	return res
}
