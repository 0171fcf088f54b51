// Package frequency counts tokens while remembering the order in which each
// token was first seen. That order is the tie-break for every ranking.
package frequency

import "slices"

type Entry struct {
	Word  string
	Count int
}

type Table struct {
	entries []*Entry
	lookup  map[string]*Entry
}

func NewTable() *Table {
	return &Table{lookup: make(map[string]*Entry)}
}

func (t *Table) Add(words ...string) {
	for _, word := range words {
		t.AddCount(word, 1)
	}
}

// AddCount adds n occurrences of word. Non-positive n is ignored so the table
// never holds an entry with count <= 0.
func (t *Table) AddCount(word string, n int) {
	if n <= 0 {
		return
	}

	if e, ok := t.lookup[word]; ok {
		e.Count += n
		return
	}

	e := &Entry{Word: word, Count: n}
	t.entries = append(t.entries, e)
	t.lookup[word] = e
}

func (t *Table) Count(word string) int {
	if e, ok := t.lookup[word]; ok {
		return e.Count
	}
	return 0
}

func (t *Table) Len() int {
	return len(t.entries)
}

// Total is the sum of all counts.
func (t *Table) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Entries returns the entries in first-seen order.
func (t *Table) Entries() []Entry {
	res := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		res[i] = *e
	}
	return res
}

// Ranked returns the entries by descending count. Equal counts keep
// first-seen order.
func (t *Table) Ranked() []Entry {
	res := t.Entries()
	slices.SortStableFunc(res, func(a, b Entry) int {
		return b.Count - a.Count
	})
	return res
}

// Top returns the n most frequent entries, or all of them when n <= 0.
func (t *Table) Top(n int) []Entry {
	res := t.Ranked()
	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}
