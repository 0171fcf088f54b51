package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	table := NewTable()
	table.Add("acorn", "oak", "acorn", "nut", "oak", "acorn")
	table.AddCount("tree", 2)
	table.AddCount("ghost", 0)
	table.AddCount("ghost", -3)

	assert.Equal(t, 4, table.Len())
	assert.Equal(t, 8, table.Total())
	assert.Equal(t, 3, table.Count("acorn"))
	assert.Equal(t, 0, table.Count("ghost"))

	assert.Equal(t, []Entry{
		{"acorn", 3}, {"oak", 2}, {"nut", 1}, {"tree", 2},
	}, table.Entries())
}

func TestRankedTieOrder(t *testing.T) {
	table := NewTable()
	table.Add("b", "a", "c", "a", "d", "c")

	assert.Equal(t, []Entry{
		{"a", 2}, {"c", 2}, {"b", 1}, {"d", 1},
	}, table.Ranked())
}

func TestTop(t *testing.T) {
	table := NewTable()
	table.Add("x", "y", "y", "z", "z", "z")

	assert.Equal(t, []Entry{{"z", 3}, {"y", 2}}, table.Top(2))
	assert.Len(t, table.Top(0), 3)
	assert.Len(t, table.Top(-1), 3)
	assert.Len(t, table.Top(10), 3)
	assert.Empty(t, NewTable().Top(5))
}

func TestEntriesIsCopy(t *testing.T) {
	table := NewTable()
	table.Add("acorn")

	entries := table.Entries()
	entries[0].Count = 100

	assert.Equal(t, 1, table.Count("acorn"))
}
