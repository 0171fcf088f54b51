package report

import (
	"strconv"

	"github.com/basedalex/storywords/pkg/frequency"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Preview renders the n most frequent words as a console table.
func Preview(t *frequency.Table, n int) string {
	entries := t.Top(n)
	if len(entries) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", Header[0], Header[1]})

	for i, e := range entries {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), e.Word, strconv.Itoa(e.Count)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
