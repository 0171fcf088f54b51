package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/basedalex/storywords/pkg/frequency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *frequency.Table {
	table := frequency.NewTable()
	table.Add("acorn", "oak", "oak", "tree", "oak", "tree")
	return table
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected string
		rows     int
	}{
		{
			name:     "all rows",
			opts:     Options{},
			expected: "Word,Frequency\noak,3\ntree,2\nacorn,1\n",
			rows:     3,
		},
		{
			name:     "crlf",
			opts:     Options{CRLF: true},
			expected: "Word,Frequency\r\noak,3\r\ntree,2\r\nacorn,1\r\n",
			rows:     3,
		},
		{
			name:     "top two",
			opts:     Options{TopN: 2},
			expected: "Word,Frequency\noak,3\ntree,2\n",
			rows:     2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Write(&buf, sampleTable(), test.opts)
			require.NoError(t, err)
			assert.Equal(t, test.rows, n)
			assert.Equal(t, test.expected, buf.String())
		})
	}
}

func TestWriteEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	n, err := Write(&buf, frequency.NewTable(), Options{TopN: 80})

	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "Word,Frequency\n", buf.String())
}

func TestWriteTruncates(t *testing.T) {
	table := frequency.NewTable()
	for i := 0; i < 500; i++ {
		table.AddCount(fmt.Sprintf("zz%03d", i), i+1)
	}

	var buf bytes.Buffer
	n, err := Write(&buf, table, Options{TopN: 80})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, 80, n)
	assert.Len(t, lines, 81)
	assert.Equal(t, "zz499,500", lines[1])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the output\n"), 0o644))

	n, err := WriteFile(path, sampleTable(), Options{TopN: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Word,Frequency\noak,3\n", string(data))
}

func TestWriteFileBadPath(t *testing.T) {
	_, err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleTable(), Options{})
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	out := Preview(sampleTable(), 2)

	assert.Contains(t, out, "oak")
	assert.Contains(t, out, "tree")
	assert.NotContains(t, out, "acorn")

	assert.Empty(t, Preview(frequency.NewTable(), 5))
}
