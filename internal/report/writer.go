package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/basedalex/storywords/pkg/frequency"
)

var Header = []string{"Word", "Frequency"}

type Options struct {
	// TopN limits the rows written; 0 writes every entry.
	TopN int
	CRLF bool
}

// Write ranks t and writes it as Word,Frequency CSV. It returns the number of
// data rows written.
func Write(w io.Writer, t *frequency.Table, opts Options) (int, error) {
	cw := csv.NewWriter(w)
	cw.UseCRLF = opts.CRLF

	if err := cw.Write(Header); err != nil {
		return 0, err
	}

	entries := t.Top(opts.TopN)
	for _, e := range entries {
		if err := cw.Write([]string{e.Word, strconv.Itoa(e.Count)}); err != nil {
			return 0, err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}

	return len(entries), nil
}

// WriteFile creates or truncates path and writes t to it.
func WriteFile(path string, t *frequency.Table, opts Options) (int, error) {
	dst, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := Write(dst, t, opts)
	if err != nil {
		dst.Close()
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	if err = dst.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", path, err)
	}

	return n, nil
}
