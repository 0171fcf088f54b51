package stories

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/transform"
)

var (
	ErrColumnMissing = errors.New("column not found")
	ErrEncoding      = errors.New("invalid UTF-8")
)

type ColumnError struct {
	Column string
	Path   string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("'%s' column not found in %s", e.Column, e.Path)
}

func (e *ColumnError) Unwrap() error {
	return ErrColumnMissing
}

type Stats struct {
	Rows    int
	Skipped int
}

// Reader yields the text of one named column, row by row.
type Reader struct {
	csv    *csv.Reader
	path   string
	column int
	stats  Stats
}

// NewReader reads the header from r and locates column. path is only used
// in error messages. When a header name repeats, the last one wins.
func NewReader(r io.Reader, path, column string) (*Reader, error) {
	cr := csv.NewReader(transform.NewReader(r, newlines{}))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ColumnError{Column: column, Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	if err = checkEncoding(header); err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx := -1
	for i, name := range header {
		if name == column {
			idx = i
		}
	}
	if idx < 0 {
		return nil, &ColumnError{Column: column, Path: path}
	}

	return &Reader{csv: cr, path: path, column: idx}, nil
}

// Next returns the next non-empty text. Rows where the field is empty or
// absent are skipped. It returns io.EOF when the input is exhausted.
func (r *Reader) Next() (string, error) {
	for {
		record, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", r.path, err)
		}

		r.stats.Rows++
		if err = checkEncoding(record); err != nil {
			line, _ := r.csv.FieldPos(0)
			return "", fmt.Errorf("reading %s line %d: %w", r.path, line, err)
		}

		if r.column >= len(record) || record[r.column] == "" {
			r.stats.Skipped++
			continue
		}

		return record[r.column], nil
	}
}

func checkEncoding(record []string) error {
	for _, field := range record {
		if !utf8.ValidString(field) {
			return ErrEncoding
		}
	}
	return nil
}

func (r *Reader) Stats() Stats {
	return r.stats
}

// Each opens the file at path and calls fn with every non-empty text of
// column.
func Each(path, column string, fn func(text string)) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer file.Close()

	r, err := NewReader(file, path, column)
	if err != nil {
		return Stats{}, err
	}

	for {
		text, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return r.Stats(), err
		}
		fn(text)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"rows":    r.stats.Rows,
		"skipped": r.stats.Skipped,
	}).Debug("stories loaded")

	return r.Stats(), nil
}
