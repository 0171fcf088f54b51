// Package pipeline runs one word-frequency pass over a stories CSV:
// load, tokenize, count, optionally collapse variants, then write.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/basedalex/storywords/internal/report"
	"github.com/basedalex/storywords/internal/stories"
	"github.com/basedalex/storywords/pkg/config"
	"github.com/basedalex/storywords/pkg/frequency"
	"github.com/basedalex/storywords/pkg/words"
	"github.com/sirupsen/logrus"
)

type Kind int

const (
	KindOK Kind = iota
	KindColumnMissing
	KindIOFailure
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindColumnMissing:
		return "column missing"
	case KindIOFailure:
		return "io failure"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Result struct {
	Kind   Kind
	Err    error
	Input  string
	Output string
	Column string
	// Table is the final table before truncation. Nil unless Kind is KindOK.
	Table   *frequency.Table
	Written int
}

// Message is the line printed for the user.
func (r *Result) Message() string {
	switch r.Kind {
	case KindOK:
		return fmt.Sprintf("Word frequencies have been written to %s", r.Output)
	case KindColumnMissing:
		return fmt.Sprintf("Error: '%s' column not found in %s", r.Column, r.Input)
	}
	return fmt.Sprintf("An error occurred: %v", r.Err)
}

func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, stories.ErrColumnMissing):
		return KindColumnMissing
	}
	return KindIOFailure
}

// Count aggregates the tokens of every non-empty text in column of the CSV
// at path.
func Count(path, column string, cleaner words.Cleaner) (*frequency.Table, error) {
	table := frequency.NewTable()

	_, err := stories.Each(path, column, func(text string) {
		table.Add(cleaner.Clean(text)...)
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// Run executes the pipeline described by cfg. It never panics on bad input;
// every failure is reported through the Result.
func Run(cfg *config.Config) *Result {
	res := &Result{Column: cfg.Column}

	fail := func(err error) *Result {
		res.Kind = Classify(err)
		res.Err = err
		logrus.WithError(err).WithField("kind", res.Kind).Debug("run failed")
		return res
	}

	var err error
	if res.Input, err = cfg.InputPath(); err != nil {
		return fail(err)
	}
	if res.Output, err = cfg.OutputPath(); err != nil {
		return fail(err)
	}

	table, err := Count(res.Input, cfg.Column, words.NewNormalizer(cfg.FilterStopWords))
	if err != nil {
		return fail(err)
	}

	log := logrus.WithFields(logrus.Fields{
		"distinct": table.Len(),
		"total":    table.Total(),
	})

	if cfg.CollapseVariants {
		collapsed := frequency.Collapse(table)
		log = log.WithField("collapsed", table.Len()-collapsed.Len())
		table = collapsed
	}

	n, err := report.WriteFile(res.Output, table, report.Options{TopN: cfg.TopN, CRLF: cfg.CRLF})
	if err != nil {
		return fail(err)
	}

	log.WithFields(logrus.Fields{"written": n, "output": res.Output}).Info("word frequencies written")

	res.Kind = KindOK
	res.Table = table
	res.Written = n
	return res
}
