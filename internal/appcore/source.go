// internal/appcore/source.go
package appcore

import (
	"errors"
	"io"

	"github.com/jgbaldwinbrown/iter"
	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/tabular"
)

// Source is the inspected input handed to a Planner.
type Source struct {
	Props tabular.Properties
	// Header is the column header row, nil when the file has none.
	Header []string
	// First is the first row read, header or data; nil for an empty table.
	First []string
	Log   logrus.FieldLogger

	r    *tabular.Reader
	rows int
}

func openSource(p tabular.Properties, log logrus.FieldLogger) (*Source, error) {
	r, err := tabular.Open(p)
	if err != nil {
		return nil, err
	}
	s := &Source{Props: p, Log: log, r: r}
	first, err := r.Peek()
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		_ = r.Close()
		return nil, err
	default:
		s.First = first
		if p.HasHeader() {
			s.Header = first
		}
	}
	return s, nil
}

// Rows is the single-pass row sequence, header row included.
func (s *Source) Rows() iter.Iter[[]string] {
	inner := s.r.Rows()
	return &iter.Iterator[[]string]{Iteratef: func(yield func([]string) error) error {
		return inner.Iterate(func(row []string) error {
			s.rows++
			return yield(row)
		})
	}}
}

// Body is Rows without the header row.
func (s *Source) Body() iter.Iter[[]string] {
	if s.Header == nil {
		return s.Rows()
	}
	return skipFirst(s.Rows())
}

// DataRows is the number of non-header rows read so far.
func (s *Source) DataRows() int {
	if s.Header != nil && s.rows > 0 {
		return s.rows - 1
	}
	return s.rows
}

// CountColumns re-opens the input for an independent pass and counts
// columns over data rows.
func (s *Source) CountColumns(comprehensive bool) (columns.Count, error) {
	r, err := tabular.Open(s.Props)
	if err != nil {
		return columns.Count{}, err
	}
	defer func() { _ = r.Close() }()
	rows := r.Rows()
	if s.Header != nil {
		rows = skipFirst(rows)
	}
	return columns.CountColumns(rows, comprehensive)
}

func (s *Source) Close() error { return s.r.Close() }

func skipFirst(rows iter.Iter[[]string]) iter.Iter[[]string] {
	return &iter.Iterator[[]string]{Iteratef: func(yield func([]string) error) error {
		first := true
		return rows.Iterate(func(row []string) error {
			if first {
				first = false
				return nil
			}
			return yield(row)
		})
	}}
}
