package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/iter"
)

var errConsumed = errors.New("rows already consumed; re-open the file to read again")

// Reader is a scoped, single-pass row reader positioned at the header row,
// or at the first tabular line when there is no header.
type Reader struct {
	path     string
	rc       io.ReadCloser
	cr       *csv.Reader
	peeked   []string
	hasPeek  bool
	consumed bool
	line     int
}

// Open re-opens p.Path at the tabular offset and skips preamble lines
// between the comment block and the header row.
func Open(p Properties) (*Reader, error) {
	r, err := openAt(p.Path, p.TabularStartOffset)
	if err != nil {
		return nil, err
	}
	skip := 0
	if p.HasHeader() {
		skip = p.HeaderLineIndex - p.StartLine
	}
	for i := 0; i < skip; i++ {
		if _, err := r.ReadString('\n'); err != nil {
			_ = r.Close()
			if err == io.EOF {
				return nil, fmt.Errorf("%s: header row %d is past the end of the file", p.Path, p.HeaderLineIndex)
			}
			return nil, err
		}
	}

	cr := csvh.CsvIn(r)
	cr.Comma = p.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return &Reader{path: p.Path, rc: r, cr: cr}, nil
}

func (r *Reader) read() ([]string, error) {
	rec, err := r.cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%s: record %d: %w", r.path, r.line+1, err)
	}
	r.line++
	return append([]string(nil), rec...), nil
}

// Peek returns the first row without consuming it. It returns io.EOF for an
// empty table.
func (r *Reader) Peek() ([]string, error) {
	if r.hasPeek {
		return append([]string(nil), r.peeked...), nil
	}
	if r.consumed {
		return nil, errConsumed
	}
	row, err := r.read()
	if err != nil {
		return nil, err
	}
	r.peeked, r.hasPeek = row, true
	return append([]string(nil), row...), nil
}

// Rows returns the lazy row sequence. It can be iterated once; each row is
// a fresh slice the consumer may modify.
func (r *Reader) Rows() iter.Iter[[]string] {
	return &iter.Iterator[[]string]{Iteratef: func(yield func([]string) error) error {
		if r.consumed {
			return errConsumed
		}
		r.consumed = true
		if r.hasPeek {
			r.hasPeek = false
			if err := yield(r.peeked); err != nil {
				return err
			}
			r.peeked = nil
		}
		for {
			row, err := r.read()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if err := yield(row); err != nil {
				return err
			}
		}
	}}
}

func (r *Reader) Close() error { return r.rc.Close() }
