package tabular

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// NoHeader is the header index meaning "no header row".
const NoHeader = -1

// Header location methods.
const (
	MethodForced    = "forced"
	MethodName      = "name"
	MethodHeuristic = "heuristic"
	MethodNone      = "none"
)

// HeaderLocation is the line index of the column header row, counted from
// the top of the file including comment lines.
type HeaderLocation struct {
	Index  int
	Forced bool
	Method string
}

type LocateOptions struct {
	// Candidates are expected column names; when empty the heuristic runs.
	Candidates []string
	// ForcedIndex, when set, is returned verbatim. *ForcedIndex == NoHeader
	// asserts the file has no header.
	ForcedIndex *int
	// Rigorous falls back to the heuristic when name matching finds nothing.
	Rigorous bool
	// SuppressSniffError turns heuristic failures into NoHeader.
	SuppressSniffError bool
	CaseSensitive      bool
	Log                logrus.FieldLogger
}

// Locate decides which line, if any, is the column header row.
func Locate(path string, d Dialect, o LocateOptions) (HeaderLocation, error) {
	if o.ForcedIndex != nil {
		return HeaderLocation{Index: *o.ForcedIndex, Forced: true, Method: MethodForced}, nil
	}
	log := o.Log
	if log == nil {
		log = discardLogger()
	}

	if len(o.Candidates) > 0 {
		idx, err := matchNames(path, d, o.Candidates, o.CaseSensitive)
		if err != nil {
			return HeaderLocation{}, err
		}
		if idx != NoHeader {
			return HeaderLocation{Index: idx, Method: MethodName}, nil
		}
		if !o.Rigorous {
			log.Warnf("%s: header row not found by name", path)
			return HeaderLocation{Index: NoHeader, Method: MethodNone}, nil
		}
		idx, err = heuristic(path, d, o.SuppressSniffError)
		if err != nil {
			return HeaderLocation{}, err
		}
		if idx == NoHeader {
			log.Warnf("%s: header row not found by name or heuristic", path)
			return HeaderLocation{Index: NoHeader, Method: MethodNone}, nil
		}
		log.Warnf("%s: header row not found by name; heuristic chose line %d", path, idx)
		return HeaderLocation{Index: idx, Method: MethodHeuristic}, nil
	}

	idx, err := heuristic(path, d, o.SuppressSniffError)
	if err != nil {
		return HeaderLocation{}, err
	}
	if idx == NoHeader {
		log.Warnf("%s: header row not found by heuristic", path)
		return HeaderLocation{Index: NoHeader, Method: MethodNone}, nil
	}
	return HeaderLocation{Index: idx, Method: MethodHeuristic}, nil
}

// RequireHeader turns a missing header into a user intervention error.
func RequireHeader(path string, loc HeaderLocation, reason string) error {
	if loc.Index != NoHeader {
		return nil
	}
	return errs.Interventionf("%s: no column header row found but %s", path, reason).
		WithHint("pass --header-row with the 0-based line index of the header, or use --mode index")
}

// matchNames scores the first Lookahead lines after the comment block by
// how many candidates occur in them as substrings. The earliest line with
// the highest non-zero score wins.
func matchNames(path string, d Dialect, cands []string, caseSensitive bool) (int, error) {
	r, err := openAt(path, d.Offset)
	if err != nil {
		return NoHeader, err
	}
	defer func() { _ = r.Close() }()

	norm := func(s string) string {
		if caseSensitive {
			return s
		}
		return strings.ToLower(s)
	}
	want := make([]string, 0, len(cands))
	for _, c := range cands {
		if c = norm(c); c != "" {
			want = append(want, c)
		}
	}

	best, bestScore := NoHeader, 0
	for i := 0; i < Lookahead; i++ {
		line, rerr := r.ReadString('\n')
		if len(line) == 0 && rerr == io.EOF {
			break
		}
		if rerr != nil && rerr != io.EOF {
			return NoHeader, rerr
		}
		l := norm(line)
		score := 0
		for _, c := range want {
			if strings.Contains(l, c) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = d.StartLine+i, score
		}
		if rerr == io.EOF {
			break
		}
	}
	return best, nil
}

// heuristic samples the tabular block and asks HasHeader about its first
// row. Only the first line after the comment block can be chosen.
func heuristic(path string, d Dialect, suppress bool) (int, error) {
	rows, err := sampleRows(path, d)
	if err == nil && len(rows) == 0 {
		err = errs.Validationf("%s: no rows after the comment block to inspect for a header", path)
	}
	if err != nil {
		if suppress {
			return NoHeader, nil
		}
		return NoHeader, err
	}
	if HasHeader(rows) {
		return d.StartLine, nil
	}
	return NoHeader, nil
}

func sampleRows(path string, d Dialect) ([][]string, error) {
	buf, err := sample(path, d.Offset)
	if err != nil {
		return nil, err
	}
	cr := csvh.CsvIn(bytes.NewReader(buf))
	cr.Comma = d.Delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for len(rows) <= Lookahead {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errs.Validationf("%s: cannot parse sample with delimiter %s: %v", path, DelimiterName(d.Delimiter), err)
		}
		rows = append(rows, append([]string(nil), rec...))
	}
	return rows, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
