package transform

import (
	"strconv"
	"strings"

	"github.com/jgbaldwinbrown/iter"
	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

type NullPolicy int

const (
	NullOff NullPolicy = iota
	NullWarn
	NullError
)

func ParseNullPolicy(s string) (NullPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "none":
		return NullOff, nil
	case "warn":
		return NullWarn, nil
	case "error", "fail":
		return NullError, nil
	}
	return NullOff, errs.Validationf("invalid null policy %q; allowed: off, warn, error", s)
}

func (p NullPolicy) String() string {
	switch p {
	case NullWarn:
		return "warn"
	case NullError:
		return "error"
	}
	return "off"
}

var nullLike = map[string]bool{"": true, "na": true, "n/a": true, "nan": true, "null": true, "none": true, "-": true}

// IsNull reports whether v is empty or an NA-like marker.
func IsNull(v string) bool { return nullLike[strings.ToLower(strings.TrimSpace(v))] }

// NullCheck flags null values in the given source columns. A row too short
// to hold a column counts as null there.
type NullCheck struct {
	// Columns are 0-based source indices; Names label them in messages.
	Columns    []int
	Names      []string
	Policy     NullPolicy
	SkipHeader bool
	Log        logrus.FieldLogger

	flagged int
}

// Flagged is the number of null values seen so far.
func (n *NullCheck) Flagged() int { return n.flagged }

func (n *NullCheck) label(k int) string {
	if k < len(n.Names) && n.Names[k] != "" {
		return n.Names[k]
	}
	return "#" + strconv.Itoa(n.Columns[k])
}

// Apply passes rows through, warning or failing on null values per policy.
func (n *NullCheck) Apply(rows iter.Iter[[]string]) iter.Iter[[]string] {
	if n.Policy == NullOff {
		return rows
	}
	return &iter.Iterator[[]string]{Iteratef: func(yield func([]string) error) error {
		line := 0
		return rows.Iterate(func(row []string) error {
			line++
			if n.SkipHeader && line == 1 {
				return yield(row)
			}
			for k, c := range n.Columns {
				if c < len(row) && !IsNull(row[c]) {
					continue
				}
				n.flagged++
				what := "missing (row has " + strconv.Itoa(len(row)) + " columns)"
				if c < len(row) {
					what = "null value " + strconv.Quote(row[c])
				}
				if n.Policy == NullError {
					return errs.NullDataf("row %d column %s: %s", line, n.label(k), what).
						WithHint("fix the input or pass --null-policy warn")
				}
				if n.Log != nil {
					n.Log.Warnf("row %d column %s: %s", line, n.label(k), what)
				}
			}
			return yield(row)
		})
	}}
}
