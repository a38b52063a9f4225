package columns

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Mode says whether columns are addressed by header name or by position.
type Mode int

const (
	ModeName Mode = iota
	ModeIndex
)

func (m Mode) String() string {
	if m == ModeIndex {
		return "index"
	}
	return "name"
}

// ParseMode accepts "name" or "index".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "name", "names":
		return ModeName, nil
	case "index", "indices", "position":
		return ModeIndex, nil
	}
	return ModeName, errs.Validationf("invalid column mode %q; allowed: name, index", s)
}

// Selector addresses one column, either by name or by a 0-based index.
type Selector struct {
	name    string
	index   int
	byIndex bool
}

func ByName(name string) Selector { return Selector{name: name} }

// ByIndex takes a 0-based position.
func ByIndex(i int) Selector { return Selector{index: i, byIndex: true} }

func (s Selector) IsIndex() bool { return s.byIndex }
func (s Selector) Name() string  { return s.name }
func (s Selector) Index() int    { return s.index }

func (s Selector) String() string {
	if s.byIndex {
		return strconv.Itoa(s.index)
	}
	return s.name
}

// ParseSelectors validates raw command line values once. In index mode
// every value must be an integer, at least 1 when oneIndexed, and the
// returned selectors are always 0-based.
func ParseSelectors(vals []string, mode Mode, oneIndexed bool) ([]Selector, error) {
	out := make([]Selector, 0, len(vals))
	for _, v := range vals {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil, errs.Validationf("empty column selector")
		}
		if mode == ModeName {
			out = append(out, ByName(v))
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errs.Validationf("column %q is not an integer index", v)
		}
		if oneIndexed {
			if n < 1 {
				return nil, errs.Validationf("column index %d out of range; 1-indexed columns start at 1", n)
			}
			n--
		} else if n < 0 {
			return nil, errs.Validationf("column index %d out of range; 0-indexed columns start at 0", n)
		}
		out = append(out, ByIndex(n))
	}
	return out, nil
}

// SplitList splits comma separated flag values, dropping empty items.
func SplitList(vals ...string) []string {
	var out []string
	for _, v := range vals {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}
	return out
}

func display(s Selector, oneIndexed bool) string {
	if s.byIndex && oneIndexed {
		return fmt.Sprintf("%d", s.index+1)
	}
	return s.String()
}

// Label shows s the way the user wrote it.
func (s Selector) Label(oneIndexed bool) string { return display(s, oneIndexed) }
