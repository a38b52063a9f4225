package columns

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Mapping renames columns, keyed by header value or by 0-based position.
type Mapping struct {
	Mode    Mode
	ByName  map[string]string
	ByIndex map[int]string
	// OneIndexed shows index keys 1-based in messages.
	OneIndexed bool
}

// ParseMapping reads "old:new" pairs. Index keys follow oneIndexed and are
// stored 0-based.
func ParseMapping(pairs []string, mode Mode, oneIndexed bool) (Mapping, error) {
	m := Mapping{Mode: mode, OneIndexed: oneIndexed}
	if mode == ModeName {
		m.ByName = make(map[string]string, len(pairs))
	} else {
		m.ByIndex = make(map[int]string, len(pairs))
	}
	for _, p := range pairs {
		old, repl, ok := strings.Cut(p, ":")
		old, repl = strings.TrimSpace(old), strings.TrimSpace(repl)
		if !ok || old == "" || repl == "" {
			return Mapping{}, errs.Validationf("invalid reheader pair %q; want old:new", p)
		}
		if mode == ModeName {
			if _, dup := m.ByName[old]; dup {
				return Mapping{}, errs.Validationf("column %q renamed twice", old)
			}
			m.ByName[old] = repl
			continue
		}
		sel, err := ParseSelectors([]string{old}, ModeIndex, oneIndexed)
		if err != nil {
			return Mapping{}, err
		}
		i := sel[0].Index()
		if _, dup := m.ByIndex[i]; dup {
			return Mapping{}, errs.Validationf("column %s renamed twice", old)
		}
		m.ByIndex[i] = repl
	}
	return m, nil
}

// key shows a 0-based index key the way the user wrote it.
func (m Mapping) key(i int) string {
	return display(Selector{byIndex: true, index: i}, m.OneIndexed)
}

func (m Mapping) Len() int {
	if m.Mode == ModeName {
		return len(m.ByName)
	}
	return len(m.ByIndex)
}

// Validate rejects duplicate target names and append in name mode. With
// append in index mode every relevant 0-based position must be renamed, or
// the synthesised header would be incomplete.
func (m Mapping) Validate(appendHeader bool, relevant []int) error {
	if appendHeader && m.Mode == ModeName {
		return errs.Validationf("--append-header needs --mode index; a header cannot be synthesised from names")
	}
	targets := make(map[string]string, m.Len())
	check := func(key, to string) error {
		if prev, dup := targets[to]; dup {
			return errs.Validationf("columns %s and %s both renamed to %q", prev, key, to)
		}
		targets[to] = key
		return nil
	}
	if m.Mode == ModeName {
		keys := make([]string, 0, len(m.ByName))
		for k := range m.ByName {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := check(strconv.Quote(k), m.ByName[k]); err != nil {
				return err
			}
		}
		return nil
	}

	keys := make([]int, 0, len(m.ByIndex))
	for k := range m.ByIndex {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if err := check(m.key(k), m.ByIndex[k]); err != nil {
			return err
		}
	}
	if !appendHeader {
		return nil
	}
	var uncovered []string
	for _, i := range relevant {
		if _, ok := m.ByIndex[i]; !ok {
			uncovered = append(uncovered, m.key(i))
		}
	}
	if len(uncovered) > 0 {
		return errs.Validationf("--append-header needs a new name for every selected column; missing columns: %s",
			strings.Join(uncovered, ", "))
	}
	return nil
}
