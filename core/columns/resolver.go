package columns

import (
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Policy controls name to index translation.
type Policy struct {
	OneIndexed  bool
	DropMissing bool
}

// Duplicate is one occurrence of a header name that appears more than once.
type Duplicate struct {
	Name  string
	Index int
}

// Resolver maps header names to positions. The first occurrence of a
// repeated name wins.
type Resolver struct {
	header []string
	first  map[string]int
}

func NewResolver(header []string) *Resolver {
	r := &Resolver{header: append([]string(nil), header...), first: make(map[string]int, len(header))}
	for i, h := range header {
		if _, ok := r.first[h]; !ok {
			r.first[h] = i
		}
	}
	return r
}

func (r *Resolver) Len() int         { return len(r.header) }
func (r *Resolver) Header() []string { return append([]string(nil), r.header...) }

// Translate returns one index per name, in input order. A name requested
// twice yields its index twice. Unknown names are an error listing the
// valid set, unless p.DropMissing, in which case they are skipped and
// returned as missing.
func (r *Resolver) Translate(names []string, p Policy) ([]int, []string, error) {
	out := make([]int, 0, len(names))
	var missing []string
	for _, n := range names {
		i, ok := r.first[n]
		if !ok {
			missing = append(missing, n)
			continue
		}
		if p.OneIndexed {
			i++
		}
		out = append(out, i)
	}
	if len(missing) > 0 && !p.DropMissing {
		return nil, missing, errs.Validationf("columns not in header: %s; valid columns: %s",
			strings.Join(missing, ", "), strings.Join(r.header, ", "))
	}
	return out, missing, nil
}

// Names maps indices back to header names.
func (r *Resolver) Names(indices []int, oneIndexed bool) ([]string, error) {
	if err := CheckIndices(indices, len(r.header), oneIndexed); err != nil {
		return nil, err
	}
	out := make([]string, len(indices))
	for i, idx := range ToZeroBased(indices, oneIndexed) {
		out[i] = r.header[idx]
	}
	return out, nil
}

// Duplicates lists every occurrence, first included, of each name that
// appears more than once, in column order.
func (r *Resolver) Duplicates() []Duplicate {
	count := make(map[string]int, len(r.header))
	for _, h := range r.header {
		count[h]++
	}
	var out []Duplicate
	for i, h := range r.header {
		if count[h] > 1 {
			out = append(out, Duplicate{Name: h, Index: i})
		}
	}
	return out
}

// CheckIndices rejects indices outside [1,count] (oneIndexed) or
// [0,count-1].
func CheckIndices(indices []int, count int, oneIndexed bool) error {
	lo, hi := 0, count-1
	if oneIndexed {
		lo, hi = 1, count
	}
	for _, i := range indices {
		if i < lo || i > hi {
			if count == 0 {
				return errs.Validationf("column index %d out of range; the table has no columns", i)
			}
			return errs.Validationf("column index %d out of range [%d, %d]", i, lo, hi)
		}
	}
	return nil
}

func ToZeroBased(indices []int, oneIndexed bool) []int {
	out := make([]int, len(indices))
	for i, v := range indices {
		if oneIndexed {
			v--
		}
		out[i] = v
	}
	return out
}

// Resolved is a Spec bound to a concrete table.
type Resolved struct {
	// Indices are 0-based source positions in output order.
	Indices []int
	// Columns are the selectors that resolved, parallel to Indices.
	Columns []Selector
	// Dropped are optional columns absent from the table.
	Dropped []Selector
}

// Bind resolves s against a table of count columns. Name selectors need a
// resolver; index selectors are bounds checked. Absent optional columns are
// dropped, absent required columns are an error.
func Bind(s Spec, r *Resolver, count int, oneIndexed bool) (Resolved, error) {
	var out Resolved
	var missing []string
	for _, sel := range s.Order {
		idx, ok := -1, false
		if sel.IsIndex() {
			idx, ok = sel.Index(), sel.Index() < count
		} else if r != nil {
			idx, ok = r.first[sel.Name()]
		}
		switch {
		case ok:
			out.Indices = append(out.Indices, idx)
			out.Columns = append(out.Columns, sel)
		case s.IsRequired(sel):
			missing = append(missing, display(sel, oneIndexed))
		default:
			out.Dropped = append(out.Dropped, sel)
		}
	}
	if len(missing) == 0 {
		return out, nil
	}
	if s.Order[0].IsIndex() {
		lo, hi := 0, count-1
		if oneIndexed {
			lo, hi = 1, count
		}
		return Resolved{}, errs.Validationf("required column index %s out of range [%d, %d]", strings.Join(missing, ", "), lo, hi)
	}
	valid := "none"
	if r != nil {
		valid = strings.Join(r.header, ", ")
	}
	return Resolved{}, errs.Validationf("required columns not in header: %s; valid columns: %s", strings.Join(missing, ", "), valid)
}
