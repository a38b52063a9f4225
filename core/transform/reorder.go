package transform

import (
	"github.com/jgbaldwinbrown/iter"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Reorder selects and orders columns by 0-based source index.
type Reorder struct {
	indices []int
}

// NewReorder rejects negative and repeated indices.
func NewReorder(indices []int) (*Reorder, error) {
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 {
			return nil, errs.Validationf("negative column index %d in reorder", i)
		}
		if seen[i] {
			return nil, errs.Validationf("column index %d repeated in reorder", i)
		}
		seen[i] = true
	}
	return &Reorder{indices: append([]int(nil), indices...)}, nil
}

func (r *Reorder) Indices() []int { return append([]int(nil), r.indices...) }

// Row builds the output row. Indices past the end of row are omitted, so
// short rows come out shorter.
func (r *Reorder) Row(row []string) []string {
	out := make([]string, 0, len(r.indices))
	for _, i := range r.indices {
		if i < len(row) {
			out = append(out, row[i])
		}
	}
	return out
}

func (r *Reorder) Apply(rows iter.Iter[[]string]) iter.Iter[[]string] {
	return iter.Transform[[]string, []string](rows, func(row []string) ([]string, error) {
		return r.Row(row), nil
	})
}

// Process reheaders then reorders. Either stage may be nil.
func Process(rows iter.Iter[[]string], h *Reheader, r *Reorder) iter.Iter[[]string] {
	if h != nil {
		rows = h.Apply(rows)
	}
	if r != nil {
		rows = r.Apply(rows)
	}
	return rows
}
