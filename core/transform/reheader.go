package transform

import (
	"strconv"

	"github.com/jgbaldwinbrown/iter"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// PlaceholderPrefix names synthesised header fields before renaming.
const PlaceholderPrefix = "column_"

// Reheader renames the header row. In name mode a field is renamed when its
// value is a mapping key; in index mode by position. With Append a new
// header row is synthesised and the original first row is kept as data.
type Reheader struct {
	Mapping columns.Mapping
	Append  bool
	// Width of the synthesised header; 0 means the first row's width.
	Width int
}

// NewReheader rejects append in name mode.
func NewReheader(m columns.Mapping, appendHeader bool, width int) (*Reheader, error) {
	if appendHeader && m.Mode == columns.ModeName {
		return nil, errs.Validationf("cannot append a header when renaming by name; use --mode index")
	}
	if width < 0 {
		return nil, errs.Validationf("negative header width %d", width)
	}
	return &Reheader{Mapping: m, Append: appendHeader, Width: width}, nil
}

// Header renames or synthesises the header for first. It does not modify
// first.
func (h *Reheader) Header(first []string) []string {
	if h.Append {
		w := h.Width
		if w == 0 {
			w = len(first)
		}
		out := make([]string, w)
		for i := range out {
			if to, ok := h.Mapping.ByIndex[i]; ok {
				out[i] = to
			} else {
				out[i] = PlaceholderPrefix + strconv.Itoa(i)
			}
		}
		return out
	}
	out := append([]string(nil), first...)
	for i, v := range out {
		var to string
		var ok bool
		if h.Mapping.Mode == columns.ModeName {
			to, ok = h.Mapping.ByName[v]
		} else {
			to, ok = h.Mapping.ByIndex[i]
		}
		if ok {
			out[i] = to
		}
	}
	return out
}

// Apply lazily reheaders rows. An empty sequence stays empty.
func (h *Reheader) Apply(rows iter.Iter[[]string]) iter.Iter[[]string] {
	return &iter.Iterator[[]string]{Iteratef: func(yield func([]string) error) error {
		first := true
		return rows.Iterate(func(row []string) error {
			if !first {
				return yield(row)
			}
			first = false
			if err := yield(h.Header(row)); err != nil {
				return err
			}
			if h.Append {
				return yield(row)
			}
			return nil
		})
	}}
}
