package columns

import (
	"errors"
	"sort"

	"github.com/jgbaldwinbrown/iter"
)

var errStop = errors.New("stop")

// Count is the established column count of a table.
type Count struct {
	N int
	// Uniform is false when any scanned row has a different width than N.
	Uniform bool
	// Rows is how many rows were scanned.
	Rows int
}

// CountColumns takes the width of the first row, or with comprehensive the
// modal width of all rows; ties go to the narrower width. An empty table has
// zero columns.
func CountColumns(rows iter.Iter[[]string], comprehensive bool) (Count, error) {
	var widths []int
	err := rows.Iterate(func(row []string) error {
		widths = append(widths, len(row))
		if !comprehensive {
			return errStop
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStop) {
		return Count{}, err
	}
	if len(widths) == 0 {
		return Count{Uniform: true}, nil
	}
	if !comprehensive {
		return Count{N: widths[0], Uniform: true, Rows: 1}, nil
	}

	// Runs over the sorted widths; the first longest run is the narrowest mode.
	sort.Ints(widths)
	n, best := widths[0], 0
	for i := 0; i < len(widths); {
		j := i
		for j < len(widths) && widths[j] == widths[i] {
			j++
		}
		if j-i > best {
			n, best = widths[i], j-i
		}
		i = j
	}
	return Count{N: n, Uniform: widths[0] == widths[len(widths)-1], Rows: len(widths)}, nil
}
