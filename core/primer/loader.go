// core/primer/loader.go
package primer

import (
	"fmt"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/fasttsv"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Pair is a named forward/reverse primer pair.
type Pair struct {
	ID      string `json:"id"`
	Forward string `json:"forward"`
	Reverse string `json:"reverse"`
}

// LoadPairs reads a tab separated "id fwd rev" file (gzip aware). Blank
// lines and lines starting with '#' are skipped.
func LoadPairs(path string) (list []Pair, err error) {
	r, err := csvh.OpenMaybeGz(path)
	if err != nil {
		return nil, err
	}
	defer func() { csvh.DeferE(&err, r.Close()) }()

	s := fasttsv.NewScanner(r)
	seen := map[string]bool{}
	for ln := 1; s.Scan(); ln++ {
		f := s.Line()
		if len(f) == 0 || (len(f) == 1 && strings.TrimSpace(f[0]) == "") || strings.HasPrefix(f[0], "#") {
			continue
		}
		if len(f) != 3 {
			return nil, errs.Validationf("%s:%d: want 3 tab separated fields (id, forward, reverse), got %d", path, ln, len(f))
		}
		var p Pair
		if _, err := csvh.Scan(f, &p.ID, &p.Forward, &p.Reverse); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, ln, err)
		}
		p.Forward, p.Reverse = Normalize(p.Forward), Normalize(p.Reverse)
		if seen[p.ID] {
			return nil, errs.Validationf("%s:%d: primer pair %q listed twice", path, ln, p.ID)
		}
		seen[p.ID] = true
		list = append(list, p)
	}
	return list, nil
}

// Lookup returns the pair named id.
func Lookup(pairs []Pair, id string) (Pair, error) {
	for _, p := range pairs {
		if p.ID == id {
			return p, nil
		}
	}
	ids := make([]string, len(pairs))
	for i, p := range pairs {
		ids[i] = p.ID
	}
	return Pair{}, errs.Validationf("primer pair %q not found; known: %s", id, strings.Join(ids, ", "))
}
