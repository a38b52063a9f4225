package columns

import (
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Spec is the validated column selection: the output order plus which of
// those columns must exist.
type Spec struct {
	Order    []Selector
	Required []Selector
	Optional []Selector
}

// NewSpec checks that order is exactly required plus optional, that the two
// are disjoint and that nothing repeats. An empty order means required then
// optional. oneIndexed only affects how indices are shown in errors.
func NewSpec(order, required, optional []Selector, oneIndexed bool) (Spec, error) {
	if err := noRepeats("required", required, oneIndexed); err != nil {
		return Spec{}, err
	}
	if err := noRepeats("optional", optional, oneIndexed); err != nil {
		return Spec{}, err
	}
	req := make(map[Selector]bool, len(required))
	for _, s := range required {
		req[s] = true
	}
	union := make(map[Selector]bool, len(required)+len(optional))
	for k := range req {
		union[k] = true
	}
	var both []string
	for _, s := range optional {
		if req[s] {
			both = append(both, display(s, oneIndexed))
		}
		union[s] = true
	}
	if len(both) > 0 {
		return Spec{}, errs.Validationf("columns both required and optional: %s", strings.Join(both, ", "))
	}
	if len(union) == 0 {
		return Spec{}, errs.Validationf("no columns selected; pass --required and/or --optional")
	}

	if len(order) == 0 {
		order = append(append([]Selector(nil), required...), optional...)
	}
	if err := noRepeats("order", order, oneIndexed); err != nil {
		return Spec{}, err
	}
	seen := make(map[Selector]bool, len(order))
	for _, s := range order {
		if !union[s] {
			return Spec{}, errs.Validationf("ordered column %s is neither required nor optional", display(s, oneIndexed))
		}
		seen[s] = true
	}
	var missing []string
	for _, s := range append(append([]Selector(nil), required...), optional...) {
		if !seen[s] {
			missing = append(missing, display(s, oneIndexed))
		}
	}
	if len(missing) > 0 {
		return Spec{}, errs.Validationf("columns missing from --order: %s", strings.Join(missing, ", "))
	}
	return Spec{
		Order:    append([]Selector(nil), order...),
		Required: append([]Selector(nil), required...),
		Optional: append([]Selector(nil), optional...),
	}, nil
}

func noRepeats(what string, sel []Selector, oneIndexed bool) error {
	seen := make(map[Selector]bool, len(sel))
	for _, s := range sel {
		if seen[s] {
			return errs.Validationf("column %s repeated in %s", display(s, oneIndexed), what)
		}
		seen[s] = true
	}
	return nil
}

// IsRequired reports whether s must be present in the input.
func (s Spec) IsRequired(sel Selector) bool {
	for _, r := range s.Required {
		if r == sel {
			return true
		}
	}
	return false
}

// Names returns the names of name-mode selectors in order.
func Names(sel []Selector) []string {
	out := make([]string, 0, len(sel))
	for _, s := range sel {
		if !s.byIndex {
			out = append(out, s.name)
		}
	}
	return out
}
