package primer

import (
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

type Trimmed struct {
	Seq     string
	Forward bool
	Reverse bool
}

func (s Site) matches(up string) bool {
	switch {
	case s.Primer == "":
		return false
	case s.End == ThreePrime:
		return strings.HasSuffix(up, s.Primer)
	}
	return strings.HasPrefix(up, s.Primer)
}

// Trim cuts each primer form from the end its Site names. Empty primers are
// never trimmed. Two matches claiming the same end, or overlapping across
// the sequence, are refused rather than resolved.
func Trim(seq string, fwd, rev Site) (Trimmed, error) {
	up := strings.ToUpper(seq)
	t := Trimmed{Forward: fwd.matches(up), Reverse: rev.matches(up)}

	overlap := func() error {
		return errs.Undevelopedf("forward primer %s (%s) and reverse primer %s (%s) overlap in %s",
			fwd.Primer, fwd.End, rev.Primer, rev.End, seq).
			WithHint("overlapping primers are not supported")
	}
	start, end := 0, len(seq)
	for _, c := range []struct {
		site Site
		hit  bool
	}{{fwd, t.Forward}, {rev, t.Reverse}} {
		if !c.hit {
			continue
		}
		if c.site.End == ThreePrime {
			if end < len(seq) {
				return Trimmed{}, overlap()
			}
			end = len(seq) - len(c.site.Primer)
		} else {
			if start > 0 {
				return Trimmed{}, overlap()
			}
			start = len(c.site.Primer)
		}
	}
	if start > end {
		return Trimmed{}, overlap()
	}
	t.Seq = seq[start:end]
	return t, nil
}
