// core/primer/scan.go
package primer

import (
	"sort"
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Counts tallies sequences where a primer's literal or reverse-complement
// form sits at either end.
type Counts struct {
	Literal int `json:"literal"`
	RevComp int `json:"revcomp"`
}

// Orientation of a primer as found in the library.
type Orientation string

const (
	OrientNone    Orientation = "none"
	OrientLiteral Orientation = "literal"
	OrientRevComp Orientation = "revcomp"
)

// Choose picks the form found in more than half of the anchored matches.
// No matches yields OrientNone; an even split is refused.
func (c Counts) Choose() (Orientation, error) {
	total := c.Literal + c.RevComp
	switch {
	case total == 0:
		return OrientNone, nil
	case 2*c.Literal > total:
		return OrientLiteral, nil
	case 2*c.RevComp > total:
		return OrientRevComp, nil
	}
	return OrientNone, errs.Undevelopedf("primer found as literal in %d and as reverse complement in %d sequences; cannot pick a form", c.Literal, c.RevComp)
}

// End of a sequence a primer form is anchored to.
type End int

const (
	FivePrime End = iota
	ThreePrime
)

func (e End) String() string {
	if e == ThreePrime {
		return "3'"
	}
	return "5'"
}

// Site is a primer form and the end it is trimmed from. An empty Primer
// trims nothing.
type Site struct {
	Primer string
	End    End
}

type tally struct {
	lit, rc string
	counts  Counts
	// at[form][end] with form 0 literal, 1 reverse complement.
	at [2][2]int
}

func newTally(p string) *tally {
	if p == "" {
		return nil
	}
	return &tally{lit: p, rc: RevComp(p)}
}

// observe returns false when the primer occurs only away from both ends.
// A palindromic primer counts as literal only.
func (p *tally) observe(seq string) bool {
	if p == nil {
		return true
	}
	var hits [2][2]bool
	for f, form := range []string{p.lit, p.rc} {
		if f == 1 && p.rc == p.lit {
			break
		}
		hits[f] = [2]bool{strings.HasPrefix(seq, form), strings.HasSuffix(seq, form)}
	}
	for f := range hits {
		for e, hit := range hits[f] {
			if hit {
				p.at[f][e]++
			}
		}
	}
	lit := hits[0][0] || hits[0][1]
	rc := hits[1][0] || hits[1][1]
	if lit {
		p.counts.Literal++
	}
	if rc {
		p.counts.RevComp++
	}
	if lit || rc {
		return true
	}
	return !strings.Contains(seq, p.lit) && !strings.Contains(seq, p.rc)
}

// Scanner is the mandatory pre-pass over every sequence before trimming.
// Primers are upper-case; sequences are compared upper-cased.
type Scanner struct {
	fwd, rev *tally
	casings  map[Casing]bool
	invalid  map[rune]bool
	seen     int
}

func NewScanner(forward, reverse string) *Scanner {
	return &Scanner{
		fwd:     newTally(Normalize(forward)),
		rev:     newTally(Normalize(reverse)),
		casings: map[Casing]bool{},
		invalid: map[rune]bool{},
	}
}

// Scan records one sequence. A primer found only mid-sequence is refused.
func (s *Scanner) Scan(seq string) error {
	s.seen++
	s.casings[CasingOf(seq)] = true
	for _, r := range Invalid(seq) {
		s.invalid[r] = true
	}
	up := strings.ToUpper(seq)
	if !s.fwd.observe(up) {
		return errs.Undevelopedf("sequence %d: forward primer %s found away from both ends", s.seen, s.fwd.lit).
			WithHint("trimming primers inside a sequence is not supported")
	}
	if !s.rev.observe(up) {
		return errs.Undevelopedf("sequence %d: reverse primer %s found away from both ends", s.seen, s.rev.lit).
			WithHint("trimming primers inside a sequence is not supported")
	}
	return nil
}

// Freeze snapshots the scan.
func (s *Scanner) Freeze() ScanState {
	st := ScanState{Sequences: s.seen}
	if s.fwd != nil {
		st.forward, st.Forward, st.fwdAt = s.fwd.lit, s.fwd.counts, s.fwd.at
	}
	if s.rev != nil {
		st.reverse, st.Reverse, st.revAt = s.rev.lit, s.rev.counts, s.rev.at
	}
	for c := range s.casings {
		st.Casings = append(st.Casings, c)
	}
	sort.Slice(st.Casings, func(i, j int) bool { return st.Casings[i] < st.Casings[j] })
	for r := range s.invalid {
		st.Invalid = append(st.Invalid, r)
	}
	sort.Slice(st.Invalid, func(i, j int) bool { return st.Invalid[i] < st.Invalid[j] })
	return st
}

// ScanState is the frozen result of a Scanner.
type ScanState struct {
	Sequences int
	Forward   Counts
	Reverse   Counts
	Casings   []Casing
	Invalid   []rune

	forward, reverse string
	fwdAt, revAt     [2][2]int
}

// PredictForward returns the form of the forward primer to trim and the
// end it sits at. The zero Site means nothing to trim.
func (s ScanState) PredictForward() (Site, error) { return predict(s.forward, s.Forward, s.fwdAt) }

// PredictReverse is PredictForward for the reverse primer.
func (s ScanState) PredictReverse() (Site, error) { return predict(s.reverse, s.Reverse, s.revAt) }

// predict takes the majority form, then the end that form was anchored to
// most often. On an even split of ends a literal form sits at the 5' end and
// a reverse complement at the 3' end.
func predict(p string, c Counts, at [2][2]int) (Site, error) {
	o, err := c.Choose()
	if err != nil {
		return Site{}, err
	}
	var site Site
	var f int
	switch o {
	case OrientLiteral:
		site = Site{Primer: p, End: FivePrime}
	case OrientRevComp:
		site, f = Site{Primer: RevComp(p), End: ThreePrime}, 1
	default:
		return Site{}, nil
	}
	switch five, three := at[f][FivePrime], at[f][ThreePrime]; {
	case five > three:
		site.End = FivePrime
	case three > five:
		site.End = ThreePrime
	}
	return site, nil
}

// Casing folds the observed casings into one class. Unknown (no letters)
// does not count against a consistent library.
func (s ScanState) Casing() Casing {
	var got []Casing
	for _, c := range s.Casings {
		if c != Unknown {
			got = append(got, c)
		}
	}
	switch len(got) {
	case 0:
		return Unknown
	case 1:
		return got[0]
	}
	return Mixed
}
