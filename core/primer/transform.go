// core/primer/transform.go
package primer

import (
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

type Options struct {
	Forward string
	Reverse string
	// RevComp reverse-complements every output sequence, after trimming.
	RevComp bool
	// Trim removes the predicted primer forms.
	Trim bool
}

// RowReport describes what happened to one sequence.
type RowReport struct {
	Row            int    `json:"row"`
	InLength       int    `json:"in_length"`
	OutLength      int    `json:"out_length"`
	TrimmedForward bool   `json:"trimmed_forward"`
	TrimmedReverse bool   `json:"trimmed_reverse"`
	RevComp        bool   `json:"revcomp"`
	Sequence       string `json:"sequence"`
}

// Report summarises a Transform run.
type Report struct {
	Sequences      int         `json:"sequences"`
	Casing         Casing      `json:"casing"`
	Forward        string      `json:"forward_primer,omitempty"`
	Reverse        string      `json:"reverse_primer,omitempty"`
	ForwardUsed    string      `json:"forward_primer_used,omitempty"`
	ReverseUsed    string      `json:"reverse_primer_used,omitempty"`
	ForwardEnd     string      `json:"forward_primer_end,omitempty"`
	ReverseEnd     string      `json:"reverse_primer_end,omitempty"`
	ForwardCounts  Counts      `json:"forward_counts"`
	ReverseCounts  Counts      `json:"reverse_counts"`
	TrimmedForward int         `json:"trimmed_forward"`
	TrimmedReverse int         `json:"trimmed_reverse"`
	Rows           []RowReport `json:"-"`
}

// Transform scans all sequences, then trims and/or reverse-complements each.
// Lower-case libraries are upper-cased; mixed casing and characters outside
// Alphabet are validation errors.
func Transform(seqs []string, o Options) ([]string, Report, error) {
	fwd, rev := Normalize(o.Forward), Normalize(o.Reverse)
	for _, p := range []struct{ name, seq string }{{"forward", fwd}, {"reverse", rev}} {
		if bad := Invalid(p.seq); len(bad) > 0 {
			return nil, Report{}, errs.Validationf("%s primer %s has characters outside %s: %q", p.name, p.seq, Alphabet, string(bad))
		}
	}
	if o.Trim && fwd == "" && rev == "" {
		return nil, Report{}, errs.Validationf("trimming needs a forward and/or reverse primer")
	}

	sc := NewScanner(fwd, rev)
	for _, s := range seqs {
		if err := sc.Scan(s); err != nil {
			return nil, Report{}, err
		}
	}
	st := sc.Freeze()
	rep := Report{
		Sequences:     st.Sequences,
		Casing:        st.Casing(),
		Forward:       fwd,
		Reverse:       rev,
		ForwardCounts: st.Forward,
		ReverseCounts: st.Reverse,
	}
	if rep.Casing == Mixed {
		return nil, rep, errs.Validationf("sequences mix upper and lower case bases").
			WithHint("soft-masked libraries are not supported; normalise the case first")
	}
	if len(st.Invalid) > 0 {
		return nil, rep, errs.Validationf("sequences contain characters outside %s: %q", Alphabet, string(st.Invalid))
	}

	var fwdSite, revSite Site
	if o.Trim {
		var err error
		if fwdSite, err = st.PredictForward(); err != nil {
			return nil, rep, err
		}
		if revSite, err = st.PredictReverse(); err != nil {
			return nil, rep, err
		}
		rep.ForwardUsed, rep.ReverseUsed = fwdSite.Primer, revSite.Primer
		if fwdSite.Primer != "" {
			rep.ForwardEnd = fwdSite.End.String()
		}
		if revSite.Primer != "" {
			rep.ReverseEnd = revSite.End.String()
		}
	}

	out := make([]string, len(seqs))
	rep.Rows = make([]RowReport, len(seqs))
	for i, s := range seqs {
		s = strings.ToUpper(s)
		rr := RowReport{Row: i + 1, InLength: len(s)}
		if o.Trim {
			t, err := Trim(s, fwdSite, revSite)
			if err != nil {
				return nil, rep, err
			}
			s, rr.TrimmedForward, rr.TrimmedReverse = t.Seq, t.Forward, t.Reverse
			if t.Forward {
				rep.TrimmedForward++
			}
			if t.Reverse {
				rep.TrimmedReverse++
			}
		}
		if o.RevComp {
			s, rr.RevComp = RevComp(s), true
		}
		rr.OutLength, rr.Sequence = len(s), s
		out[i], rep.Rows[i] = s, rr
	}
	return out, rep, nil
}
