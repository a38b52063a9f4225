// core/primer/trim_test.go
package primer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

func five(p string) Site  { return Site{p, FivePrime} }
func three(p string) Site { return Site{p, ThreePrime} }

func TestTrim(t *testing.T) {
	cases := []struct {
		seq      string
		fwd, rev Site
		want     Trimmed
	}{
		{"AAACCCGGG", five("AAA"), three("GGG"), Trimmed{"CCC", true, true}},
		{"AAACCCGGG", five("AAA"), Site{}, Trimmed{"CCCGGG", true, false}},
		{"AAACCCGGG", Site{}, three("GGG"), Trimmed{"AAACCC", false, true}},
		{"AAACCCGGG", five("TTT"), three("GGG"), Trimmed{"AAACCC", false, true}},
		{"AAACCC", five("AAA"), three("CCC"), Trimmed{"", true, true}},
		{"aaacccggg", five("AAA"), Site{}, Trimmed{"cccggg", true, false}},
		// opposite strand: forward at the 3' end, reverse at the 5' end
		{"AAACCCGGG", three("GGG"), five("AAA"), Trimmed{"CCC", true, true}},
		// a form only trims at its own end
		{"AAACCCGGG", three("AAA"), Site{}, Trimmed{"AAACCCGGG", false, false}},
	}
	for _, c := range cases {
		got, err := Trim(c.seq, c.fwd, c.rev)
		if err != nil || !reflect.DeepEqual(got, c.want) {
			t.Errorf("Trim(%s, %+v, %+v) = %+v, %v; want %+v", c.seq, c.fwd, c.rev, got, err, c.want)
		}
	}
}

func TestTrimOverlap(t *testing.T) {
	if _, err := Trim("AAACCC", five("AAAC"), three("ACCC")); !errors.Is(err, errs.ErrUndeveloped) {
		t.Fatalf("want undeveloped overlap error, got %v", err)
	}
	if _, err := Trim("AAACCC", five("AA"), five("AAA")); !errors.Is(err, errs.ErrUndeveloped) {
		t.Fatalf("want undeveloped error for two primers at one end, got %v", err)
	}
}

func TestTransform(t *testing.T) {
	rev := "CCTTGA" // revcomp TCAAGG appears at the 3' end
	seqs := []string{fwd + "AAAA" + RevComp(rev), fwd + "GGGG" + RevComp(rev), fwd + "TTTT"}
	out, rep, err := Transform(seqs, Options{Forward: fwd, Reverse: rev, Trim: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"AAAA", "GGGG", "TTTT"}) {
		t.Fatalf("out = %v", out)
	}
	if rep.ForwardUsed != fwd || rep.ReverseUsed != RevComp(rev) {
		t.Fatalf("used primers %q %q", rep.ForwardUsed, rep.ReverseUsed)
	}
	if rep.TrimmedForward != 3 || rep.TrimmedReverse != 2 || rep.ReverseCounts != (Counts{0, 2}) {
		t.Fatalf("report = %+v", rep)
	}
	if len(rep.Rows) != 3 || rep.Rows[2].TrimmedReverse || rep.Rows[0].OutLength != 4 {
		t.Fatalf("rows = %+v", rep.Rows)
	}
}

func TestTransformOppositeStrand(t *testing.T) {
	const f, r = "ACGTAC", "TTGGCC"
	inserts := []string{"AAAA", "GGGG", "AAGG"}
	var seqs, want []string
	for _, ins := range inserts {
		seqs = append(seqs, RevComp(f+ins+RevComp(r)))
		want = append(want, RevComp(ins))
	}
	out, rep, err := Transform(seqs, Options{Forward: f, Reverse: r, Trim: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("out = %v; want %v", out, want)
	}
	if rep.ForwardUsed != RevComp(f) || rep.ForwardEnd != "3'" || rep.ReverseUsed != r || rep.ReverseEnd != "5'" {
		t.Fatalf("used primers %+v", rep)
	}
	if rep.TrimmedForward != 3 || rep.TrimmedReverse != 3 {
		t.Fatalf("trimmed %d/%d; want 3/3", rep.TrimmedForward, rep.TrimmedReverse)
	}
}

func TestTransformPalindromicPrimer(t *testing.T) {
	seqs := []string{"GAATTCAAAACCCC", "GAATTCGGGGTTTT", "GAATTCACACACAC"}
	out, rep, err := Transform(seqs, Options{Forward: "GAATTC", Trim: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out, []string{"AAAACCCC", "GGGGTTTT", "ACACACAC"}) || rep.TrimmedForward != 3 {
		t.Fatalf("out = %v, report = %+v", out, rep)
	}
}

func TestTransformRevCompAfterTrim(t *testing.T) {
	out, _, err := Transform([]string{fwd + "AACC"}, Options{Forward: fwd, Trim: true, RevComp: true})
	if err != nil || !reflect.DeepEqual(out, []string{"GGTT"}) {
		t.Fatalf("out = %v, %v", out, err)
	}
}

func TestTransformCasing(t *testing.T) {
	out, rep, err := Transform([]string{"acgt", "ggcc"}, Options{})
	if err != nil || rep.Casing != Lower || !reflect.DeepEqual(out, []string{"ACGT", "GGCC"}) {
		t.Fatalf("lower-case library: %v %+v %v", out, rep, err)
	}
	if _, _, err := Transform([]string{"acgt", "GGCC"}, Options{}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("mixed casing accepted: %v", err)
	}
	if _, _, err := Transform([]string{"ACGU"}, Options{}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("invalid base accepted: %v", err)
	}
	if _, _, err := Transform([]string{"ACGT"}, Options{Trim: true}); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("trim without primers accepted: %v", err)
	}
}
