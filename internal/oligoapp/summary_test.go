package oligoapp

import (
	"testing"

	"github.com/jgbaldwinbrown/iter"

	"github.com/cancerit/QUANTS-sub000/core/primer"
)

func TestLengths(t *testing.T) {
	l := lengths([]float64{4, 1, 3, 2})
	if l.Min != 1 || l.Max != 4 || l.Mean != 2.5 || l.Median != 2.5 {
		t.Fatalf("lengths = %+v", l)
	}
	// sample variance of 1..4 is 5/3
	if d := l.StdDev*l.StdDev - 5.0/3; d > 1e-9 || d < -1e-9 {
		t.Fatalf("stddev = %v", l.StdDev)
	}
	if one := lengths([]float64{7}); one.StdDev != 0 || one.Mean != 7 {
		t.Fatalf("single length = %+v", one)
	}
	if z := lengths(nil); z.Min != 0 || z.Max != 0 || z.Mean != 0 {
		t.Fatalf("empty lengths = %+v", z)
	}
}

func TestOligoSummary(t *testing.T) {
	rep := primer.Report{
		Sequences: 2,
		Casing:    primer.Upper,
		Rows: []primer.RowReport{
			{Row: 1, InLength: 10, OutLength: 4},
			{Row: 2, InLength: 12, OutLength: 6},
		},
		TrimmedForward: 2,
	}
	s := oligoSummary(rep, true)
	if s.Sequences != 2 || s.Casing != "upper" || !s.RevComp || s.TrimmedForward != 2 {
		t.Fatalf("summary = %+v", s)
	}
	if s.LengthIn.Median != 11 || s.LengthOut.Min != 4 {
		t.Fatalf("lengths in=%+v out=%+v", s.LengthIn, s.LengthOut)
	}
}

func TestRequireWidth(t *testing.T) {
	rows := iter.SliceIter[[]string]([][]string{{"a", "b", "c"}, {"d"}})
	_, err := iter.Collect[[]string](requireWidth(rows, []int{2, 0}))
	if err == nil {
		t.Fatalf("short row accepted")
	}
	rows = iter.SliceIter[[]string]([][]string{{"a", "b", "c"}})
	got, err := iter.Collect[[]string](requireWidth(rows, []int{2, 0}))
	if err != nil || len(got) != 1 {
		t.Fatalf("got %v, %v", got, err)
	}
}
