// core/primer/scan_test.go
package primer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

const fwd = "ACGTTG" // revcomp CAACGT

func scanAll(t *testing.T, s *Scanner, seqs ...string) ScanState {
	t.Helper()
	for _, q := range seqs {
		if err := s.Scan(q); err != nil {
			t.Fatalf("scan %s: %v", q, err)
		}
	}
	return s.Freeze()
}

func TestPredictLiteralForward(t *testing.T) {
	st := scanAll(t, NewScanner(fwd, ""), fwd+"AAAAAA", fwd+"CCCCCC", fwd+"GGGAAA")
	if st.Forward != (Counts{Literal: 3, RevComp: 0}) {
		t.Fatalf("counts = %+v", st.Forward)
	}
	got, err := st.PredictForward()
	if err != nil || got != (Site{fwd, FivePrime}) {
		t.Fatalf("PredictForward = %+v, %v", got, err)
	}
	if got, _ := st.PredictReverse(); got != (Site{}) {
		t.Fatalf("unset reverse primer predicted %+v", got)
	}
}

func TestPredictRevCompMajority(t *testing.T) {
	rc := RevComp(fwd)
	st := scanAll(t, NewScanner(fwd, ""), "AAAA"+rc, "CCCC"+rc, fwd+"TTTT")
	got, err := st.PredictForward()
	if err != nil || got != (Site{rc, ThreePrime}) {
		t.Fatalf("PredictForward = %+v, %v; want %s at 3'", got, err, rc)
	}
}

func TestPredictNoMatches(t *testing.T) {
	st := scanAll(t, NewScanner(fwd, ""), "AAAAAAAA", "CCCCCCCC")
	if got, err := st.PredictForward(); got != (Site{}) || err != nil {
		t.Fatalf("PredictForward = %+v, %v; want empty", got, err)
	}
}

func TestPredictTieRefused(t *testing.T) {
	st := scanAll(t, NewScanner(fwd, ""), fwd+"AAAA", "AAAA"+RevComp(fwd))
	if _, err := st.PredictForward(); !errors.Is(err, errs.ErrUndeveloped) {
		t.Fatalf("want undeveloped error on tie, got %v", err)
	}
}

func TestPredictFollowsAnchoredEnd(t *testing.T) {
	// literal forward primer stored at the 3' end
	st := scanAll(t, NewScanner(fwd, ""), "AAAA"+fwd, "CCCC"+fwd, fwd+"GGGG")
	got, err := st.PredictForward()
	if err != nil || got != (Site{fwd, ThreePrime}) {
		t.Fatalf("PredictForward = %+v, %v; want %s at 3'", got, err, fwd)
	}
}

func TestPredictPalindromicPrimer(t *testing.T) {
	const ecoRI = "GAATTC"
	st := scanAll(t, NewScanner(ecoRI, ""), ecoRI+"AAAACCCC", ecoRI+"GGGGTTTT", ecoRI+"ACACACAC")
	if st.Forward != (Counts{Literal: 3}) {
		t.Fatalf("counts = %+v", st.Forward)
	}
	got, err := st.PredictForward()
	if err != nil || got != (Site{ecoRI, FivePrime}) {
		t.Fatalf("PredictForward = %+v, %v", got, err)
	}
}

func TestScanMidSequencePrimer(t *testing.T) {
	s := NewScanner(fwd, "")
	if err := s.Scan("AAA" + fwd + "AAA"); !errors.Is(err, errs.ErrUndeveloped) {
		t.Fatalf("want undeveloped error, got %v", err)
	}
}

func TestScanCasingAndInvalid(t *testing.T) {
	st := scanAll(t, NewScanner("", ""), "acgt", "ACGT", "ACXT")
	if !reflect.DeepEqual(st.Casings, []Casing{Lower, Upper}) {
		t.Fatalf("casings = %v", st.Casings)
	}
	if st.Casing() != Mixed {
		t.Fatalf("casing = %s, want mixed", st.Casing())
	}
	if !reflect.DeepEqual(st.Invalid, []rune{'X'}) {
		t.Fatalf("invalid = %q", string(st.Invalid))
	}
	if st.Sequences != 3 {
		t.Fatalf("sequences = %d", st.Sequences)
	}
}
