// core/primer/rc_test.go
package primer

import "testing"

func TestRevCompSimple(t *testing.T) {
	if got := RevComp("AGTC"); got != "GACT" {
		t.Errorf("RevComp(AGTC) = %s, want GACT", got)
	}
}

func TestRevCompAmbiguous(t *testing.T) {
	in := "RYSWKMBDHVNACGT"
	want := "ACGTNBDHVKMWSRY"
	if got := RevComp(in); got != want {
		t.Fatalf("complement table changed:\n got  %s\n want %s", got, want)
	}
}

func TestRevCompKeepsCase(t *testing.T) {
	if got := RevComp("aacg"); got != "cgtt" {
		t.Errorf("RevComp(aacg) = %s, want cgtt", got)
	}
}

func TestRevCompInvolution(t *testing.T) {
	for _, s := range []string{"", "A", "ACGTTGCA", "GGGAAACCN"} {
		if got := RevComp(RevComp(s)); got != s {
			t.Errorf("RevComp(RevComp(%q)) = %q", s, got)
		}
	}
}

func TestRevCompUnknownBecomesN(t *testing.T) {
	if got := RevComp("A-C"); got != "GNT" {
		t.Errorf("RevComp(A-C) = %s, want GNT", got)
	}
}
