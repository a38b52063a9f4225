// core/primer/alphabet_test.go
package primer

import (
	"reflect"
	"testing"
)

func TestCasingOf(t *testing.T) {
	cases := map[string]Casing{"ACGT": Upper, "acgt": Lower, "AcGT": Mixed, "": Unknown, "--": Unknown}
	for in, want := range cases {
		if got := CasingOf(in); got != want {
			t.Errorf("CasingOf(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestInvalid(t *testing.T) {
	if got := Invalid("ACGTNacgtn"); len(got) != 0 {
		t.Errorf("valid bases flagged: %q", string(got))
	}
	if got := Invalid("ACXGTXR"); !reflect.DeepEqual(got, []rune{'X', 'R'}) {
		t.Errorf("Invalid = %q", string(got))
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize(" 'acg t' "); got != "ACGT" {
		t.Errorf("Normalize = %q", got)
	}
}
