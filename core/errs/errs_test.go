package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("reading x.csv: %w", Validationf("bad index %d", 7))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation match for %v", err)
	}
	if errors.Is(err, ErrDelimiter) {
		t.Fatalf("validation error must not match ErrDelimiter")
	}
}

func TestHintInMessage(t *testing.T) {
	err := Delimiterf("could not sniff %s", "a.csv").WithHint("pass --delimiter")
	if !strings.Contains(err.Error(), "pass --delimiter") {
		t.Fatalf("hint missing: %q", err.Error())
	}
	if !errors.Is(err, ErrDelimiter) {
		t.Fatalf("hinted error lost its kind")
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{Validationf("x"), 2},
		{NullDataf("x"), 2},
		{Delimiterf("x"), 4},
		{Interventionf("x"), 4},
		{Undevelopedf("x"), 5},
		{errors.New("disk on fire"), 3},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Errorf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}
