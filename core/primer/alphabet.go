// core/primer/alphabet.go
package primer

import (
	"strings"
	"unicode"
)

// Alphabet is the set of bases accepted in library sequences and primers.
const Alphabet = "ACGTN"

var allowed [256]bool

func init() {
	for i := 0; i < len(Alphabet); i++ {
		allowed[Alphabet[i]] = true
		allowed[Alphabet[i]+'a'-'A'] = true
	}
}

type Casing string

const (
	Upper   Casing = "upper"
	Lower   Casing = "lower"
	Mixed   Casing = "mixed"
	Unknown Casing = "unknown"
)

// CasingOf classifies the letters of seq.
func CasingOf(seq string) Casing {
	var up, low bool
	for _, r := range seq {
		switch {
		case unicode.IsUpper(r):
			up = true
		case unicode.IsLower(r):
			low = true
		}
	}
	switch {
	case up && low:
		return Mixed
	case up:
		return Upper
	case low:
		return Lower
	}
	return Unknown
}

// Invalid returns the distinct characters of seq outside Alphabet, in order
// of first appearance.
func Invalid(seq string) []rune {
	var out []rune
	for _, r := range seq {
		if r < 256 && allowed[r] {
			continue
		}
		if !strings.ContainsRune(string(out), r) {
			out = append(out, r)
		}
	}
	return out
}

// Normalize drops whitespace and quotes and upper-cases the rest.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
