// core/primer/rc.go
package primer

var complement [256]byte

func init() {
	pairs := []string{"AT", "CG", "RY", "SS", "WW", "KM", "BV", "DH", "NN"}
	for _, p := range pairs {
		a, b := p[0], p[1]
		complement[a], complement[b] = b, a
		complement[a+'a'-'A'], complement[b+'a'-'A'] = b+'a'-'A', a+'a'-'A'
	}
}

// RevComp reverse-complements seq, keeping case. Bytes without a
// complement become 'N'.
func RevComp(seq string) string {
	n := len(seq)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}
