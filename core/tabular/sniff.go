package tabular

import (
	"strconv"
	"strings"
)

type valueKind int

const (
	kindUnset valueKind = iota
	kindInt
	kindFloat
	kindComplex
	kindLength
)

type colType struct {
	kind   valueKind
	length int
}

func classify(v string) colType {
	s := strings.TrimSpace(v)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return colType{kind: kindInt}
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return colType{kind: kindFloat}
	}
	if _, err := strconv.ParseComplex(s, 128); err == nil {
		return colType{kind: kindComplex}
	}
	return colType{kind: kindLength, length: len([]rune(v))}
}

// parses reports whether v parses as the numeric kind k.
func parses(v string, k valueKind) bool {
	s := strings.TrimSpace(v)
	var err error
	switch k {
	case kindInt:
		_, err = strconv.ParseInt(s, 10, 64)
	case kindFloat:
		_, err = strconv.ParseFloat(s, 64)
	case kindComplex:
		_, err = strconv.ParseComplex(s, 128)
	default:
		return false
	}
	return err == nil
}

// HasHeader guesses whether rows[0] is a column header by comparing it with
// up to Lookahead following rows of the same width. A column votes for a
// header when its values share a numeric type the header value does not
// parse as, or share a fixed length the header value does not have.
// Columns whose values disagree among themselves do not vote.
func HasHeader(rows [][]string) bool {
	if len(rows) == 0 {
		return false
	}
	header := rows[0]
	types := make([]colType, len(header))
	live := make([]bool, len(header))
	for i := range live {
		live[i] = true
	}

	checked := 0
	for _, row := range rows[1:] {
		if checked >= Lookahead {
			break
		}
		if len(row) != len(header) {
			continue
		}
		checked++
		for col := range header {
			if !live[col] {
				continue
			}
			t := classify(row[col])
			switch {
			case types[col].kind == kindUnset:
				types[col] = t
			case types[col] != t:
				live[col] = false
			}
		}
	}

	votes := 0
	for col, t := range types {
		if !live[col] {
			continue
		}
		switch t.kind {
		case kindUnset:
			votes++
		case kindLength:
			if len([]rune(header[col])) != t.length {
				votes++
			} else {
				votes--
			}
		default:
			if parses(header[col], t.kind) {
				votes--
			} else {
				votes++
			}
		}
	}
	return votes > 0
}
