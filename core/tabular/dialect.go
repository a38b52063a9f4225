package tabular

import (
	"bytes"
	"sort"
	"strings"

	"github.com/csimplestring/go-csv/detector"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// DefaultCommentPrefix marks file-level comment lines.
const DefaultCommentPrefix = "##"

var (
	sniffLines          = Lookahead
	nonDelimiterPattern = `[[:alnum:]\n\r@\._\-/"']`

	// preferred breaks ties between candidates the sniffer finds equally
	// plausible.
	preferred = []rune{',', '\t', ';', '|', ' '}
)

// Dialect is the outcome of delimiter and offset detection.
type Dialect struct {
	Delimiter    rune
	Forced       bool
	Offset       int64
	StartLine    int
	CommentLines []int
}

type DetectOptions struct {
	CommentPrefix   string
	ForcedDelimiter rune // 0 = sniff
}

// Detect finds the byte offset of the first non-comment line and the field
// delimiter. The offset never depends on the delimiter.
func Detect(path string, o DetectOptions, cache *OffsetCache) (Dialect, error) {
	scan, err := cache.lookup(path, o.CommentPrefix)
	if err != nil {
		return Dialect{}, err
	}
	d := Dialect{
		Offset:       scan.Offset,
		StartLine:    scan.StartLine,
		CommentLines: append([]int(nil), scan.Lines...),
	}
	if o.ForcedDelimiter != 0 {
		d.Delimiter = o.ForcedDelimiter
		d.Forced = true
		return d, nil
	}
	d.Delimiter, err = sniffDelimiter(path, scan.Offset)
	if err != nil {
		return Dialect{}, err
	}
	return d, nil
}

func sniffDelimiter(path string, offset int64) (rune, error) {
	buf, err := sample(path, offset)
	if err != nil {
		return 0, err
	}
	hint := "pass --delimiter comma or --delimiter tab"
	if len(bytes.TrimSpace(buf)) == 0 {
		return 0, errs.Delimiterf("%s: no tabular data after byte %d to sniff", path, offset).WithHint(hint)
	}

	det := detector.New()
	det.Configure(&sniffLines, &nonDelimiterPattern)
	cands := det.DetectDelimiter(bytes.NewReader(buf), '"')

	var runes []rune
	for _, c := range cands {
		if c == "" {
			continue
		}
		runes = append(runes, []rune(c)[0])
	}
	if r, ok := pickDelimiter(runes); ok {
		return r, nil
	}
	return 0, errs.Delimiterf("%s: could not determine the field delimiter", path).WithHint(hint)
}

// pickDelimiter returns the preferred candidate, then the lowest rune.
func pickDelimiter(cands []rune) (rune, bool) {
	if len(cands) == 0 {
		return 0, false
	}
	for _, p := range preferred {
		for _, c := range cands {
			if c == p {
				return c, true
			}
		}
	}
	sorted := append([]rune(nil), cands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[0], true
}

// ParseDelimiter maps a command line value to a delimiter rune. "detect"
// and the empty string yield 0, meaning the delimiter is sniffed.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "", "detect", "auto":
		return 0, nil
	case "comma", ",":
		return ',', nil
	case "tab", "\\t", "\t", "tsv":
		return '\t', nil
	case "semicolon", ";":
		return ';', nil
	case "pipe", "|":
		return '|', nil
	}
	r := []rune(s)
	if len(r) == 1 && r[0] != '"' && r[0] != '\n' && r[0] != '\r' {
		return r[0], nil
	}
	return 0, errs.Validationf("invalid delimiter %q; allowed: detect, comma, tab, semicolon, pipe or a single character", s)
}

// DelimiterName renders a delimiter for summaries and messages.
func DelimiterName(r rune) string {
	switch r {
	case ',':
		return "comma"
	case '\t':
		return "tab"
	case ';':
		return "semicolon"
	case '|':
		return "pipe"
	case 0:
		return "none"
	}
	return string(r)
}
