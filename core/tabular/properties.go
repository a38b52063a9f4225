package tabular

import (
	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// Properties describes the structure of one tabular file. It is built once
// by Inspect and not modified afterwards.
type Properties struct {
	Path               string
	Delimiter          rune
	DelimiterForced    bool
	TabularStartOffset int64
	StartLine          int
	CommentLineIndices []int
	HeaderLineIndex    int
	HeaderIndexForced  bool
	HeaderMethod       string
}

// HasHeader reports whether a column header row was found or forced.
func (p Properties) HasHeader() bool { return p.HeaderLineIndex != NoHeader }

type InspectOptions struct {
	CommentPrefix   string
	ForcedDelimiter rune
	Candidates      []string
	ForcedHeader    *int
	Rigorous        bool
	// SuppressSniffError maps heuristic header failures to "no header".
	SuppressSniffError bool
	CaseSensitive      bool
	Log                logrus.FieldLogger
}

// Inspect runs delimiter/offset detection and header location for path.
func Inspect(path string, o InspectOptions, cache *OffsetCache) (Properties, error) {
	d, err := Detect(path, DetectOptions{CommentPrefix: o.CommentPrefix, ForcedDelimiter: o.ForcedDelimiter}, cache)
	if err != nil {
		return Properties{}, err
	}
	loc, err := Locate(path, d, LocateOptions{
		Candidates:         o.Candidates,
		ForcedIndex:        o.ForcedHeader,
		Rigorous:           o.Rigorous,
		SuppressSniffError: o.SuppressSniffError,
		CaseSensitive:      o.CaseSensitive,
		Log:                o.Log,
	})
	if err != nil {
		return Properties{}, err
	}
	if loc.Index != NoHeader && loc.Index < d.StartLine {
		return Properties{}, errs.Validationf("%s: header row %d lies inside the comment block (lines 0-%d)", path, loc.Index, d.StartLine-1)
	}
	if loc.Index < NoHeader {
		return Properties{}, errs.Validationf("%s: header row index %d is negative", path, loc.Index)
	}
	return Properties{
		Path:               path,
		Delimiter:          d.Delimiter,
		DelimiterForced:    d.Forced,
		TabularStartOffset: d.Offset,
		StartLine:          d.StartLine,
		CommentLineIndices: d.CommentLines,
		HeaderLineIndex:    loc.Index,
		HeaderIndexForced:  loc.Forced,
		HeaderMethod:       loc.Method,
	}, nil
}
