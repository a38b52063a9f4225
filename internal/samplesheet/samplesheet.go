// Package samplesheet validates CRAM samplesheets of the form
//
//	sample,cram_file
//	S1,/data/S1_run1.cram
//
// and renders them as sample,single_end,cram_file with single_end 0 or 1.
package samplesheet

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/cancerit/QUANTS-sub000/core/errs"
)

// CramExt is the required extension of cram_file entries.
const CramExt = ".cram"

// InputHeader is the exact header a samplesheet must carry.
var InputHeader = []string{"sample", "cram_file"}

// OutputHeader is the header of the checked samplesheet.
var OutputHeader = []string{"sample", "single_end", "cram_file"}

// Run is one validated line: a sample sequenced once into one CRAM.
type Run struct {
	Line      int
	Sample    string
	SingleEnd bool
	Cram      string
}

// Fields renders r in OutputHeader order.
func (r Run) Fields() []string {
	se := "0"
	if r.SingleEnd {
		se = "1"
	}
	return []string{r.Sample, se, r.Cram}
}

type key struct {
	sample    string
	singleEnd bool
	cram      string
}

// CheckHeader requires header to be exactly InputHeader.
func CheckHeader(header []string) error {
	got := make([]string, len(header))
	for i, h := range header {
		got[i] = strings.TrimSpace(h)
	}
	if strings.Join(got, ",") != strings.Join(InputHeader, ",") {
		return errs.Validationf("invalid samplesheet header %q; want %q", strings.Join(got, ","), strings.Join(InputHeader, ",")).
			WithHint("the first non-comment line must be exactly: " + strings.Join(InputHeader, ","))
	}
	return nil
}

// Parse checks one data line. line is 1-based within the table, header
// included, so messages point at the file as the user sees it.
func Parse(line int, fields []string, singleEnd bool) (Run, error) {
	if len(fields) != len(InputHeader) {
		return Run{}, errs.Validationf("line %d: %d columns; the header has %d", line, len(fields), len(InputHeader))
	}
	sample, cram := strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1])
	switch {
	case sample == "":
		return Run{}, errs.Validationf("line %d: sample entry is empty", line)
	case strings.ContainsAny(sample, " \t"):
		return Run{}, errs.Validationf("line %d: sample entry %q contains spaces", line, sample)
	case cram == "":
		return Run{}, errs.Validationf("line %d: cram_file entry is empty", line)
	case filepath.Ext(cram) != CramExt:
		return Run{}, errs.Validationf("line %d: cram_file %q does not have extension '%s'", line, cram, CramExt)
	}
	return Run{Line: line, Sample: sample, SingleEnd: singleEnd, Cram: cram}, nil
}

// Sheet accumulates parsed runs for the cross-row checks.
type Sheet struct {
	runs []Run
}

func (s *Sheet) Add(r Run) { s.runs = append(s.runs, r) }

func (s *Sheet) Runs() []Run { return s.runs }

// Samples is the number of distinct sample names.
func (s *Sheet) Samples() int {
	seen := map[string]bool{}
	for _, r := range s.runs {
		seen[r.Sample] = true
	}
	return len(seen)
}

// Validate runs the cross-row checks in order: repeated runs first, then
// runs of one sample that disagree on single_end.
func (s *Sheet) Validate() error {
	first := make(map[key]int, len(s.runs))
	for _, r := range s.runs {
		k := key{r.Sample, r.SingleEnd, r.Cram}
		if prev, dup := first[k]; dup {
			return errs.Validationf("line %d: sample %s with %s repeats line %d", r.Line, r.Sample, r.Cram, prev)
		}
		first[k] = r.Line
	}

	kinds := map[string]map[bool]bool{}
	for _, r := range s.runs {
		if kinds[r.Sample] == nil {
			kinds[r.Sample] = map[bool]bool{}
		}
		kinds[r.Sample][r.SingleEnd] = true
	}
	var mixed []string
	for name, k := range kinds {
		if len(k) > 1 {
			mixed = append(mixed, name)
		}
	}
	if len(mixed) > 0 {
		sort.Strings(mixed)
		return errs.Validationf("runs of one sample must all be single-end or all paired-end: %s", strings.Join(mixed, ", "))
	}
	return nil
}

// Rows renders the sheet grouped by sample in first-seen order.
func (s *Sheet) Rows() [][]string {
	order := []string{}
	bySample := map[string][]Run{}
	for _, r := range s.runs {
		if _, ok := bySample[r.Sample]; !ok {
			order = append(order, r.Sample)
		}
		bySample[r.Sample] = append(bySample[r.Sample], r)
	}
	out := make([][]string, 0, len(s.runs))
	for _, name := range order {
		for _, r := range bySample[name] {
			out = append(out, r.Fields())
		}
	}
	return out
}
