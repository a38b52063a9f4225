// internal/integration/oligo_integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cancerit/QUANTS-sub000/internal/oligoapp"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

// Forward primer AAACCC sits literally at the 5' end; reverse primer TTGCAG
// appears as its reverse complement CTGCAA at the 3' end.
const library = "id\tseq\tgene\n" +
	"g1\tAAACCCGATTACACTGCAA\tBRCA1\n" +
	"g2\tAAACCCTGTGTGCTGCAA\tBRCA2\n"

func TestOligoTrimWithReport(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.tsv", library)
	out := filepath.Join(dir, "lib.csv")
	sum := filepath.Join(dir, "sum.json")
	rep := filepath.Join(dir, "trim.jsonl")

	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{
		"--name-column", "id", "--sequence-column", "seq", "--gene-column", "gene",
		"-f", "AAACCC", "-r", "TTGCAG",
		"-o", out, "--summary", sum, "--report", rep, in,
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, stderr.String())
	}
	want := "oligo_name,sequence,gene_id\ng1,GATTACA,BRCA1\ng2,TGTGTG,BRCA2\n"
	if got := read(t, out); got != want {
		t.Fatalf("output:\n%s\nwant:\n%s", got, want)
	}

	s := summary(t, sum)
	o := s.Oligo
	if o == nil {
		t.Fatalf("summary has no oligo section")
	}
	if o.ForwardUsed != "AAACCC" || o.ReverseUsed != "CTGCAA" || o.TrimmedForward != 2 || o.TrimmedReverse != 2 ||
		o.ForwardEnd != "5'" || o.ReverseEnd != "3'" {
		t.Errorf("primer summary = %+v", o)
	}
	if o.ReverseCounts.RevComp != 2 || o.ReverseCounts.Literal != 0 || o.Casing != "upper" {
		t.Errorf("counts = %+v casing=%s", o.ReverseCounts, o.Casing)
	}
	if o.LengthIn.Min != 18 || o.LengthIn.Max != 19 || o.LengthOut.Mean != 6.5 {
		t.Errorf("lengths in=%+v out=%+v", o.LengthIn, o.LengthOut)
	}

	lines := strings.Split(strings.TrimSpace(read(t, rep)), "\n")
	if len(lines) != 2 {
		t.Fatalf("report lines = %d, want 2", len(lines))
	}
	var r api.OligoRowV1
	if err := json.Unmarshal([]byte(lines[0]), &r); err != nil {
		t.Fatalf("report json: %v", err)
	}
	if r.Row != 1 || r.Name != "g1" || r.InLength != 19 || r.OutLength != 7 || !r.TrimmedForward || !r.TrimmedReverse {
		t.Errorf("report row = %+v", r)
	}
}

func TestOligoExistingReportCommitsNothing(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.tsv", library)
	rep := write(t, dir, "trim.jsonl", "old\n")
	out := filepath.Join(dir, "lib.csv")
	sum := filepath.Join(dir, "sum.json")

	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{
		"--name-column", "id", "--sequence-column", "seq",
		"-f", "AAACCC", "-r", "TTGCAG",
		"-o", out, "--summary", sum, "--report", rep, in,
	}, &stdout, &stderr)
	if code != 3 {
		t.Fatalf("exit %d, want 3; err=%s", code, stderr.String())
	}
	if exists(out) || exists(sum) {
		t.Fatalf("output or summary written after a failed report")
	}
	if got := read(t, rep); got != "old\n" {
		t.Fatalf("report overwritten: %q", got)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Fatalf("leftover files: %v", entries)
	}
}

func TestOligoOppositeStrandLibrary(t *testing.T) {
	dir := t.TempDir()
	// the library above, reverse complemented
	in := write(t, dir, "lib.tsv", "id\tseq\ng1\tTTGCAGTGTAATCGGGTTT\ng2\tTTGCAGCACACAGGGTTT\n")

	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{
		"--name-column", "id", "--sequence-column", "seq",
		"-f", "AAACCC", "-r", "TTGCAG", in,
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, stderr.String())
	}
	want := "oligo_name,sequence\ng1,TGTAATC\ng2,CACACA\n"
	if stdout.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", stdout.String(), want)
	}
}

func TestOligoLowerCaseRevCompFromPrimerFile(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.csv", "g1,aaacccgattacactgcaa\ng2,aaaccctgtgtgctgcaa\n")
	primers := write(t, dir, "primers.tsv", "# id\tfwd\trev\nlibA\tAAACCC\tTTGCAG\nlibB\tTTTTTT\tGGGGGG\n")

	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{
		"--mode", "index", "--one-indexed", "--no-header", "-d", "comma",
		"--name-column", "1", "--sequence-column", "2",
		"--primers", primers, "--primer-id", "libA", "--revcomp", in,
	}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, stderr.String())
	}
	if got, want := stdout.String(), "oligo_name,sequence\ng1,TGTAATC\ng2,CACACA\n"; got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
}

func TestOligoNoPrimersPassesThrough(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.tsv", library)
	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{"--name-column", "id", "--sequence-column", "seq", in}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d err=%s", code, stderr.String())
	}
	want := "oligo_name,sequence\ng1,AAACCCGATTACACTGCAA\ng2,AAACCCTGTGTGCTGCAA\n"
	if got := stdout.String(); got != want {
		t.Fatalf("stdout = %q, want %q", got, want)
	}
}

func TestOligoMixedCase(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.tsv", "id\tseq\ng1\tACGTAC\ng2\tacgtac\n")
	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{"--name-column", "id", "--sequence-column", "seq", in}, &stdout, &stderr)
	if code != 2 {
		t.Fatalf("exit %d, want 2; err=%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "case") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestOligoPrimerMidSequence(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.tsv", "id\tseq\ng1\tGGAAACCCGG\ng2\tAAACCCTT\n")
	out := filepath.Join(dir, "lib.csv")
	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{"--name-column", "id", "--sequence-column", "seq", "-f", "AAACCC", "-o", out, in}, &stdout, &stderr)
	if code != 5 {
		t.Fatalf("exit %d, want 5; err=%s", code, stderr.String())
	}
	if exists(out) {
		t.Errorf("output written despite the error")
	}
}

func TestOligoUnknownPrimerID(t *testing.T) {
	dir := t.TempDir()
	in := write(t, dir, "lib.tsv", library)
	primers := write(t, dir, "primers.tsv", "libA\tAAACCC\tTTGCAG\n")
	var stdout, stderr bytes.Buffer
	code := oligoapp.Run([]string{"--name-column", "id", "--sequence-column", "seq",
		"--primers", primers, "--primer-id", "nope", in}, &stdout, &stderr)
	if code != 2 || !strings.Contains(stderr.String(), "libA") {
		t.Fatalf("exit %d err=%s", code, stderr.String())
	}
}
