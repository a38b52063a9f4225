package cliutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitFlagsAndPositionals(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var b bool
	var n int
	var s string
	fs.BoolVar(&b, "bool", false, "")
	fs.IntVar(&n, "header-row", -1, "")
	fs.StringVar(&s, "o", "-", "")
	flagArgs, posArgs := SplitFlagsAndPositionals(fs, []string{
		"in.csv", "--bool", "--header-row", "-1", "-o=out.csv", "--", "--literal",
	})
	if len(flagArgs) != 4 || flagArgs[2] != "-1" || flagArgs[3] != "-o=out.csv" {
		t.Fatalf("flags = %v", flagArgs)
	}
	if len(posArgs) != 2 || posArgs[0] != "in.csv" || posArgs[1] != "--literal" {
		t.Fatalf("positionals = %v", posArgs)
	}
}

func TestExpandInput(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.tsv")
	_ = os.WriteFile(a, []byte("a,b\n"), 0o644)
	_ = os.WriteFile(b, []byte("c\td\n"), 0o644)

	if got, err := ExpandInput([]string{filepath.Join(dir, "*.csv")}); err != nil || got != a {
		t.Fatalf("single match: %q %v", got, err)
	}
	if got, err := ExpandInput(nil); err != nil || got != "" {
		t.Fatalf("no args: %q %v", got, err)
	}
	if _, err := ExpandInput([]string{filepath.Join(dir, "*")}); err == nil {
		t.Fatalf("two matches accepted")
	}
	if _, err := ExpandInput([]string{filepath.Join(dir, "*.xlsx")}); err == nil {
		t.Fatalf("empty glob accepted")
	}
}

func TestListValue(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var cols []string
	fs.Var(NewListValue(&cols), "required", "")
	if err := fs.Parse([]string{"--required", "a, b", "--required", "c,"}); err != nil {
		t.Fatal(err)
	}
	if len(cols) != 3 || cols[0] != "a" || cols[1] != "b" || cols[2] != "c" {
		t.Fatalf("cols = %v", cols)
	}
	if v := Visited(fs); !v["required"] || len(v) != 1 {
		t.Fatalf("visited = %v", v)
	}
}
