package samplesheetcli

import (
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/cancerit/QUANTS-sub000/internal/clibase"
	"github.com/cancerit/QUANTS-sub000/internal/cliutil"
)

type Options struct {
	clibase.Common
	clibase.Table

	SingleEndRaw string
	SingleEnd    bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "validate a sample,cram_file samplesheet", false,
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --single-end false samplesheet.csv\n", name)

			_, _ = fmt.Fprintln(out, "\nSamplesheet:")
			_, _ = fmt.Fprintf(out, "      --single-end bool       Runs are single-end: true | false [%s]\n", def("single-end"))
			_, _ = fmt.Fprintf(out, "  -d, --delimiter string      detect | comma | tab | <char> [%s]\n", def("delimiter"))
			_, _ = fmt.Fprintf(out, "      --output-delimiter str  comma | tab | <char> [%s]\n", def("output-delimiter"))
			_, _ = fmt.Fprintf(out, "      --comment-prefix string Prefix of file-level comment lines [%s]\n", def("comment-prefix"))
		})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for check-samplesheet.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "check-samplesheet", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Check a samplesheet before a pipeline run.")
		_, _ = fmt.Fprintln(w, "\nInput:")
		_, _ = fmt.Fprintln(w, "  sample,cram_file")
		_, _ = fmt.Fprintln(w, "  S1,/data/S1_run1.cram")
		_, _ = fmt.Fprintln(w, "\nRun:")
		_, _ = fmt.Fprintln(w, "  check-samplesheet --single-end false -o checked.csv samplesheet.csv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)
	clibase.RegisterDialect(fs, &o.Table)
	fs.StringVar(&o.SingleEndRaw, "single-end", "false", "runs are single-end: true | false [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	if err := clibase.AfterParse(fs, &o.Common, fs.Name(), posArgs); err != nil {
		return o, err
	}
	if err := o.Table.Finish(); err != nil {
		return o, err
	}
	se, err := strconv.ParseBool(o.SingleEndRaw)
	if err != nil {
		return o, fmt.Errorf("--single-end must be true or false (got %q)", o.SingleEndRaw)
	}
	o.SingleEnd = se
	return o, nil
}
