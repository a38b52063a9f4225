package reformatcli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cancerit/QUANTS-sub000/internal/clibase"
	"github.com/cancerit/QUANTS-sub000/internal/cliutil"
)

type Options struct {
	clibase.Common
	clibase.Table

	Required     []string
	Optional     []string
	Order        []string
	Reheader     []string
	AppendHeader bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "reorder, rename and subset the columns of a CSV/TSV manifest", true,
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --required a,b [--optional c] [--order c,a,b] manifest.csv\n", name)

			_, _ = fmt.Fprintln(out, "\nColumns:")
			_, _ = fmt.Fprintln(out, "  -r, --required list         Columns that must exist (names or indices, repeatable)")
			_, _ = fmt.Fprintln(out, "      --optional list         Columns kept when present (repeatable)")
			_, _ = fmt.Fprintln(out, "      --order list            Output order; defaults to required then optional")
			_, _ = fmt.Fprintln(out, "      --reheader list         Renames as old:new pairs (repeatable)")
			_, _ = fmt.Fprintf(out, "      --append-header         Synthesise a header row from --reheader (index mode) [%s]\n", def("append-header"))
		})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for reformat-csv.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "reformat-csv", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Keep, reorder and rename manifest columns.")
		_, _ = fmt.Fprintln(w, "\nBy name:")
		_, _ = fmt.Fprintln(w, "  reformat-csv --required sample,fastq --optional notes \\")
		_, _ = fmt.Fprintln(w, "    --order fastq,sample,notes --reheader fastq:reads -o out.csv manifest.csv")
		_, _ = fmt.Fprintln(w, "\nBy position, adding a header to a header-less TSV:")
		_, _ = fmt.Fprintln(w, "  reformat-csv --mode index --one-indexed --no-header --required 1,3 \\")
		_, _ = fmt.Fprintln(w, "    --reheader 1:sample,3:reads --append-header -d tab -o out.csv table.tsv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)
	clibase.RegisterTable(fs, &o.Table)

	fs.Var(cliutil.NewListValue(&o.Required), "required", "required columns (comma separated, repeatable)")
	fs.Var(cliutil.NewListValue(&o.Required), "r", "alias of --required")
	fs.Var(cliutil.NewListValue(&o.Optional), "optional", "optional columns (comma separated, repeatable)")
	fs.Var(cliutil.NewListValue(&o.Order), "order", "output column order")
	fs.Var(cliutil.NewListValue(&o.Reheader), "reheader", "old:new renames (comma separated, repeatable)")
	fs.BoolVar(&o.AppendHeader, "append-header", false, "synthesise a new header row [false]")

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
	if len(o.Required) == 0 && len(o.Optional) == 0 {
		return o, errors.New("select columns with --required and/or --optional")
	}
	if o.AppendHeader && len(o.Reheader) == 0 {
		return o, errors.New("--append-header needs --reheader")
	}
	return o, nil
}
