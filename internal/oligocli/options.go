package oligocli

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

	NameColumn     string
	SequenceColumn string
	GeneColumn     string

	ForwardPrimer string
	ReversePrimer string
	Primers       string
	PrimerID      string
	RevComp       bool

	Report string
}

// Trim reports whether primers were given and should be trimmed.
func (o Options) Trim() bool { return o.ForwardPrimer != "" || o.ReversePrimer != "" || o.Primers != "" }

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "convert an oligo library table to oligo_name,sequence[,gene_id]", true,
		func(out io.Writer, def func(string) string) {
			_, _ = fmt.Fprintln(out, "Usage:")
			_, _ = fmt.Fprintf(out, "  %s [options] --name-column id --sequence-column seq library.tsv\n", name)

			_, _ = fmt.Fprintln(out, "\nLibrary:")
			_, _ = fmt.Fprintln(out, "      --name-column col       Oligo name column (name or index) [*]")
			_, _ = fmt.Fprintln(out, "      --sequence-column col   Sequence column (name or index) [*]")
			_, _ = fmt.Fprintln(out, "      --gene-column col       Gene id column, copied as gene_id")

			_, _ = fmt.Fprintln(out, "\nPrimers:")
			_, _ = fmt.Fprintln(out, "  -f, --forward-primer seq     Forward primer to trim from the 5' end")
			_, _ = fmt.Fprintln(out, "  -r, --reverse-primer seq     Reverse primer to trim from the 3' end")
			_, _ = fmt.Fprintln(out, "      --primers file          TSV of id, forward, reverse (.gz ok)")
			_, _ = fmt.Fprintln(out, "      --primer-id id          Pair to use from --primers")
			_, _ = fmt.Fprintf(out, "      --revcomp               Reverse-complement output sequences [%s]\n", def("revcomp"))
			_, _ = fmt.Fprintln(out, "      --report file           Per-oligo JSONL report")
		})
	return fs
}

// PrintExamples prints a tiny, focused quickstart for oligo-library.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "oligo-library", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Normalise a guide library and strip its amplification primers.")
		_, _ = fmt.Fprintln(w, "\nBasic:")
		_, _ = fmt.Fprintln(w, "  oligo-library --name-column id --sequence-column seq -o lib.csv library.tsv")
		_, _ = fmt.Fprintln(w, "\nTrim primers and report per oligo:")
		_, _ = fmt.Fprintln(w, "  oligo-library --name-column id --sequence-column seq --gene-column gene \\")
		_, _ = fmt.Fprintln(w, "    -f ACGTAC -r GGATCC --report trim.jsonl --summary run.json -o lib.csv library.tsv")
		_, _ = fmt.Fprintln(w, "\nFrom a primer file:")
		_, _ = fmt.Fprintln(w, "  oligo-library --name-column 1 --sequence-column 2 --mode index --one-indexed \\")
		_, _ = fmt.Fprintln(w, "    --primers primers.tsv --primer-id libA -o lib.csv library.csv")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	clibase.Register(fs, &o.Common)
	clibase.RegisterTable(fs, &o.Table)

	fs.StringVar(&o.NameColumn, "name-column", "", "oligo name column [*]")
	fs.StringVar(&o.SequenceColumn, "sequence-column", "", "sequence column [*]")
	fs.StringVar(&o.GeneColumn, "gene-column", "", "gene id column")

	fs.StringVar(&o.ForwardPrimer, "forward-primer", "", "forward primer")
	fs.StringVar(&o.ForwardPrimer, "f", "", "alias of --forward-primer")
	fs.StringVar(&o.ReversePrimer, "reverse-primer", "", "reverse primer")
	fs.StringVar(&o.ReversePrimer, "r", "", "alias of --reverse-primer")
	fs.StringVar(&o.Primers, "primers", "", "primer pair TSV")
	fs.StringVar(&o.PrimerID, "primer-id", "", "primer pair id in --primers")
	fs.BoolVar(&o.RevComp, "revcomp", false, "reverse-complement output sequences [false]")
	fs.StringVar(&o.Report, "report", "", "per-oligo JSONL report path")

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
	if o.NameColumn == "" || o.SequenceColumn == "" {
		return o, errors.New("--name-column and --sequence-column are required")
	}
	if o.Primers != "" && (o.ForwardPrimer != "" || o.ReversePrimer != "") {
		return o, errors.New("--primers cannot be combined with --forward-primer/--reverse-primer")
	}
	if (o.Primers == "") != (o.PrimerID == "") {
		return o, errors.New("--primers and --primer-id go together")
	}
	if o.Report == "-" {
		return o, errors.New("--report needs a file path")
	}
	if o.Report != "" && (o.Report == o.Output || o.Report == o.Summary || o.Report == o.Input) {
		return o, errors.New("--report must differ from --input, --output and --summary")
	}
	return o, nil
}
