// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"github.com/cancerit/QUANTS-sub000/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections; table adds the input structure block.
func UsageCommon(fs *flag.FlagSet, name, about string, table bool, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: %s\n\n", name, about)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput / output:")
		fmt.Fprintln(out, "  -i, --input file            Input CSV/TSV (.gz ok); may be given positionally [*]")
		fmt.Fprintf(out, "  -o, --output file           Output file (.gz ok) or '-' for STDOUT [%s]\n", def("output"))
		fmt.Fprintln(out, "      --summary file          Write a JSON run summary")
		fmt.Fprintf(out, "      --record-command        Record the command line as a leading comment [%s]\n", def("record-command"))
		fmt.Fprintf(out, "      --force                 Overwrite an existing output [%s]\n", def("force"))
		fmt.Fprintln(out, "      --config file           TOML file with flag defaults")

		if table {
			fmt.Fprintln(out, "\nInput structure:")
			fmt.Fprintf(out, "  -d, --delimiter string      detect | comma | tab | <char> [%s]\n", def("delimiter"))
			fmt.Fprintf(out, "      --output-delimiter str  comma | tab | <char> [%s]\n", def("output-delimiter"))
			fmt.Fprintf(out, "      --comment-prefix string Prefix of file-level comment lines [%s]\n", def("comment-prefix"))
			fmt.Fprintf(out, "      --header-row int        0-based line of the column header, comments included (-1=detect) [%s]\n", def("header-row"))
			fmt.Fprintf(out, "      --no-header             The input has no column header [%s]\n", def("no-header"))
			fmt.Fprintf(out, "      --rigorous              Fall back to the content heuristic [%s]\n", def("rigorous"))
			fmt.Fprintf(out, "      --case-sensitive        Match header names case-sensitively [%s]\n", def("case-sensitive"))
			fmt.Fprintf(out, "      --mode string           Address columns by: name | index [%s]\n", def("mode"))
			fmt.Fprintf(out, "      --one-indexed           Column indices start at 1 [%s]\n", def("one-indexed"))
			fmt.Fprintf(out, "      --null-policy string    off | warn | error [%s]\n", def("null-policy"))
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
