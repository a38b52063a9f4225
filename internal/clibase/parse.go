// internal/clibase/parse.go
package clibase

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/cancerit/QUANTS-sub000/internal/version"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples frames a tool's quickstart text.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	_, _ = fmt.Fprintf(out, "%s examples\n\n", name)
	body(out)
	_, _ = fmt.Fprintf(out, "\nSee %s -h for every option.\n", name)
}

// Early handles the outcomes of ParseArgs that end the run before any work:
// help, examples, version and usage errors. done reports whether the caller
// should return code.
func Early(fs *flag.FlagSet, name string, err error, showVersion bool, examples func(io.Writer), stdout, stderr io.Writer) (code int, done bool) {
	outw := bufio.NewWriter(stdout)
	flush := func(c int) (int, bool) {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0, true
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3, true
		}
		return c, true
	}

	switch {
	case errors.Is(err, ErrPrintedAndExitOK):
		if examples != nil {
			examples(outw)
		}
		return flush(0)
	case errors.Is(err, flag.ErrHelp):
		fs.SetOutput(outw)
		fs.Usage()
		return flush(0)
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "%s: %v\n", name, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2, true
	case showVersion:
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}
	return 0, false
}
