// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/tabular"
	"github.com/cancerit/QUANTS-sub000/core/transform"
	"github.com/cancerit/QUANTS-sub000/internal/cliutil"
)

// HeaderDetect is the --header-row default: locate the header.
const HeaderDetect = -1

// Common holds CLI fields shared by every tool.
type Common struct {
	// Input / output
	Input         string
	Output        string
	Summary       string
	RecordCommand bool
	Force         bool
	Config        string

	// Misc
	Quiet   bool
	Version bool
}

// Table holds the flags that steer structural inference of the input.
type Table struct {
	Delimiter       string
	OutputDelimiter string
	CommentPrefix   string
	HeaderRow       int
	NoHeader        bool
	Rigorous        bool
	CaseSensitive   bool
	Mode            string
	OneIndexed      bool
	NullPolicy      string

	// Filled by Finish.
	InDelim      rune
	OutDelim     rune
	ForcedHeader *int
	ColumnMode   columns.Mode
	Nulls        transform.NullPolicy
}

// Register wires the shared I/O and misc flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.StringVar(&c.Input, "input", "", "input CSV/TSV file (.gz ok) or positional [*]")
	fs.StringVar(&c.Input, "i", "", "alias of --input")
	fs.StringVar(&c.Output, "output", "-", "output file (.gz ok) or '-' for STDOUT [-]")
	fs.StringVar(&c.Output, "o", "-", "alias of --output")
	fs.StringVar(&c.Summary, "summary", "", "write a JSON run summary to this path")
	fs.BoolVar(&c.RecordCommand, "record-command", false, "prefix the output with a comment recording the command [false]")
	fs.BoolVar(&c.Force, "force", false, "overwrite an existing output file [false]")
	fs.StringVar(&c.Config, "config", "", "TOML file with default flag values")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
}

// RegisterDialect wires only the delimiter and comment flags. The other
// Table fields keep their defaults.
func RegisterDialect(fs *flag.FlagSet, t *Table) {
	fs.StringVar(&t.Delimiter, "delimiter", "detect", "input delimiter: detect | comma | tab | <char> [detect]")
	fs.StringVar(&t.Delimiter, "d", "detect", "alias of --delimiter")
	fs.StringVar(&t.OutputDelimiter, "output-delimiter", "comma", "output delimiter: comma | tab | <char> [comma]")
	fs.StringVar(&t.CommentPrefix, "comment-prefix", tabular.DefaultCommentPrefix, "prefix of file-level comment lines [##]")
	t.HeaderRow, t.Mode, t.NullPolicy = HeaderDetect, "name", "off"
}

// RegisterTable wires the structural inference and column addressing flags.
func RegisterTable(fs *flag.FlagSet, t *Table) {
	RegisterDialect(fs, t)
	fs.IntVar(&t.HeaderRow, "header-row", HeaderDetect, "0-based line index of the column header, counting comment lines (-1=detect) [-1]")
	fs.BoolVar(&t.NoHeader, "no-header", false, "the input has no column header row [false]")
	fs.BoolVar(&t.Rigorous, "rigorous", false, "fall back to the content heuristic when header names are not found [false]")
	fs.BoolVar(&t.CaseSensitive, "case-sensitive", false, "match header names case-sensitively [false]")
	fs.StringVar(&t.Mode, "mode", "name", "address columns by: name | index [name]")
	fs.BoolVar(&t.OneIndexed, "one-indexed", false, "column indices start at 1 [false]")
	fs.StringVar(&t.NullPolicy, "null-policy", "off", "empty/NA values in required columns: off | warn | error [off]")
}

// AfterParse folds the positional input into c and applies --config
// defaults for flags not given on the command line.
func AfterParse(fs *flag.FlagSet, c *Common, tool string, posArgs []string) error {
	in, err := cliutil.ExpandInput(posArgs)
	if err != nil {
		return err
	}
	if in != "" {
		if c.Input != "" {
			return errors.New("input given both as --input and as a positional argument")
		}
		c.Input = in
	}
	if c.Config != "" {
		if err := ApplyConfig(fs, c.Config, tool); err != nil {
			return err
		}
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Input == "" {
		return errors.New("an input file is required (--input or positional)")
	}
	if c.Input == "-" {
		return errors.New("reading the input from STDIN is not supported; it is scanned more than once")
	}
	if c.Output != "-" && c.Output == c.Input {
		return errors.New("--output must differ from the input")
	}
	if c.Summary == "-" && (c.Output == "-" || c.Output == "") {
		return errors.New("--summary - would mix JSON into the table on STDOUT; give --output a file")
	}
	if c.Summary != "" && c.Summary == c.Output {
		return errors.New("--summary must differ from --output")
	}
	return nil
}

// Finish parses and cross-checks the table flags.
func (t *Table) Finish() error {
	var err error
	if t.InDelim, err = tabular.ParseDelimiter(t.Delimiter); err != nil {
		return err
	}
	if t.OutDelim, err = tabular.ParseDelimiter(t.OutputDelimiter); err != nil {
		return err
	}
	if t.OutDelim == 0 {
		return errors.New("--output-delimiter must be explicit (comma, tab or a character)")
	}
	if t.HeaderRow < HeaderDetect {
		return fmt.Errorf("--header-row must be ≥ 0 (got %d)", t.HeaderRow)
	}
	switch {
	case t.NoHeader && t.HeaderRow != HeaderDetect:
		return errors.New("--no-header conflicts with --header-row")
	case t.NoHeader:
		n := tabular.NoHeader
		t.ForcedHeader = &n
	case t.HeaderRow != HeaderDetect:
		n := t.HeaderRow
		t.ForcedHeader = &n
	}
	if t.CommentPrefix == "" {
		return errors.New("--comment-prefix must not be empty")
	}
	if t.ColumnMode, err = columns.ParseMode(t.Mode); err != nil {
		return err
	}
	if t.ColumnMode == columns.ModeName && t.OneIndexed {
		return errors.New("--one-indexed needs --mode index")
	}
	if t.ColumnMode == columns.ModeName && t.NoHeader {
		return errors.New("--no-header needs --mode index; columns cannot be selected by name")
	}
	if t.Nulls, err = transform.ParseNullPolicy(t.NullPolicy); err != nil {
		return err
	}
	return nil
}
