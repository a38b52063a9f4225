package oligoapp

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/primer"
	"github.com/cancerit/QUANTS-sub000/internal/appcore"
	"github.com/cancerit/QUANTS-sub000/internal/clibase"
	"github.com/cancerit/QUANTS-sub000/internal/cmdutil"
	"github.com/cancerit/QUANTS-sub000/internal/oligocli"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

const tool = "oligo-library"

// Output column names.
const (
	ColName     = "oligo_name"
	ColSequence = "sequence"
	ColGene     = "gene_id"
)

// Run is a convenience wrapper with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := oligocli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	opts, err := oligocli.ParseArgs(fs, argv)
	if code, done := clibase.Early(fs, tool, err, opts.Version, oligocli.PrintExamples, stdout, stderr); done {
		return code
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)
	if _, err := Convert(ctx, stdout, opts, argv, log); err != nil {
		return cmdutil.Fail(stderr, tool, err)
	}
	return cmdutil.ExitOK
}

// Convert writes the library in the fixed oligo schema and returns the run
// summary.
func Convert(ctx context.Context, stdout io.Writer, opts oligocli.Options, argv []string, log logrus.FieldLogger) (api.SummaryV1, error) {
	fwd, rev := opts.ForwardPrimer, opts.ReversePrimer
	if opts.Primers != "" {
		pairs, err := primer.LoadPairs(opts.Primers)
		if err != nil {
			return api.SummaryV1{}, err
		}
		pair, err := primer.Lookup(pairs, opts.PrimerID)
		if err != nil {
			return api.SummaryV1{}, err
		}
		fwd, rev = pair.Forward, pair.Reverse
	}

	vals := []string{opts.NameColumn, opts.SequenceColumn}
	if opts.GeneColumn != "" {
		vals = append(vals, opts.GeneColumn)
	}
	sel, err := columns.ParseSelectors(vals, opts.ColumnMode, opts.OneIndexed)
	if err != nil {
		return api.SummaryV1{}, err
	}
	spec, err := columns.NewSpec(nil, sel, nil, opts.OneIndexed)
	if err != nil {
		return api.SummaryV1{}, err
	}

	o := appcore.Options{
		Tool:          tool,
		Input:         opts.Input,
		Output:        opts.Output,
		Summary:       opts.Summary,
		Force:         opts.Force,
		CommentPrefix: opts.CommentPrefix,
		InDelim:       opts.InDelim,
		OutDelim:      opts.OutDelim,
		ForcedHeader:  opts.ForcedHeader,
		Rigorous:      opts.Rigorous,
		CaseSensitive: opts.CaseSensitive,
		Log:           log,
	}
	if opts.ColumnMode == columns.ModeName {
		o.Candidates = columns.Names(spec.Order)
	}
	if opts.RecordCommand {
		o.Command = append([]string{tool}, argv...)
	}

	p := &planner{
		opts:   opts,
		spec:   spec,
		primer: primer.Options{Forward: fwd, Reverse: rev, RevComp: opts.RevComp, Trim: opts.Trim()},
		log:    log,
	}
	return appcore.Run(ctx, stdout, o, p.plan)
}
