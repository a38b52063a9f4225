package reformatapp

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/errs"
	"github.com/cancerit/QUANTS-sub000/core/tabular"
	"github.com/cancerit/QUANTS-sub000/core/transform"
	"github.com/cancerit/QUANTS-sub000/internal/appcore"
	"github.com/cancerit/QUANTS-sub000/internal/clibase"
	"github.com/cancerit/QUANTS-sub000/internal/cmdutil"
	"github.com/cancerit/QUANTS-sub000/internal/reformatcli"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

const tool = "reformat-csv"

// Run is a convenience wrapper with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := reformatcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	opts, err := reformatcli.ParseArgs(fs, argv)
	if code, done := clibase.Early(fs, tool, err, opts.Version, reformatcli.PrintExamples, stdout, stderr); done {
		return code
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)
	if _, err := Reformat(ctx, stdout, opts, argv, log); err != nil {
		return cmdutil.Fail(stderr, tool, err)
	}
	return cmdutil.ExitOK
}

// Reformat runs one reformat over opts.Input and returns the run summary.
func Reformat(ctx context.Context, stdout io.Writer, opts reformatcli.Options, argv []string, log logrus.FieldLogger) (api.SummaryV1, error) {
	mode, one := opts.ColumnMode, opts.OneIndexed
	required, err := columns.ParseSelectors(opts.Required, mode, one)
	if err != nil {
		return api.SummaryV1{}, err
	}
	optional, err := columns.ParseSelectors(opts.Optional, mode, one)
	if err != nil {
		return api.SummaryV1{}, err
	}
	order, err := columns.ParseSelectors(opts.Order, mode, one)
	if err != nil {
		return api.SummaryV1{}, err
	}
	spec, err := columns.NewSpec(order, required, optional, one)
	if err != nil {
		return api.SummaryV1{}, err
	}
	mapping, err := columns.ParseMapping(opts.Reheader, mode, one)
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
	if mode == columns.ModeName {
		o.Candidates = columns.Names(spec.Order)
	}
	if opts.RecordCommand {
		o.Command = append([]string{tool}, argv...)
	}

	p := &planner{opts: opts, spec: spec, mapping: mapping, log: log}
	return appcore.Run(ctx, stdout, o, p.plan)
}

type planner struct {
	opts    reformatcli.Options
	spec    columns.Spec
	mapping columns.Mapping
	log     logrus.FieldLogger
}

func (p *planner) plan(_ context.Context, src *appcore.Source, sum *api.SummaryV1) (appcore.Plan, error) {
	mode, one := p.opts.ColumnMode, p.opts.OneIndexed

	var resolver *columns.Resolver
	var dups []columns.Duplicate
	if mode == columns.ModeName {
		loc := tabular.HeaderLocation{Index: src.Props.HeaderLineIndex}
		if err := tabular.RequireHeader(src.Props.Path, loc, "columns are selected by name"); err != nil {
			return appcore.Plan{}, err
		}
		resolver = columns.NewResolver(src.Header)
		dups = resolver.Duplicates()
		for _, d := range dups {
			cmdutil.Warnf(p.log, "%s: header column %q repeats at position %d; the first occurrence is used", src.Props.Path, d.Name, d.Index)
		}
	}

	count := columns.Count{N: len(src.First), Uniform: true}
	if p.opts.Rigorous {
		c, err := src.CountColumns(true)
		if err != nil {
			return appcore.Plan{}, err
		}
		if !c.Uniform {
			cmdutil.Warnf(p.log, "%s: rows do not share one width; using the most common width %d", src.Props.Path, c.N)
		}
		count = c
	}
	if resolver != nil && resolver.Len() > count.N {
		count.N = resolver.Len()
	}

	bound, err := columns.Bind(p.spec, resolver, count.N, one)
	if err != nil {
		return appcore.Plan{}, err
	}
	for _, d := range bound.Dropped {
		cmdutil.Warnf(p.log, "%s: optional column %s not present; skipped", src.Props.Path, d.Label(one))
	}
	if err := p.mapping.Validate(p.opts.AppendHeader, bound.Indices); err != nil {
		return appcore.Plan{}, err
	}

	if p.mapping.Len() > 0 && src.Header == nil && !p.opts.AppendHeader {
		return appcore.Plan{}, errs.Validationf("%s: --reheader given but the table has no header row", src.Props.Path).
			WithHint("add --append-header to synthesise one")
	}
	var reheader *transform.Reheader
	if p.mapping.Len() > 0 || p.opts.AppendHeader {
		if reheader, err = transform.NewReheader(p.mapping, p.opts.AppendHeader, count.N); err != nil {
			return appcore.Plan{}, err
		}
	}
	reorder, err := transform.NewReorder(bound.Indices)
	if err != nil {
		return appcore.Plan{}, err
	}

	hasHeader := src.Header != nil || p.opts.AppendHeader
	check := p.nullCheck(bound, hasHeader)
	rows := reorder.Apply(check.Apply(transform.Process(src.Rows(), reheader, nil)))

	finish := func(s *api.SummaryV1) ([]*writers.Target, error) {
		s.Columns = api.ColumnsV1{
			Mode:       mode.String(),
			OneIndexed: one,
			Count:      count.N,
			Uniform:    count.Uniform,
			Selected:   labels(bound.Columns, one),
			Dropped:    labels(bound.Dropped, one),
			Duplicates: appcore.DuplicateSummary(dups),
			Renamed:    p.mapping.Len(),
		}
		s.NullValues = check.Flagged()
		return nil, nil
	}
	return appcore.Plan{Rows: rows, HasHeader: hasHeader, Finish: finish}, nil
}

// nullCheck watches the required columns by source index, ahead of the
// reorder.
func (p *planner) nullCheck(b columns.Resolved, skipHeader bool) *transform.NullCheck {
	n := &transform.NullCheck{Policy: p.opts.Nulls, SkipHeader: skipHeader, Log: p.log}
	for k, sel := range b.Columns {
		if !p.spec.IsRequired(sel) {
			continue
		}
		n.Columns = append(n.Columns, b.Indices[k])
		n.Names = append(n.Names, sel.Label(p.opts.OneIndexed))
	}
	return n
}

func labels(sel []columns.Selector, oneIndexed bool) []string {
	out := make([]string, 0, len(sel))
	for _, s := range sel {
		out = append(out, s.Label(oneIndexed))
	}
	return out
}
