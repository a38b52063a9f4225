package samplesheetapp

import (
	"context"
	"io"

	"github.com/jgbaldwinbrown/iter"
	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/internal/appcore"
	"github.com/cancerit/QUANTS-sub000/internal/clibase"
	"github.com/cancerit/QUANTS-sub000/internal/cmdutil"
	"github.com/cancerit/QUANTS-sub000/internal/samplesheet"
	"github.com/cancerit/QUANTS-sub000/internal/samplesheetcli"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

const tool = "check-samplesheet"

// Run is a convenience wrapper with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := samplesheetcli.NewFlagSet(tool)
	fs.SetOutput(io.Discard)

	opts, err := samplesheetcli.ParseArgs(fs, argv)
	if code, done := clibase.Early(fs, tool, err, opts.Version, samplesheetcli.PrintExamples, stdout, stderr); done {
		return code
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet)
	if _, err := Check(ctx, stdout, opts, argv, log); err != nil {
		return cmdutil.Fail(stderr, tool, err)
	}
	return cmdutil.ExitOK
}

// Check validates the samplesheet and writes the checked form.
func Check(ctx context.Context, stdout io.Writer, opts samplesheetcli.Options, argv []string, log logrus.FieldLogger) (api.SummaryV1, error) {
	o := appcore.Options{
		Tool:          tool,
		Input:         opts.Input,
		Output:        opts.Output,
		Summary:       opts.Summary,
		Force:         opts.Force,
		CommentPrefix: opts.CommentPrefix,
		InDelim:       opts.InDelim,
		OutDelim:      opts.OutDelim,
		Candidates:    samplesheet.InputHeader,
		CaseSensitive: true,
		Log:           log,
	}
	if opts.RecordCommand {
		o.Command = append([]string{tool}, argv...)
	}
	return appcore.Run(ctx, stdout, o, func(_ context.Context, src *appcore.Source, _ *api.SummaryV1) (appcore.Plan, error) {
		return plan(src, opts.SingleEnd)
	})
}

// plan reads the whole sheet; the cross-row checks must pass before any
// output is written.
func plan(src *appcore.Source, singleEnd bool) (appcore.Plan, error) {
	if err := samplesheet.CheckHeader(src.Header); err != nil {
		return appcore.Plan{}, err
	}
	var sheet samplesheet.Sheet
	line := 1
	err := src.Body().Iterate(func(row []string) error {
		line++
		r, err := samplesheet.Parse(line, row, singleEnd)
		if err != nil {
			return err
		}
		sheet.Add(r)
		return nil
	})
	if err != nil {
		return appcore.Plan{}, err
	}
	if err := sheet.Validate(); err != nil {
		return appcore.Plan{}, err
	}

	rows := append([][]string{samplesheet.OutputHeader}, sheet.Rows()...)
	finish := func(s *api.SummaryV1) ([]*writers.Target, error) {
		s.Columns = api.ColumnsV1{
			Mode:     "name",
			Count:    len(samplesheet.InputHeader),
			Uniform:  true,
			Selected: samplesheet.InputHeader,
		}
		s.Samplesheet = &api.SamplesheetSummaryV1{
			Samples:   sheet.Samples(),
			Runs:      len(sheet.Runs()),
			SingleEnd: singleEnd,
		}
		return nil, nil
	}
	return appcore.Plan{Rows: iter.SliceIter[[]string](rows), HasHeader: true, Finish: finish}, nil
}
