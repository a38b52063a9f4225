// internal/appcore/core.go
package appcore

import (
	"context"
	"io"
	"strings"

	"github.com/jgbaldwinbrown/iter"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/tabular"
	"github.com/cancerit/QUANTS-sub000/internal/jsonutil"
	"github.com/cancerit/QUANTS-sub000/internal/version"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

// Options configure one run over one input file.
type Options struct {
	Tool    string
	Input   string
	Output  string
	Summary string
	Force   bool
	// Command is recorded as a leading comment line when non-empty.
	Command []string

	CommentPrefix string
	InDelim       rune // 0 = sniff
	OutDelim      rune
	ForcedHeader  *int
	Candidates    []string
	Rigorous      bool
	CaseSensitive bool

	Log   logrus.FieldLogger
	Cache *tabular.OffsetCache
}

// Plan is what a tool wants written: rows, header first, and a hook that
// completes the summary once every row is out.
type Plan struct {
	Rows iter.Iter[[]string]
	// HasHeader says the first row of Rows is a header.
	HasHeader bool
	// Finish may stage side outputs. They are committed together with the
	// main output and the summary, or all discarded.
	Finish func(*api.SummaryV1) ([]*writers.Target, error)
}

// Planner builds a Plan from the inspected input.
type Planner func(ctx context.Context, src *Source, sum *api.SummaryV1) (Plan, error)

// Run inspects the input, lets plan build the row pipeline, writes the
// result atomically and writes the summary when asked.
func Run(ctx context.Context, stdout io.Writer, o Options, plan Planner) (api.SummaryV1, error) {
	sum := api.SummaryV1{Tool: o.Tool, Version: version.Version, Command: o.Command}
	if o.Cache == nil {
		o.Cache = tabular.NewOffsetCache()
	}

	props, err := tabular.Inspect(o.Input, tabular.InspectOptions{
		CommentPrefix:   o.CommentPrefix,
		ForcedDelimiter: o.InDelim,
		Candidates:      o.Candidates,
		ForcedHeader:    o.ForcedHeader,
		Rigorous:        o.Rigorous,
		CaseSensitive:   o.CaseSensitive,
		Log:             o.Log,
	}, o.Cache)
	if err != nil {
		return sum, err
	}
	sum.Input = api.InputV1{
		Path:               props.Path,
		Delimiter:          tabular.DelimiterName(props.Delimiter),
		DelimiterForced:    props.DelimiterForced,
		TabularStartOffset: props.TabularStartOffset,
		CommentLines:       props.CommentLineIndices,
		HeaderLineIndex:    props.HeaderLineIndex,
		HeaderForced:       props.HeaderIndexForced,
		HeaderMethod:       props.HeaderMethod,
	}

	src, err := openSource(props, o.Log)
	if err != nil {
		return sum, err
	}
	defer func() { _ = src.Close() }()

	p, err := plan(ctx, src, &sum)
	if err != nil {
		return sum, err
	}

	target, err := writers.Create(o.Output, o.Force, stdout)
	if err != nil {
		return sum, err
	}
	dw := writers.NewDelimited(target, o.OutDelim)
	if len(o.Command) > 0 {
		if err := dw.Comment(o.CommentPrefix, strings.Join(o.Command, " ")); err != nil {
			target.Abort()
			return sum, err
		}
	}

	var header []string
	if err := stream(ctx, p.Rows, func(row []string) error {
		if p.HasHeader && header == nil {
			header = append([]string{}, row...)
		}
		return dw.Write(row)
	}, dw.Flush); err != nil {
		target.Abort()
		return sum, err
	}
	sum.Input.Rows = src.DataRows()
	sum.Output = api.OutputV1{
		Path:      target.Path(),
		Delimiter: tabular.DelimiterName(o.OutDelim),
		Header:    header,
		Rows:      dw.Rows(),
		CRC32:     dw.CRC32(),
	}

	staged := []*writers.Target{target}
	if p.Finish != nil {
		side, err := p.Finish(&sum)
		staged = append(staged, side...)
		if err != nil {
			abortAll(staged)
			return sum, err
		}
	}
	if o.Summary != "" {
		t, err := jsonutil.Stage(o.Summary, sum, stdout)
		if err != nil {
			abortAll(staged)
			return sum, err
		}
		staged = append(staged, t)
	}
	for i, t := range staged {
		if err := t.Commit(); err != nil {
			abortAll(staged[i+1:])
			return sum, err
		}
	}
	return sum, nil
}

func abortAll(ts []*writers.Target) {
	for _, t := range ts {
		t.Abort()
	}
}

// stream runs rows in a reader goroutine and write in a writer goroutine,
// keeping order. flush runs after the last row.
func stream(ctx context.Context, rows iter.Iter[[]string], write func([]string) error, flush func() error) error {
	g, gctx := errgroup.WithContext(ctx)
	ch := make(chan []string, 256)

	g.Go(func() error {
		defer close(ch)
		return rows.Iterate(func(row []string) error {
			select {
			case ch <- row:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})
	g.Go(func() error {
		for row := range ch {
			if err := write(row); err != nil {
				return err
			}
		}
		if err := gctx.Err(); err != nil {
			return err
		}
		return flush()
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// DuplicateSummary converts resolver duplicates for the summary.
func DuplicateSummary(d []columns.Duplicate) []api.DuplicateV1 {
	if len(d) == 0 {
		return nil
	}
	out := make([]api.DuplicateV1, len(d))
	for i, x := range d {
		out[i] = api.DuplicateV1{Name: x.Name, Index: x.Index}
	}
	return out
}
