package oligoapp

import (
	"context"

	"github.com/jgbaldwinbrown/iter"
	"github.com/sirupsen/logrus"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/errs"
	"github.com/cancerit/QUANTS-sub000/core/primer"
	"github.com/cancerit/QUANTS-sub000/core/tabular"
	"github.com/cancerit/QUANTS-sub000/core/transform"
	"github.com/cancerit/QUANTS-sub000/internal/appcore"
	"github.com/cancerit/QUANTS-sub000/internal/cmdutil"
	"github.com/cancerit/QUANTS-sub000/internal/oligocli"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

type planner struct {
	opts   oligocli.Options
	spec   columns.Spec
	primer primer.Options
	log    logrus.FieldLogger
}

// plan reads the whole library: primer prediction needs every sequence
// before the first one can be trimmed.
func (p *planner) plan(_ context.Context, src *appcore.Source, _ *api.SummaryV1) (appcore.Plan, error) {
	one := p.opts.OneIndexed
	path := src.Props.Path

	var resolver *columns.Resolver
	if p.opts.ColumnMode == columns.ModeName {
		loc := tabular.HeaderLocation{Index: src.Props.HeaderLineIndex}
		if err := tabular.RequireHeader(path, loc, "library columns are selected by name"); err != nil {
			return appcore.Plan{}, err
		}
		resolver = columns.NewResolver(src.Header)
		for _, d := range resolver.Duplicates() {
			cmdutil.Warnf(p.log, "%s: header column %q repeats at position %d; the first occurrence is used", path, d.Name, d.Index)
		}
	}

	width, uniform := len(src.First), true
	if resolver != nil && resolver.Len() > width {
		width = resolver.Len()
	}
	if p.opts.Rigorous {
		c, err := src.CountColumns(true)
		if err != nil {
			return appcore.Plan{}, err
		}
		if !c.Uniform {
			cmdutil.Warnf(p.log, "%s: rows do not share one width; using the most common width %d", path, c.N)
		}
		width, uniform = c.N, c.Uniform
	}
	bound, err := columns.Bind(p.spec, resolver, width, one)
	if err != nil {
		return appcore.Plan{}, err
	}
	reorder, err := transform.NewReorder(bound.Indices)
	if err != nil {
		return appcore.Plan{}, err
	}

	check := &transform.NullCheck{Policy: p.opts.Nulls, Log: p.log}
	for k, sel := range bound.Columns {
		check.Columns = append(check.Columns, bound.Indices[k])
		check.Names = append(check.Names, sel.Label(one))
	}
	rows, err := iter.Collect[[]string](reorder.Apply(check.Apply(requireWidth(src.Body(), bound.Indices))))
	if err != nil {
		return appcore.Plan{}, err
	}
	if len(rows) == 0 {
		return appcore.Plan{}, errs.Validationf("%s: library has no oligo rows", path)
	}
	warnRepeatedNames(p.log, path, rows)

	seqs := make([]string, len(rows))
	for i, r := range rows {
		seqs[i] = r[1]
	}
	out, rep, err := primer.Transform(seqs, p.primer)
	if err != nil {
		return appcore.Plan{}, err
	}

	header := []string{ColName, ColSequence}
	if len(bound.Indices) == 3 {
		header = append(header, ColGene)
	}
	lines := make([][]string, 0, len(rows)+1)
	lines = append(lines, header)
	for i, r := range rows {
		line := append([]string{r[0], out[i]}, r[2:]...)
		lines = append(lines, line)
	}

	finish := func(s *api.SummaryV1) ([]*writers.Target, error) {
		s.Columns = api.ColumnsV1{
			Mode:       p.opts.ColumnMode.String(),
			OneIndexed: one,
			Count:      width,
			Uniform:    uniform,
			Selected:   header,
		}
		s.NullValues = check.Flagged()
		s.Oligo = oligoSummary(rep, p.primer.RevComp)
		if p.opts.Report == "" {
			return nil, nil
		}
		t, err := stageReport(p.opts.Report, p.opts.Force, rows, rep)
		if err != nil {
			return nil, err
		}
		return []*writers.Target{t}, nil
	}
	return appcore.Plan{Rows: iter.SliceIter[[]string](lines), HasHeader: true, Finish: finish}, nil
}

// requireWidth rejects rows too short to hold every selected column.
func requireWidth(rows iter.Iter[[]string], indices []int) iter.Iter[[]string] {
	need := 0
	for _, i := range indices {
		if i+1 > need {
			need = i + 1
		}
	}
	n := 0
	return iter.Transform[[]string, []string](rows, func(row []string) ([]string, error) {
		n++
		if len(row) < need {
			return nil, errs.Validationf("data row %d has %d fields; the selected columns need %d", n, len(row), need)
		}
		return row, nil
	})
}

func warnRepeatedNames(log logrus.FieldLogger, path string, rows [][]string) {
	seen := make(map[string]int, len(rows))
	for i, r := range rows {
		if first, ok := seen[r[0]]; ok {
			cmdutil.Warnf(log, "%s: oligo name %q on data rows %d and %d", path, r[0], first, i+1)
			continue
		}
		seen[r[0]] = i + 1
	}
}
