package oligoapp

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/cancerit/QUANTS-sub000/core/primer"
	"github.com/cancerit/QUANTS-sub000/internal/jsonlutil"
	"github.com/cancerit/QUANTS-sub000/internal/writers"
	"github.com/cancerit/QUANTS-sub000/pkg/api"
)

func oligoSummary(rep primer.Report, revcomp bool) *api.OligoSummaryV1 {
	in := make([]float64, len(rep.Rows))
	out := make([]float64, len(rep.Rows))
	for i, r := range rep.Rows {
		in[i], out[i] = float64(r.InLength), float64(r.OutLength)
	}
	return &api.OligoSummaryV1{
		Sequences:      rep.Sequences,
		Casing:         string(rep.Casing),
		ForwardPrimer:  rep.Forward,
		ReversePrimer:  rep.Reverse,
		ForwardUsed:    rep.ForwardUsed,
		ReverseUsed:    rep.ReverseUsed,
		ForwardEnd:     rep.ForwardEnd,
		ReverseEnd:     rep.ReverseEnd,
		ForwardCounts:  api.CountsV1{Literal: rep.ForwardCounts.Literal, RevComp: rep.ForwardCounts.RevComp},
		ReverseCounts:  api.CountsV1{Literal: rep.ReverseCounts.Literal, RevComp: rep.ReverseCounts.RevComp},
		TrimmedForward: rep.TrimmedForward,
		TrimmedReverse: rep.TrimmedReverse,
		RevComp:        revcomp,
		LengthIn:       lengths(in),
		LengthOut:      lengths(out),
	}
}

// lengths summarises sequence lengths; empty input gives zeros. StdDev is
// the sample standard deviation, zero for a single sequence.
func lengths(v stats.Float64Data) api.LengthsV1 {
	if v.Len() == 0 {
		return api.LengthsV1{}
	}
	var l api.LengthsV1
	l.Min, _ = stats.Min(v)
	l.Max, _ = stats.Max(v)
	l.Mean, _ = stats.Mean(v)
	l.Median, _ = stats.Median(v)
	if v.Len() > 1 {
		l.StdDev = stat.StdDev(v, nil)
	}
	return l
}

// stageReport writes one JSON line per oligo to an uncommitted target.
func stageReport(path string, overwrite bool, rows [][]string, rep primer.Report) (*writers.Target, error) {
	t, err := writers.Create(path, overwrite, nil)
	if err != nil {
		return nil, err
	}
	in, done := jsonlutil.Start[api.OligoRowV1](t, 0, nil, nil)
	for i, r := range rep.Rows {
		in <- api.OligoRowV1{
			Row:            r.Row,
			Name:           rows[i][0],
			InLength:       r.InLength,
			OutLength:      r.OutLength,
			TrimmedForward: r.TrimmedForward,
			TrimmedReverse: r.TrimmedReverse,
			RevComp:        r.RevComp,
		}
	}
	close(in)
	if err := <-done; err != nil {
		t.Abort()
		return nil, err
	}
	return t, nil
}
