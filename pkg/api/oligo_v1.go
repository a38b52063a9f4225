// pkg/api/oligo_v1.go
package api

// OligoSummaryV1 summarises primer handling for an oligo library.
type OligoSummaryV1 struct {
	Sequences      int       `json:"sequences"`
	Casing         string    `json:"casing"`
	ForwardPrimer  string    `json:"forward_primer,omitempty"`
	ReversePrimer  string    `json:"reverse_primer,omitempty"`
	ForwardUsed    string    `json:"forward_primer_used,omitempty"`
	ReverseUsed    string    `json:"reverse_primer_used,omitempty"`
	ForwardEnd     string    `json:"forward_primer_end,omitempty"`
	ReverseEnd     string    `json:"reverse_primer_end,omitempty"`
	ForwardCounts  CountsV1  `json:"forward_counts"`
	ReverseCounts  CountsV1  `json:"reverse_counts"`
	TrimmedForward int       `json:"trimmed_forward"`
	TrimmedReverse int       `json:"trimmed_reverse"`
	RevComp        bool      `json:"revcomp"`
	LengthIn       LengthsV1 `json:"length_in"`
	LengthOut      LengthsV1 `json:"length_out"`
}

type CountsV1 struct {
	Literal int `json:"literal"`
	RevComp int `json:"revcomp"`
}

// LengthsV1 are sequence length statistics.
type LengthsV1 struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stddev"`
}

// OligoRowV1 is one line of the per-row JSONL report.
type OligoRowV1 struct {
	Row            int    `json:"row"`
	Name           string `json:"oligo_name"`
	InLength       int    `json:"in_length"`
	OutLength      int    `json:"out_length"`
	TrimmedForward bool   `json:"trimmed_forward"`
	TrimmedReverse bool   `json:"trimmed_reverse"`
	RevComp        bool   `json:"revcomp"`
}

// SamplesheetSummaryV1 counts what a samplesheet check accepted.
type SamplesheetSummaryV1 struct {
	Samples   int  `json:"samples"`
	Runs      int  `json:"runs"`
	SingleEnd bool `json:"single_end"`
}
