// pkg/api/summary_v1.go
package api

// SummaryV1 is the stable JSON schema of a run summary.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SummaryV1 struct {
	Tool    string   `json:"tool"`
	Version string   `json:"version"`
	Command []string `json:"command,omitempty"`

	Input  InputV1  `json:"input"`
	Output OutputV1 `json:"output"`

	Columns    ColumnsV1 `json:"columns"`
	NullValues int       `json:"null_values,omitempty"`

	Oligo       *OligoSummaryV1       `json:"oligo,omitempty"`
	Samplesheet *SamplesheetSummaryV1 `json:"samplesheet,omitempty"`
}

// InputV1 describes how the input file was interpreted.
type InputV1 struct {
	Path               string `json:"path"`
	Delimiter          string `json:"delimiter"`
	DelimiterForced    bool   `json:"delimiter_forced"`
	TabularStartOffset int64  `json:"tabular_start_offset"`
	CommentLines       []int  `json:"comment_line_indices"`
	HeaderLineIndex    int    `json:"column_header_line_index"` // -1 = none
	HeaderForced       bool   `json:"header_index_forced"`
	HeaderMethod       string `json:"header_method"` // forced | name | heuristic | none
	Rows               int    `json:"rows"`
}

type OutputV1 struct {
	Path      string   `json:"path"`
	Delimiter string   `json:"delimiter"`
	Header    []string `json:"header,omitempty"`
	Rows      int      `json:"rows"`
	CRC32     string   `json:"crc32,omitempty"`
}

type ColumnsV1 struct {
	Mode       string        `json:"mode"`
	OneIndexed bool          `json:"one_indexed,omitempty"`
	Count      int           `json:"count"`
	Uniform    bool          `json:"uniform"`
	Selected   []string      `json:"selected"`
	Dropped    []string      `json:"dropped,omitempty"`
	Duplicates []DuplicateV1 `json:"duplicates,omitempty"`
	Renamed    int           `json:"renamed,omitempty"`
}

type DuplicateV1 struct {
	Name  string `json:"name"`
	Index int    `json:"index"`
}
