// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"

	"github.com/cancerit/QUANTS-sub000/internal/writers"
)

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFile atomically replaces path with v as indented JSON. "-" writes to
// stdout.
func WriteFile(path string, v any, stdout io.Writer) error {
	t, err := Stage(path, v, stdout)
	if err != nil {
		return err
	}
	return t.Commit()
}

// Stage is WriteFile without the Commit.
func Stage(path string, v any, stdout io.Writer) (*writers.Target, error) {
	t, err := writers.Create(path, true, stdout)
	if err != nil {
		return nil, err
	}
	if err := EncodePretty(t, v); err != nil {
		t.Abort()
		return nil, err
	}
	return t, nil
}
