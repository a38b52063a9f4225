package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type rec struct {
	Row int    `json:"row"`
	Seq string `json:"seq"`
}

func TestStartWritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	in, done := Start[rec](&buf, 2, nil, nil)
	for i := 1; i <= 3; i++ {
		in <- rec{Row: i, Seq: "ACGT"}
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d: %q", len(lines), buf.String())
	}
	var r rec
	if err := json.Unmarshal([]byte(lines[2]), &r); err != nil || r.Row != 3 {
		t.Fatalf("last line %q: %v", lines[2], err)
	}
}

func TestStartEncodeErrorDrains(t *testing.T) {
	boom := errors.New("boom")
	var buf bytes.Buffer
	in, done := Start[int](&buf, 1, func(_ *json.Encoder, v int) error {
		if v == 2 {
			return boom
		}
		return nil
	}, nil)
	for i := 1; i <= 5; i++ {
		in <- i
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
