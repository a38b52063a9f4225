package transform

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/jgbaldwinbrown/iter"

	"github.com/cancerit/QUANTS-sub000/core/columns"
	"github.com/cancerit/QUANTS-sub000/core/errs"
)

func collect(t *testing.T, it iter.Iter[[]string]) [][]string {
	t.Helper()
	rows, err := iter.Collect[[]string](it)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return rows
}

func rowsOf(rows ...[]string) iter.Iter[[]string] { return iter.SliceIter[[]string](rows) }

func mustReorder(t *testing.T, idx ...int) *Reorder {
	t.Helper()
	r, err := NewReorder(idx)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestReorderIdentity(t *testing.T) {
	row := []string{"a", "b", "c", "d"}
	if got := mustReorder(t, 0, 1, 2, 3).Row(row); !reflect.DeepEqual(got, row) {
		t.Fatalf("identity reorder = %v", got)
	}
}

func TestReorderTruncation(t *testing.T) {
	r := mustReorder(t, 3, 0, 5, 1)
	got := r.Row([]string{"a", "b", "c", "d"})
	if !reflect.DeepEqual(got, []string{"d", "a", "b"}) {
		t.Fatalf("reorder = %v", got)
	}
	if got := r.Row([]string{"a"}); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("short row = %v", got)
	}
	if got := mustReorder(t, 2, 0).Row([]string{"a", "b", "c"}); len(got) != 2 {
		t.Fatalf("in-range indices must keep length: %v", got)
	}
}

func TestReorderEmptyIndices(t *testing.T) {
	got := collect(t, mustReorder(t).Apply(rowsOf([]string{"a"}, []string{})))
	if len(got) != 2 || len(got[0]) != 0 || len(got[1]) != 0 {
		t.Fatalf("empty reorder = %v", got)
	}
}

func TestReorderErrors(t *testing.T) {
	for _, idx := range [][]int{{0, -1}, {1, 2, 1}} {
		if _, err := NewReorder(idx); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("NewReorder(%v) = %v", idx, err)
		}
	}
}

func TestReheaderBeforeReorder(t *testing.T) {
	m := columns.Mapping{Mode: columns.ModeName, ByName: map[string]string{"a": "X"}}
	h, err := NewReheader(m, false, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := collect(t, Process(rowsOf([]string{"a", "b", "c"}), h, mustReorder(t, 2, 0, 1)))
	if !reflect.DeepEqual(got, [][]string{{"c", "X", "b"}}) {
		t.Fatalf("process = %v", got)
	}
}

func TestReheaderByIndexInPlace(t *testing.T) {
	m := columns.Mapping{Mode: columns.ModeIndex, ByIndex: map[int]string{1: "Y"}}
	h, _ := NewReheader(m, false, 0)
	got := collect(t, h.Apply(rowsOf([]string{"a", "b"}, []string{"b", "a"})))
	want := [][]string{{"a", "Y"}, {"b", "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reheader = %v, want %v", got, want)
	}
}

func TestReheaderByNameOnlyFirstRow(t *testing.T) {
	m := columns.Mapping{Mode: columns.ModeName, ByName: map[string]string{"a": "X"}}
	h, _ := NewReheader(m, false, 0)
	got := collect(t, h.Apply(rowsOf([]string{"a", "q"}, []string{"a", "a"})))
	want := [][]string{{"X", "q"}, {"a", "a"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reheader = %v, want %v", got, want)
	}
}

func TestReheaderAppend(t *testing.T) {
	m := columns.Mapping{Mode: columns.ModeIndex, ByIndex: map[int]string{0: "X", 1: "Y", 2: "Z"}}
	h, err := NewReheader(m, true, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := collect(t, h.Apply(rowsOf([]string{"a", "b", "c"})))
	if !reflect.DeepEqual(got, [][]string{{"X", "Y", "Z"}, {"a", "b", "c"}}) {
		t.Fatalf("append = %v", got)
	}

	partial := columns.Mapping{Mode: columns.ModeIndex, ByIndex: map[int]string{1: "Y"}}
	h, _ = NewReheader(partial, true, 3)
	got = collect(t, h.Apply(rowsOf([]string{"a"})))
	if !reflect.DeepEqual(got[0], []string{"column_0", "Y", "column_2"}) {
		t.Fatalf("placeholders = %v", got[0])
	}
}

func TestReheaderEmptyInput(t *testing.T) {
	modes := []columns.Mapping{
		{Mode: columns.ModeName, ByName: map[string]string{"a": "X"}},
		{Mode: columns.ModeIndex, ByIndex: map[int]string{0: "X"}},
	}
	for _, m := range modes {
		for _, app := range []bool{false, true} {
			h, err := NewReheader(m, app, 0)
			if err != nil {
				continue
			}
			if got := collect(t, h.Apply(rowsOf())); len(got) != 0 {
				t.Errorf("mode %v append %v: got %v from empty input", m.Mode, app, got)
			}
		}
	}
}

func TestReheaderAppendByNameRejected(t *testing.T) {
	m := columns.Mapping{Mode: columns.ModeName, ByName: map[string]string{"a": "X"}}
	if _, err := NewReheader(m, true, 0); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestNullCheck(t *testing.T) {
	rows := func() iter.Iter[[]string] {
		return rowsOf([]string{"id", "seq"}, []string{"1", "ACGT"}, []string{"2", "NA"}, []string{"3"})
	}
	warn := &NullCheck{Columns: []int{1}, Names: []string{"seq"}, Policy: NullWarn, SkipHeader: true}
	if got := collect(t, warn.Apply(rows())); len(got) != 4 {
		t.Fatalf("warn policy dropped rows: %v", got)
	}
	if warn.Flagged() != 2 {
		t.Fatalf("flagged = %d, want 2", warn.Flagged())
	}

	fail := &NullCheck{Columns: []int{1}, Policy: NullError, SkipHeader: true}
	_, err := iter.Collect[[]string](fail.Apply(rows()))
	if !errors.Is(err, errs.ErrNullData) {
		t.Fatalf("want null data error, got %v", err)
	}
	short := &NullCheck{Columns: []int{2, 0}, Names: []string{"gene", "id"}, Policy: NullError}
	_, err = iter.Collect[[]string](short.Apply(rowsOf([]string{"7", "8"})))
	if !errors.Is(err, errs.ErrNullData) || !strings.Contains(err.Error(), "column gene: missing") {
		t.Fatalf("short row: %v", err)
	}
	if _, err := ParseNullPolicy("sometimes"); !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("bad policy accepted: %v", err)
	}
}
