package wordtree

import (
	"errors"
	"io"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// mapIndex is a minimal Index for testing batch handling in isolation.
type mapIndex struct {
	m map[string]string
}

func newMapIndex() *mapIndex { return &mapIndex{m: make(map[string]string)} }

func (mi *mapIndex) Search(key string) (string, bool) {
	v, ok := mi.m[key]
	return v, ok
}

func (mi *mapIndex) Insert(key, value string) error {
	if _, ok := mi.m[key]; ok {
		return ErrDuplicateKey
	}
	mi.m[key] = value
	return nil
}

func (mi *mapIndex) Delete(key string) error {
	if _, ok := mi.m[key]; !ok {
		return ErrKeyNotFound
	}
	delete(mi.m, key)
	return nil
}

func (mi *mapIndex) RangeSearch(low, high string) []Entry {
	var r []Entry
	for k, v := range mi.m {
		if InRange(k, low, high) {
			r = append(r, Entry{Key: k, Value: v})
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

func (mi *mapIndex) BulkLoad(b *Batch) []Result { return Apply(mi, b) }
func (mi *mapIndex) Dump(w io.Writer) error     { return nil }
func (mi *mapIndex) Len() int                   { return len(mi.m) }
func (mi *mapIndex) Check() error               { return nil }

func TestParseInsertBatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	input := "\ufeffINSERT\r\napple 苹果\r\n\n   \nbanana\t香蕉\n"
	batch, err := ParseBatch(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if batch.Mode != ModeInsert || batch.Len() != 2 {
		t.Fatalf("expected insert batch with 2 ops, got %s with %d", batch.Mode, batch.Len())
	}
	if op := batch.Ops[0]; op.Key != "apple" || op.Value != "苹果" || op.Line != 2 {
		t.Errorf("unexpected first op %+v", op)
	}
	if op := batch.Ops[1]; op.Key != "banana" || op.Value != "香蕉" || op.Line != 5 {
		t.Errorf("unexpected second op %+v", op)
	}
}

func TestParseDeleteBatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	batch, err := ParseBatch(strings.NewReader("\n  DELETE  \napple\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if batch.Mode != ModeDelete || batch.Len() != 1 || batch.Ops[0].String() != "apple" {
		t.Errorf("unexpected batch %+v", batch)
	}
}

func TestParseEmptyBatch(t *testing.T) {
	batch, err := ParseBatch(strings.NewReader(""))
	if err != nil || batch.Mode != ModeInsert || batch.Len() != 0 {
		t.Errorf("empty input: got %+v / %v", batch, err)
	}
	if _, err := ParseBatch(nil); !errors.Is(err, ErrIllegalArguments) {
		t.Errorf("nil reader: expected ErrIllegalArguments, got %v", err)
	}
}

func TestParseMalformedBatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tests := []struct {
		input string
		line  string
	}{
		{"UPSERT\napple 苹果\n", "line 1"},
		{"INSERT\napple 苹果\nbanana\n", "line 3"},
		{"INSERT\napple 苹果 extra\n", "line 2"},
		{"DELETE\napple\nbanana 香蕉\n", "line 3"},
		{"insert\napple 苹果\n", "line 1"},
	}
	for _, tt := range tests {
		batch, err := ParseBatch(strings.NewReader(tt.input))
		if !errors.Is(err, ErrMalformedBatchLine) {
			t.Errorf("%q: expected ErrMalformedBatchLine, got %v", tt.input, err)
			continue
		}
		if batch != nil {
			t.Errorf("%q: malformed input must not yield a batch", tt.input)
		}
		if !strings.Contains(err.Error(), tt.line) {
			t.Errorf("%q: error %q should name %s", tt.input, err, tt.line)
		}
	}
}

func TestLoadIsAtomic(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	idx := newMapIndex()
	results, err := Load(idx, strings.NewReader("INSERT\napple 苹果\nbanana\n"))
	if !errors.Is(err, ErrMalformedBatchLine) || results != nil {
		t.Fatalf("expected rejected batch, got %v / %v", results, err)
	}
	if idx.Len() != 0 {
		t.Errorf("rejected batch must not touch the index, has %d entries", idx.Len())
	}
	results, err = Load(idx, strings.NewReader("INSERT\napple 苹果\napple 林檎\nbanana 香蕉\n"))
	if err != nil {
		t.Fatal(err)
	}
	if CountFailures(results) != 1 || !errors.Is(results[1].Err, ErrDuplicateKey) {
		t.Errorf("expected a single duplicate failure, got %v", results)
	}
	if v, _ := idx.Search("apple"); v != "苹果" {
		t.Errorf("duplicate must not overwrite, apple = %q", v)
	}
	results, _ = Load(idx, strings.NewReader("DELETE\napple\ncherry\n"))
	if !results[0].OK() || !errors.Is(results[1].Err, ErrKeyNotFound) {
		t.Errorf("unexpected delete results %v", results)
	}
	if r := idx.RangeSearch("a", "z"); len(r) != 1 || r[0].Key != "banana" {
		t.Errorf("unexpected contents %v", r)
	}
}

func TestModes(t *testing.T) {
	if m, ok := ParseMode(" DELETE "); !ok || m != ModeDelete {
		t.Errorf("ParseMode(DELETE) = %v, %v", m, ok)
	}
	if _, ok := ParseMode("Delete"); ok {
		t.Errorf("modes are case sensitive")
	}
	if ModeInsert.String() != "INSERT" || Mode(7).String() != "Mode(7)" {
		t.Errorf("unexpected mode names")
	}
	op := Op{Mode: ModeInsert, Key: "apple", Value: "苹果"}
	if op.String() != "apple 苹果" {
		t.Errorf("op string = %q", op.String())
	}
	if !InRange("b", "a", "c") || InRange("d", "a", "c") || !InRange("a", "a", "a") {
		t.Errorf("InRange is inclusive on both ends")
	}
}
