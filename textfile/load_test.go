package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordtree"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInsertBatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	path := writeFile(t, "init.txt", "\ufeffINSERT\napple 苹果\n\nbanana 香蕉\n")
	batch, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if batch.Mode != wordtree.ModeInsert || batch.Len() != 2 {
		t.Fatalf("unexpected batch %v with %d ops", batch.Mode, batch.Len())
	}
	if op := batch.Ops[1]; op.Key != "banana" || op.Value != "香蕉" || op.Line != 4 {
		t.Errorf("unexpected second op %v (line %d)", op, op.Line)
	}
}

func TestLoadMalformedBatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	path := writeFile(t, "delete.txt", "DELETE\napple\nbanana cherry\n")
	batch, err := Load(path)
	if !errors.Is(err, wordtree.ErrMalformedBatchLine) {
		t.Fatalf("expected ErrMalformedBatchLine, got %v", err)
	}
	if batch != nil {
		t.Errorf("malformed file must not yield a batch")
	}
}

func TestOpenEmptyFile(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f, err := Open(writeFile(t, "empty.txt", ""))
	if err != nil {
		t.Fatalf("open of empty file failed: %v", err)
	}
	defer f.Close()
	if f.Size() != 0 || len(f.Bytes()) != 0 {
		t.Errorf("empty file has size %d", f.Size())
	}
	batch, err := f.Batch()
	if err != nil || batch.Len() != 0 {
		t.Errorf("empty file should parse as empty batch, got %v / %v", batch, err)
	}
}

func TestOpenErrors(t *testing.T) {
	if _, err := Open(t.TempDir()); !errors.Is(err, ErrNotRegular) {
		t.Errorf("expected ErrNotRegular for a directory, got %v", err)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestLoadAll(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ins := writeFile(t, "a.txt", "INSERT\napple 苹果\n")
	del := writeFile(t, "b.txt", "DELETE\napple\n")
	batches, err := LoadAll(ins, del)
	if err != nil {
		t.Fatalf("load all failed: %v", err)
	}
	if len(batches) != 2 || batches[1].Mode != wordtree.ModeDelete {
		t.Fatalf("unexpected batches %v", batches)
	}
	bad := writeFile(t, "c.txt", "UPSERT\n")
	if batches, err = LoadAll(ins, bad); err == nil || batches != nil {
		t.Errorf("expected all-or-nothing failure, got %v / %v", batches, err)
	}
}
