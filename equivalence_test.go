package wordtree_test

import (
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	gbtree "github.com/google/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wordtree"
	"github.com/npillmayer/wordtree/btree"
	"github.com/npillmayer/wordtree/rbtree"
)

var fruits = []wordtree.Entry{
	{Key: "apple", Value: "苹果"},
	{Key: "banana", Value: "香蕉"},
	{Key: "cherry", Value: "樱桃"},
}

type backend struct {
	name string
	make func(t *testing.T) wordtree.Index
}

var backends = []backend{
	{"rbtree", func(t *testing.T) wordtree.Index { return rbtree.New() }},
	{"btree-2", func(t *testing.T) wordtree.Index { return newBTree(t, 2) }},
	{"btree-default", func(t *testing.T) wordtree.Index { return newBTree(t, 0) }},
}

func newBTree(t *testing.T, degree int) *btree.Tree {
	tree, err := btree.New(btree.Config{Degree: degree})
	if err != nil {
		t.Fatalf("cannot create B-tree: %v", err)
	}
	return tree
}

func insertAll(t *testing.T, idx wordtree.Index, entries []wordtree.Entry) {
	t.Helper()
	for _, e := range entries {
		if err := idx.Insert(e.Key, e.Value); err != nil {
			t.Fatalf("insert %q failed: %v", e.Key, err)
		}
	}
}

func keysOf(entries []wordtree.Entry) string {
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return strings.Join(keys, ",")
}

func TestScenarioSearchAndRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, b := range backends {
		idx := b.make(t)
		insertAll(t, idx, fruits)
		if v, ok := idx.Search("banana"); !ok || v != "香蕉" {
			t.Errorf("%s: search banana = (%q, %v)", b.name, v, ok)
		}
		r := idx.RangeSearch("banana", "cherry")
		if len(r) != 2 || r[0] != fruits[1] || r[1] != fruits[2] {
			t.Errorf("%s: range [banana,cherry] = %v", b.name, r)
		}
		if r := idx.RangeSearch("cherry", "banana"); len(r) != 0 {
			t.Errorf("%s: inverted range should be empty, got %v", b.name, r)
		}
	}
}

func TestScenarioDeleteMiddle(t *testing.T) {
	for _, b := range backends {
		idx := b.make(t)
		insertAll(t, idx, fruits)
		if err := idx.Delete("banana"); err != nil {
			t.Fatalf("%s: delete banana failed: %v", b.name, err)
		}
		if _, ok := idx.Search("banana"); ok {
			t.Errorf("%s: banana still found", b.name)
		}
		if got := keysOf(idx.RangeSearch("", "\U0010FFFF")); got != "apple,cherry" {
			t.Errorf("%s: keys = %s, want apple,cherry", b.name, got)
		}
		if err := idx.Check(); err != nil {
			t.Errorf("%s: %v", b.name, err)
		}
	}
}

func TestScenarioDuplicate(t *testing.T) {
	for _, b := range backends {
		idx := b.make(t)
		insertAll(t, idx, fruits[:1])
		if err := idx.Insert("apple", "林檎"); !errors.Is(err, wordtree.ErrDuplicateKey) {
			t.Errorf("%s: expected ErrDuplicateKey, got %v", b.name, err)
		}
		if v, _ := idx.Search("apple"); v != "苹果" {
			t.Errorf("%s: value changed to %q", b.name, v)
		}
		if idx.Len() != 1 {
			t.Errorf("%s: len = %d", b.name, idx.Len())
		}
	}
}

func TestScenarioDeleteLast(t *testing.T) {
	for _, b := range backends {
		idx := b.make(t)
		insertAll(t, idx, fruits[:1])
		if err := idx.Delete("apple"); err != nil {
			t.Fatalf("%s: delete failed: %v", b.name, err)
		}
		if idx.Len() != 0 {
			t.Errorf("%s: tree should be empty", b.name)
		}
		if _, ok := idx.Search("apple"); ok {
			t.Errorf("%s: apple still found", b.name)
		}
		if err := idx.Delete("apple"); !errors.Is(err, wordtree.ErrKeyNotFound) {
			t.Errorf("%s: expected ErrKeyNotFound, got %v", b.name, err)
		}
		if err := idx.Check(); err != nil {
			t.Errorf("%s: %v", b.name, err)
		}
	}
}

func TestScenarioMalformedBulkLoad(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, b := range backends {
		idx := b.make(t)
		insertAll(t, idx, fruits)
		var before strings.Builder
		idx.Dump(&before)
		results, err := wordtree.Load(idx, strings.NewReader("INSERT\nkiwi 猕猴桃 extra\n"))
		if !errors.Is(err, wordtree.ErrMalformedBatchLine) || len(results) != 0 {
			t.Errorf("%s: expected aborted batch, got %v / %v", b.name, results, err)
		}
		var after strings.Builder
		idx.Dump(&after)
		if before.String() != after.String() {
			t.Errorf("%s: aborted batch changed the index", b.name)
		}
	}
}

// TestBackendsAgree drives both backends and google/btree with the same random
// operations and compares results, contents and ranges.
func TestBackendsAgree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	r := rand.New(rand.NewSource(4711))
	ref := gbtree.NewG(8, func(a, b wordtree.Entry) bool { return a.Key < b.Key })
	indexes := make([]wordtree.Index, len(backends))
	for i, b := range backends {
		indexes[i] = b.make(t)
	}
	word := func() string {
		return strconv.FormatInt(int64(r.Intn(300)), 36)
	}
	for step := 0; step < 2000; step++ {
		key := word()
		_, present := ref.Get(wordtree.Entry{Key: key})
		insert := r.Intn(2) == 0
		if insert && !present {
			ref.ReplaceOrInsert(wordtree.Entry{Key: key, Value: key})
		} else if !insert && present {
			ref.Delete(wordtree.Entry{Key: key})
		}
		for i, idx := range indexes {
			var err error
			if insert {
				err = idx.Insert(key, key)
			} else {
				err = idx.Delete(key)
			}
			if (err == nil) == (insert == present) {
				t.Fatalf("step %d, %s: unexpected result %v (insert=%v, present=%v)",
					step, backends[i].name, err, insert, present)
			}
		}
		if step%50 != 0 {
			continue
		}
		low, high := word(), word()
		var want []wordtree.Entry
		ref.AscendGreaterOrEqual(wordtree.Entry{Key: low}, func(e wordtree.Entry) bool {
			if e.Key > high {
				return false
			}
			want = append(want, e)
			return true
		})
		for i, idx := range indexes {
			if err := idx.Check(); err != nil {
				t.Fatalf("step %d, %s: %v", step, backends[i].name, err)
			}
			if idx.Len() != ref.Len() {
				t.Fatalf("step %d, %s: len %d, want %d", step, backends[i].name, idx.Len(), ref.Len())
			}
			if got := idx.RangeSearch(low, high); keysOf(got) != keysOf(want) {
				t.Fatalf("step %d, %s: range [%s,%s] = %s, want %s", step, backends[i].name,
					low, high, keysOf(got), keysOf(want))
			}
		}
	}
}
