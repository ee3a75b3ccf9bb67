package btree

import "github.com/npillmayer/wordtree"

// Min returns the entry with the smallest key.
func (t *Tree) Min() (wordtree.Entry, bool) {
	if t.IsEmpty() {
		return wordtree.Entry{}, false
	}
	return t.root.minEntry(), true
}

// Max returns the entry with the greatest key.
func (t *Tree) Max() (wordtree.Entry, bool) {
	if t.IsEmpty() {
		return wordtree.Entry{}, false
	}
	return t.root.maxEntry(), true
}

// RangeSearch returns all entries with low <= key <= high, in ascending key
// order. Children whose key interval lies outside the range are skipped.
func (t *Tree) RangeSearch(low, high string) []wordtree.Entry {
	if t.IsEmpty() || low > high {
		return nil
	}
	out, _ := t.collect(t.root, low, high, nil)
	return out
}

// collect appends the in-range entries of the subtree of x to out. It reports
// false as soon as an entry greater than high has been seen.
func (t *Tree) collect(x *node, low, high string, out []wordtree.Entry) ([]wordtree.Entry, bool) {
	i, _ := x.find(low)
	more := true
	for ; i < len(x.entries); i++ {
		if !x.leaf {
			if out, more = t.collect(x.children[i], low, high, out); !more {
				return out, false
			}
		}
		if x.entries[i].Key > high {
			return out, false
		}
		out = append(out, x.entries[i])
	}
	if !x.leaf {
		return t.collect(x.children[len(x.entries)], low, high, out)
	}
	return out, true
}

// ForEach walks the entries in ascending key order.
//
// Iteration stops early if fn returns false. fn must not modify the tree.
func (t *Tree) ForEach(fn func(e wordtree.Entry) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	forEachNode(t.root, fn)
}

func forEachNode(x *node, fn func(e wordtree.Entry) bool) bool {
	for i, e := range x.entries {
		if !x.leaf && !forEachNode(x.children[i], fn) {
			return false
		}
		if !fn(e) {
			return false
		}
	}
	if !x.leaf {
		return forEachNode(x.children[len(x.entries)], fn)
	}
	return true
}

// Keys returns all keys in ascending order.
func (t *Tree) Keys() []string {
	keys := make([]string, 0, t.Len())
	t.ForEach(func(e wordtree.Entry) bool {
		keys = append(keys, e.Key)
		return true
	})
	return keys
}

// BulkLoad applies the operations of batch in order and reports one result per
// operation.
func (t *Tree) BulkLoad(batch *wordtree.Batch) []wordtree.Result {
	return wordtree.Apply(t, batch)
}
