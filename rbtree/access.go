package rbtree

import "github.com/npillmayer/wordtree"

func (n *node) entry() wordtree.Entry {
	return wordtree.Entry{Key: n.key, Value: n.value}
}

// Min returns the entry with the smallest key.
func (t *Tree) Min() (wordtree.Entry, bool) {
	if t.IsEmpty() {
		return wordtree.Entry{}, false
	}
	return t.minimum(t.root).entry(), true
}

// Max returns the entry with the greatest key.
func (t *Tree) Max() (wordtree.Entry, bool) {
	if t.IsEmpty() {
		return wordtree.Entry{}, false
	}
	return t.maximum(t.root).entry(), true
}

// Successor returns the entry following key in key order.
// key has to be present in the tree.
func (t *Tree) Successor(key string) (wordtree.Entry, bool) {
	x := t.search(key)
	if x == nil {
		return wordtree.Entry{}, false
	}
	if x.link[right] != t.sentinel {
		return t.minimum(x.link[right]).entry(), true
	}
	y := x.parent
	for y != t.sentinel && x == y.link[right] {
		x, y = y, y.parent
	}
	if y == t.sentinel {
		return wordtree.Entry{}, false
	}
	return y.entry(), true
}

// Predecessor returns the entry preceding key in key order.
// key has to be present in the tree.
func (t *Tree) Predecessor(key string) (wordtree.Entry, bool) {
	x := t.search(key)
	if x == nil {
		return wordtree.Entry{}, false
	}
	if x.link[left] != t.sentinel {
		return t.maximum(x.link[left]).entry(), true
	}
	y := x.parent
	for y != t.sentinel && x == y.link[left] {
		x, y = y, y.parent
	}
	if y == t.sentinel {
		return wordtree.Entry{}, false
	}
	return y.entry(), true
}

// RangeSearch returns all entries with low <= key <= high, in ascending key
// order. Subtrees entirely outside the range are skipped.
func (t *Tree) RangeSearch(low, high string) []wordtree.Entry {
	if t.IsEmpty() || low > high {
		return nil
	}
	return t.collect(t.root, low, high, nil)
}

func (t *Tree) collect(x *node, low, high string, out []wordtree.Entry) []wordtree.Entry {
	if x == t.sentinel {
		return out
	}
	if low < x.key {
		out = t.collect(x.link[left], low, high, out)
	}
	if wordtree.InRange(x.key, low, high) {
		out = append(out, x.entry())
	}
	if x.key < high {
		out = t.collect(x.link[right], low, high, out)
	}
	return out
}

// ForEach walks the entries in ascending key order.
//
// Iteration stops early if fn returns false. fn must not modify the tree.
func (t *Tree) ForEach(fn func(e wordtree.Entry) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree) forEachNode(x *node, fn func(e wordtree.Entry) bool) bool {
	if x == t.sentinel {
		return true
	}
	if !t.forEachNode(x.link[left], fn) {
		return false
	}
	if !fn(x.entry()) {
		return false
	}
	return t.forEachNode(x.link[right], fn)
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
