package btree

import (
	"fmt"

	"github.com/npillmayer/wordtree"
)

// Tree is a B-tree word index. The zero value is an empty tree of
// DefaultDegree; use New to select a different degree.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	cfg    Config
	root   *node
	height int // number of node levels, 1 for a lone leaf root
	size   int
}

var _ wordtree.Index = (*Tree)(nil)

// New creates an empty B-tree with the given configuration.
func New(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree{cfg: cfg.normalized()}
	t.lazyInit()
	return t, nil
}

func (t *Tree) lazyInit() {
	if t.root == nil {
		t.cfg = t.cfg.normalized()
		t.root = newLeaf()
		t.height = 1
	}
}

// Config returns the normalized configuration of t.
func (t *Tree) Config() Config {
	if t == nil {
		return Config{}.normalized()
	}
	return t.cfg.normalized()
}

// Degree returns the minimum degree of t.
func (t *Tree) Degree() int {
	return t.Config().Degree
}

// Len returns the number of entries in t.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether t holds no entries.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of node levels of t. An empty tree has height 1,
// consisting of its (empty) leaf root.
func (t *Tree) Height() int {
	if t == nil || t.root == nil {
		return 1
	}
	return t.height
}

// Search returns the value stored with key.
func (t *Tree) Search(key string) (string, bool) {
	if t == nil || t.root == nil {
		return "", false
	}
	x := t.root
	for {
		i, found := x.find(key)
		if found {
			return x.entries[i].Value, true
		}
		if x.leaf {
			return "", false
		}
		x = x.children[i]
	}
}

// Insert adds key with value. If key is already present, Insert returns an
// error wrapping ErrDuplicateKey and leaves t unchanged.
func (t *Tree) Insert(key, value string) error {
	if t == nil {
		return ErrIllegalArguments
	}
	t.lazyInit()
	if _, found := t.Search(key); found {
		T().Infof("btree: insert rejected, %q already exists", key)
		return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
	}
	if r := t.root; len(r.entries) == t.cfg.maxEntries() {
		s := &node{children: []*node{r}}
		t.root = s
		t.height++
		t.splitChild(s, 0)
		T().Debugf("btree: root split, height is now %d", t.height)
	}
	t.insertNonFull(t.root, wordtree.Entry{Key: key, Value: value})
	t.size++
	return nil
}

// insertNonFull inserts e into the subtree of x, which must not be full.
// Full children are split before descending into them.
func (t *Tree) insertNonFull(x *node, e wordtree.Entry) {
	for {
		i, found := x.find(e.Key)
		assert(!found, "insertNonFull: duplicate key")
		if x.leaf {
			x.entries = insertAt(x.entries, i, e)
			return
		}
		if len(x.children[i].entries) == t.cfg.maxEntries() {
			t.splitChild(x, i)
			if e.Key > x.entries[i].Key {
				i++
			}
		}
		x = x.children[i]
	}
}

// splitChild splits the full child y = x.children[i] around its median entry.
// The median moves up into x at position i, the upper half of y becomes a new
// right sibling of y.
func (t *Tree) splitChild(x *node, i int) {
	deg := t.cfg.Degree
	y := x.children[i]
	assert(len(y.entries) == t.cfg.maxEntries(), "splitChild: child is not full")
	z := &node{leaf: y.leaf}
	z.entries = append(make([]wordtree.Entry, 0, t.cfg.maxEntries()), y.entries[deg:]...)
	if !y.leaf {
		z.children = append(make([]*node, 0, 2*deg), y.children[deg:]...)
		y.children = truncate(y.children, deg)
	}
	median := y.entries[deg-1]
	y.entries = truncate(y.entries, deg-1)
	x.entries = insertAt(x.entries, i, median)
	x.children = insertAt(x.children, i+1, z)
}

// Delete removes key from t. If key is absent, Delete returns an error wrapping
// ErrKeyNotFound and leaves t unchanged.
func (t *Tree) Delete(key string) error {
	if t == nil {
		return ErrIllegalArguments
	}
	t.lazyInit()
	if _, found := t.Search(key); !found {
		T().Infof("btree: delete rejected, %q not found", key)
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	t.delete(t.root, key)
	if len(t.root.entries) == 0 && !t.root.leaf {
		t.root = t.root.children[0]
		t.height--
		T().Debugf("btree: root shrunk, height is now %d", t.height)
	}
	t.size--
	return nil
}

// delete removes key from the subtree of x. x is either the root or holds at
// least t entries, which allows removing an entry from it without underflow.
// Every step either finishes in a leaf or moves to a child that again holds at
// least t entries.
func (t *Tree) delete(x *node, key string) {
	deg := t.cfg.Degree
	for {
		i, found := x.find(key)
		if x.leaf {
			assert(found, "delete: key vanished")
			x.entries = removeRange(x.entries, i, i+1)
			return
		}
		if found {
			y, z := x.children[i], x.children[i+1]
			switch {
			case len(y.entries) >= deg: // replace by predecessor
				pred := y.maxEntry()
				x.entries[i] = pred
				x, key = y, pred.Key
			case len(z.entries) >= deg: // replace by successor
				succ := z.minEntry()
				x.entries[i] = succ
				x, key = z, succ.Key
			default: // key moves down into the merged child
				t.merge(x, i)
				x = y
			}
			continue
		}
		if len(x.children[i].entries) < deg {
			x = t.fill(x, i)
		} else {
			x = x.children[i]
		}
	}
}

// fill makes sure the child x.children[i], which holds only t-1 entries, gains
// an entry before deletion descends into it. It returns the node to continue with.
func (t *Tree) fill(x *node, i int) *node {
	deg := t.cfg.Degree
	if i > 0 && len(x.children[i-1].entries) >= deg {
		t.borrowFromLeft(x, i)
		return x.children[i]
	}
	if i < len(x.entries) && len(x.children[i+1].entries) >= deg {
		t.borrowFromRight(x, i)
		return x.children[i]
	}
	if i < len(x.entries) {
		t.merge(x, i)
		return x.children[i]
	}
	t.merge(x, i-1)
	return x.children[i-1]
}

// borrowFromLeft rotates an entry from the left sibling of x.children[i] through
// x into x.children[i].
func (t *Tree) borrowFromLeft(x *node, i int) {
	c, l := x.children[i], x.children[i-1]
	last := len(l.entries) - 1
	c.entries = insertAt(c.entries, 0, x.entries[i-1])
	x.entries[i-1] = l.entries[last]
	l.entries = truncate(l.entries, last)
	if !c.leaf {
		lc := len(l.children) - 1
		c.children = insertAt(c.children, 0, l.children[lc])
		l.children = truncate(l.children, lc)
	}
}

// borrowFromRight rotates an entry from the right sibling of x.children[i]
// through x into x.children[i].
func (t *Tree) borrowFromRight(x *node, i int) {
	c, r := x.children[i], x.children[i+1]
	c.entries = append(c.entries, x.entries[i])
	x.entries[i] = r.entries[0]
	r.entries = removeRange(r.entries, 0, 1)
	if !c.leaf {
		c.children = append(c.children, r.children[0])
		r.children = removeRange(r.children, 0, 1)
	}
}

// merge joins x.children[i], the separator x.entries[i] and x.children[i+1]
// into x.children[i]. Both children must hold t-1 entries.
func (t *Tree) merge(x *node, i int) {
	y, z := x.children[i], x.children[i+1]
	assert(len(y.entries)+len(z.entries)+1 <= t.cfg.maxEntries(), "merge: children too large")
	y.entries = append(y.entries, x.entries[i])
	y.entries = append(y.entries, z.entries...)
	if !y.leaf {
		y.children = append(y.children, z.children...)
	}
	x.entries = removeRange(x.entries, i, i+1)
	x.children = removeRange(x.children, i+1, i+2)
	T().Debugf("btree: merged children %d and %d", i, i+1)
}
