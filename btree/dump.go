package btree

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/wordtree"
)

// Visit describes a node during a pre-order walk. Level is the depth, starting
// with 0 at the root; Child is the index of the node within its parent (0 for
// the root).
type Visit struct {
	Level   int
	Child   int
	Entries []wordtree.Entry
	Leaf    bool
}

// Keys returns the keys of the visited node.
func (v Visit) Keys() []string {
	keys := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		keys[i] = e.Key
	}
	return keys
}

// String formats v as a dump line, without line terminator.
func (v Visit) String() string {
	n := node{entries: v.Entries}
	return fmt.Sprintf("level=%d child=%d %s", v.Level, v.Child, n.path())
}

// Walk visits every node of t in pre-order. An empty tree yields a single visit
// of its empty root. Walk stops early if fn returns false.
//
// The entries of a visit must not be modified.
func (t *Tree) Walk(fn func(v Visit) bool) {
	if fn == nil {
		return
	}
	if t == nil || t.root == nil {
		fn(Visit{Leaf: true})
		return
	}
	walkNode(t.root, 0, 0, fn)
}

func walkNode(x *node, level, child int, fn func(v Visit) bool) bool {
	if !fn(Visit{Level: level, Child: child, Entries: x.entries, Leaf: x.leaf}) {
		return false
	}
	for i, c := range x.children {
		if !walkNode(c, level+1, i, fn) {
			return false
		}
	}
	return true
}

// Dump writes one line per node in pre-order:
//
//	level=<L> child=<C> /<k1>/<k2>/.../
//
// An empty tree is dumped as "level=0 child=0 //".
func (t *Tree) Dump(w io.Writer) error {
	if t == nil || w == nil {
		return ErrIllegalArguments
	}
	bw := bufio.NewWriter(w)
	var err error
	t.Walk(func(v Visit) bool {
		_, err = fmt.Fprintln(bw, v.String())
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}
