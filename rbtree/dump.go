package rbtree

import (
	"bufio"
	"fmt"
	"io"

	"github.com/npillmayer/wordtree"
)

// Visit describes a node position during a pre-order walk.
// Level is the depth, starting with 0 at the root; Child is 0 for a left and 1
// for a right child (0 for the root). Nil positions are sentinel leaf edges.
type Visit struct {
	Level int
	Child int
	Entry wordtree.Entry
	Color Color
	Nil   bool
}

// Walk visits every node of t in pre-order, including the sentinel at every leaf
// edge. An empty tree yields a single Nil visit. Walk stops early if fn returns
// false.
func (t *Tree) Walk(fn func(v Visit) bool) {
	if fn == nil {
		return
	}
	if t.IsEmpty() {
		fn(Visit{Nil: true, Color: Black})
		return
	}
	t.walkNode(t.root, 0, 0, fn)
}

func (t *Tree) walkNode(x *node, level, child int, fn func(v Visit) bool) bool {
	if x == t.sentinel {
		return fn(Visit{Level: level, Child: child, Color: Black, Nil: true})
	}
	if !fn(Visit{Level: level, Child: child, Entry: x.entry(), Color: x.color}) {
		return false
	}
	if !t.walkNode(x.link[left], level+1, left, fn) {
		return false
	}
	return t.walkNode(x.link[right], level+1, right, fn)
}

// String formats v as a dump line, without line terminator.
func (v Visit) String() string {
	if v.Nil {
		return fmt.Sprintf("level=%d child=%d null", v.Level, v.Child)
	}
	return fmt.Sprintf("level=%d child=%d %s(%s)", v.Level, v.Child, v.Entry.Key, v.Color)
}

// Dump writes one line per node in pre-order:
//
//	level=<L> child=<C> <key>(<RED|BLACK>)
//
// with sentinel positions written as "level=<L> child=<C> null".
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
