package btree

import (
	"strings"

	"github.com/npillmayer/wordtree"
)

// node is a B-tree page. Leaves carry no children; an inner node with n entries
// carries n+1 children, where children[i] holds the keys between entries[i-1]
// and entries[i].
type node struct {
	entries  []wordtree.Entry
	children []*node
	leaf     bool
}

func newLeaf() *node {
	return &node{leaf: true}
}

// find returns the position of the first entry with a key >= key, and whether
// that entry matches key exactly.
func (n *node) find(key string) (int, bool) {
	lo, hi := 0, len(n.entries)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if n.entries[m].Key < key {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo, lo < len(n.entries) && n.entries[lo].Key == key
}

func (n *node) keys() []string {
	keys := make([]string, len(n.entries))
	for i, e := range n.entries {
		keys[i] = e.Key
	}
	return keys
}

// path formats the keys of n as "/k1/k2/.../", or "//" for an empty node.
func (n *node) path() string {
	if len(n.entries) == 0 {
		return "//"
	}
	return "/" + strings.Join(n.keys(), "/") + "/"
}

func (n *node) first() *node {
	for !n.leaf {
		n = n.children[0]
	}
	return n
}

func (n *node) last() *node {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n
}

// minEntry returns the smallest entry in the subtree of n, which must not be empty.
func (n *node) minEntry() wordtree.Entry {
	leaf := n.first()
	assert(len(leaf.entries) > 0, "minEntry of empty subtree")
	return leaf.entries[0]
}

// maxEntry returns the largest entry in the subtree of n, which must not be empty.
func (n *node) maxEntry() wordtree.Entry {
	leaf := n.last()
	assert(len(leaf.entries) > 0, "maxEntry of empty subtree")
	return leaf.entries[len(leaf.entries)-1]
}
