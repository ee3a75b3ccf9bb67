package rbtree

import (
	"fmt"

	"github.com/npillmayer/wordtree"
)

// Tree is a red-black tree mapping words to translations.
// It implements interface wordtree.Index.
//
// The zero value is an empty tree ready to use. A Tree must not be copied
// after first use and is not safe for concurrent use.
type Tree struct {
	root     *node
	sentinel *node // black terminal node of every leaf edge; parent of root
	size     int
}

var _ wordtree.Index = (*Tree)(nil)

// New creates an empty tree.
func New() *Tree {
	t := &Tree{}
	t.lazyInit()
	return t
}

func (t *Tree) lazyInit() {
	if t.sentinel != nil {
		return
	}
	z := &node{color: Black}
	z.link[left], z.link[right], z.parent = z, z, z
	t.sentinel = z
	t.root = z
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.sentinel == nil || t.root == t.sentinel
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Search returns the translation stored for key.
// Time: O(log n)
func (t *Tree) Search(key string) (string, bool) {
	if x := t.search(key); x != nil {
		return x.value, true
	}
	return "", false
}

// search returns the node holding key, or nil if key is not present.
func (t *Tree) search(key string) *node {
	if t.IsEmpty() {
		return nil
	}
	x := t.root
	for x != t.sentinel && key != x.key {
		if key < x.key {
			x = x.link[left]
		} else {
			x = x.link[right]
		}
	}
	if x == t.sentinel {
		return nil
	}
	return x
}

// Insert adds a new entry. If key is already present, the tree is left unchanged
// and Insert returns an error wrapping ErrDuplicateKey.
// Time: O(log n)
func (t *Tree) Insert(key, value string) error {
	if t == nil {
		return ErrIllegalArguments
	}
	t.lazyInit()
	y := t.sentinel // parent of the new node
	x := t.root
	for x != t.sentinel {
		y = x
		if key == x.key {
			T().Infof("rbtree: insert rejected, %q already exists", key)
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		} else if key < x.key {
			x = x.link[left]
		} else {
			x = x.link[right]
		}
	}
	z := &node{
		key:    key,
		value:  value,
		color:  Red,
		parent: y,
	}
	z.link[left], z.link[right] = t.sentinel, t.sentinel
	if y == t.sentinel {
		t.root = z
	} else if key < y.key {
		y.link[left] = z
	} else {
		y.link[right] = z
	}
	t.size++
	t.insertFixup(z)
	return nil
}

// insertFixup restores the red-black properties after z has been inserted as a
// red leaf. The only property which may be broken is "no red node has a red
// child", between z and its parent.
func (t *Tree) insertFixup(z *node) {
	for z.parent.color == Red {
		p := z.parent
		g := p.parent // exists and is black, as p is red and not the root
		d := p.dir()
		uncle := g.link[1-d]
		if uncle.color == Red {
			T().Debugf("rbtree: insert case 1 at %q, recolor", z.key)
			p.color, uncle.color, g.color = Black, Black, Red
			z = g
			continue
		}
		if z == p.link[1-d] {
			T().Debugf("rbtree: insert case 2 at %q, straighten", z.key)
			z = p
			t.rotate(z, d)
			p = z.parent
		}
		T().Debugf("rbtree: insert case 3 at %q, rotate grandparent", z.key)
		p.color = Black
		g.color = Red
		t.rotate(g, 1-d)
	}
	t.root.color = Black
}

// Delete removes the entry for key. If key is not present, the tree is left
// unchanged and Delete returns an error wrapping ErrKeyNotFound.
// Time: O(log n)
func (t *Tree) Delete(key string) error {
	if t == nil {
		return ErrIllegalArguments
	}
	z := t.search(key)
	if z == nil {
		T().Infof("rbtree: delete rejected, %q not found", key)
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	y := z // node physically removed from its position
	removedColor := y.color
	var x *node // node moving into y's position
	switch {
	case z.link[left] == t.sentinel:
		x = z.link[right]
		t.transplant(z, x)
	case z.link[right] == t.sentinel:
		x = z.link[left]
		t.transplant(z, x)
	default:
		y = t.minimum(z.link[right])
		removedColor = y.color
		x = y.link[right]
		if y.parent == z {
			x.parent = y // x may be the sentinel
		} else {
			t.transplant(y, x)
			y.link[right] = z.link[right]
			y.link[right].parent = y
		}
		t.transplant(z, y)
		y.link[left] = z.link[left]
		y.link[left].parent = y
		y.color = z.color
	}
	t.size--
	if removedColor == Black {
		t.deleteFixup(x)
	}
	t.sentinel.parent = t.sentinel
	z.link[left], z.link[right], z.parent = nil, nil, nil
	return nil
}

// deleteFixup restores the red-black properties after a black node has been
// removed. x carries an extra black which is moved up the tree until it can be
// absorbed by a red node, by a rotation, or by the root.
func (t *Tree) deleteFixup(x *node) {
	for x != t.root && x.color == Black {
		p := x.parent
		d := x.dir()
		w := p.link[1-d] // sibling, never the sentinel here
		assert(w != t.sentinel, "rbtree: delete fixup found sentinel sibling")
		if w.color == Red {
			T().Debugf("rbtree: delete case 1 below %q, red sibling", p.key)
			w.color = Black
			p.color = Red
			t.rotate(p, d)
			w = p.link[1-d]
		}
		if w.link[left].color == Black && w.link[right].color == Black {
			T().Debugf("rbtree: delete case 2 below %q, move up", p.key)
			w.color = Red
			x = p
			continue
		}
		if w.link[1-d].color == Black {
			T().Debugf("rbtree: delete case 3 below %q, rotate sibling", p.key)
			w.link[d].color = Black
			w.color = Red
			t.rotate(w, 1-d)
			w = p.link[1-d]
		}
		T().Debugf("rbtree: delete case 4 below %q, rotate parent", p.key)
		w.color = p.color
		p.color = Black
		w.link[1-d].color = Black
		t.rotate(p, d)
		x = t.root
	}
	x.color = Black
}

// rotate rotates the subtree at x in direction d. The child of x opposite to d
// takes the place of x, and x becomes its d-child.
//
//	rotate(x, left):    x              y
//	                   / \            / \
//	                  a   y    =>    x   c
//	                     / \        / \
//	                    b   c      a   b
func (t *Tree) rotate(x *node, d int) {
	y := x.link[1-d]
	assert(y != t.sentinel, "rbtree: rotation towards sentinel")
	x.link[1-d] = y.link[d]
	if y.link[d] != t.sentinel {
		y.link[d].parent = x
	}
	y.parent = x.parent
	t.replaceChild(x.parent, x, y)
	y.link[d] = x
	x.parent = y
}

// transplant replaces the subtree at u by the subtree at v.
func (t *Tree) transplant(u, v *node) {
	t.replaceChild(u.parent, u, v)
	v.parent = u.parent
}

func (t *Tree) replaceChild(p, old, n *node) {
	if p == t.sentinel {
		t.root = n
	} else if p.link[left] == old {
		p.link[left] = n
	} else {
		p.link[right] = n
	}
}

func (t *Tree) minimum(x *node) *node {
	for x.link[left] != t.sentinel {
		x = x.link[left]
	}
	return x
}

func (t *Tree) maximum(x *node) *node {
	for x.link[right] != t.sentinel {
		x = x.link[right]
	}
	return x
}
