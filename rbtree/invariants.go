package rbtree

import "fmt"

// Check validates the red-black properties, the search tree order, the parent
// back-references and the entry count.
//
// Check is meant for tests and diagnostics; it visits every node.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.sentinel == nil {
		if t.root != nil || t.size != 0 {
			return fmt.Errorf("%w: uninitialized tree holds nodes", ErrInvariantViolation)
		}
		return nil
	}
	if t.sentinel.color != Black {
		return fmt.Errorf("%w: sentinel is not black", ErrInvariantViolation)
	}
	if t.root.color != Black {
		return fmt.Errorf("%w: root %q is not black", ErrInvariantViolation, t.root.key)
	}
	if t.root != t.sentinel && t.root.parent != t.sentinel {
		return fmt.Errorf("%w: parent of root is not the sentinel", ErrInvariantViolation)
	}
	count, _, err := t.checkNode(t.root, bound{}, bound{})
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolation, count, t.size)
	}
	return nil
}

// bound is an optional exclusive key bound of a subtree.
type bound struct {
	key string
	set bool
}

// checkNode returns the number of entries and the black height of the subtree
// at x, counting black nodes below x down to the sentinel.
func (t *Tree) checkNode(x *node, lo, hi bound) (count int, blackHeight int, err error) {
	if x == t.sentinel {
		return 0, 0, nil
	}
	if x == nil {
		return 0, 0, fmt.Errorf("%w: nil link", ErrInvariantViolation)
	}
	if lo.set && x.key <= lo.key {
		return 0, 0, fmt.Errorf("%w: key %q not greater than %q", ErrInvariantViolation, x.key, lo.key)
	}
	if hi.set && x.key >= hi.key {
		return 0, 0, fmt.Errorf("%w: key %q not less than %q", ErrInvariantViolation, x.key, hi.key)
	}
	var heights [2]int
	for d, child := range x.link {
		if child != t.sentinel {
			if child.parent != x {
				return 0, 0, fmt.Errorf("%w: broken parent link below %q", ErrInvariantViolation, x.key)
			}
			if x.color == Red && child.color == Red {
				return 0, 0, fmt.Errorf("%w: red node %q has red child %q", ErrInvariantViolation,
					x.key, child.key)
			}
		}
		childLo, childHi := lo, hi
		if d == left {
			childHi = bound{key: x.key, set: true}
		} else {
			childLo = bound{key: x.key, set: true}
		}
		n, h, err := t.checkNode(child, childLo, childHi)
		if err != nil {
			return 0, 0, err
		}
		count += n
		if child.color == Black {
			h++
		}
		heights[d] = h
	}
	if heights[left] != heights[right] {
		return 0, 0, fmt.Errorf("%w: black heights differ below %q (%d != %d)", ErrInvariantViolation,
			x.key, heights[left], heights[right])
	}
	return count + 1, heights[left], nil
}
