package btree

import "fmt"

// Check validates node occupancy, key order across the whole tree, child
// counts, the uniform depth of leaves and the entry count.
//
// Check is meant for tests and diagnostics; it visits every node.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: uninitialized tree holds entries", ErrInvariantViolation)
		}
		return nil
	}
	if err := t.cfg.validate(); err != nil {
		return err
	}
	if !t.root.leaf && len(t.root.entries) == 0 {
		return fmt.Errorf("%w: inner root without entries", ErrInvariantViolation)
	}
	c := checker{cfg: t.cfg.normalized(), leafDepth: -1}
	if err := c.checkNode(t.root, 0, nil, nil); err != nil {
		return err
	}
	if c.leafDepth+1 != t.height {
		return fmt.Errorf("%w: height is %d, leaves are at depth %d", ErrInvariantViolation,
			t.height, c.leafDepth)
	}
	if c.count != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariantViolation, c.count, t.size)
	}
	return nil
}

type checker struct {
	cfg       Config
	leafDepth int
	count     int
}

// checkNode checks the subtree of x, whose keys must lie strictly between the
// optional bounds lo and hi.
func (c *checker) checkNode(x *node, depth int, lo, hi *string) error {
	n := len(x.entries)
	if n > c.cfg.maxEntries() {
		return fmt.Errorf("%w: node %s holds %d entries, maximum is %d", ErrInvariantViolation,
			x.path(), n, c.cfg.maxEntries())
	}
	if depth > 0 && n < c.cfg.minEntries() {
		return fmt.Errorf("%w: node %s holds %d entries, minimum is %d", ErrInvariantViolation,
			x.path(), n, c.cfg.minEntries())
	}
	for i, e := range x.entries {
		if i > 0 && x.entries[i-1].Key >= e.Key {
			return fmt.Errorf("%w: keys of node %s out of order", ErrInvariantViolation, x.path())
		}
		if (lo != nil && e.Key <= *lo) || (hi != nil && e.Key >= *hi) {
			return fmt.Errorf("%w: key %q of node %s violates separator bounds", ErrInvariantViolation,
				e.Key, x.path())
		}
	}
	c.count += n
	if x.leaf {
		if len(x.children) != 0 {
			return fmt.Errorf("%w: leaf %s has children", ErrInvariantViolation, x.path())
		}
		if c.leafDepth < 0 {
			c.leafDepth = depth
		} else if c.leafDepth != depth {
			return fmt.Errorf("%w: leaf %s at depth %d, expected %d", ErrInvariantViolation,
				x.path(), depth, c.leafDepth)
		}
		return nil
	}
	if len(x.children) != n+1 {
		return fmt.Errorf("%w: node %s has %d entries but %d children", ErrInvariantViolation,
			x.path(), n, len(x.children))
	}
	for i, child := range x.children {
		if child == nil {
			return fmt.Errorf("%w: node %s has nil child %d", ErrInvariantViolation, x.path(), i)
		}
		clo, chi := lo, hi
		if i > 0 {
			clo = &x.entries[i-1].Key
		}
		if i < n {
			chi = &x.entries[i].Key
		}
		if err := c.checkNode(child, depth+1, clo, chi); err != nil {
			return err
		}
	}
	return nil
}
