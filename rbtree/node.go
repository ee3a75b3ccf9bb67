package rbtree

// Color is the color of a tree node.
type Color uint8

// Node colors. The zero value is Black, which is the color of the sentinel.
const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "RED"
	}
	return "BLACK"
}

// Directions index the links of a node.
const (
	left  = 0
	right = 1
)

type node struct {
	key    string
	value  string
	color  Color
	link   [2]*node // left and right child; owned by this node
	parent *node    // back-reference, not owning
}

// dir returns the side of its parent n is attached to.
func (n *node) dir() int {
	if n == n.parent.link[left] {
		return left
	}
	return right
}
