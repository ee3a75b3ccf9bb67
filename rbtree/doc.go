/*
Package rbtree implements a word index as a red-black tree.

The tree is a binary search tree keyed by string. Every node is colored red or
black, and insertion and deletion restore the red-black properties by recoloring
and rotating nodes on the path to the root:

  - the root is black,
  - no red node has a red child,
  - every path from a node to a leaf edge contains the same number of black nodes.

Leaf edges do not point to nil but to a black sentinel node, owned by the tree and
shared by all leaves. The sentinel carries no entry and is the parent of the root.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
