/*
Package btree implements a word index as a multiway search tree (B-tree).

The tree is parameterized by a minimum degree t. Every node other than the root
holds between t-1 and 2t-1 entries in ascending key order, an inner node with n
entries has n+1 children, and all leaves sit at the same depth. Entries live in
inner nodes as well as in leaves.

Insertion splits full nodes preemptively on the way down, so an insert never has
to walk back up the tree. Deletion makes sure the child it descends into holds at
least t entries, borrowing from a sibling or merging with one where necessary,
and continues in the merged node. The root is the only node allowed to shrink
below t-1 entries; it is replaced by its single child once it runs empty.

An empty tree consists of an empty leaf root.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

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
