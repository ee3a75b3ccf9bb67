/*
Package wordtree implements an ordered dictionary index for bilingual word lists.

Wordtree

A word index maps unique keys (English words) to values (translations) and keeps
its entries ordered by key. Clients look up single words, ask for all words in a
closed range [low, high], add and remove words one at a time, or feed whole batches
of operations read from a text file.

Two interchangeable backends implement the contract of interface Index:

  - package rbtree provides a red-black tree (balanced binary tree, rebalanced by
    rotations and recoloring),
  - package btree provides a B-tree of configurable minimum degree (multiway tree,
    rebalanced by splitting, merging and borrowing keys).

Both backends answer identically for any sequence of operations. They differ in
shape only, which is visible through their diagnostic dumps.

Batches

A batch is a text with a mode line followed by one operation per line:

	INSERT
	apple 苹果
	banana 香蕉

or

	DELETE
	apple

ParseBatch validates a batch completely before any operation is applied. A single
malformed line rejects the whole batch, leaving the index untouched.

Index instances are not safe for concurrent use. A single caller drives an index
and every operation runs to completion before the next one starts.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package wordtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// IndexError is an error type for the wordtree module
type IndexError string

func (e IndexError) Error() string {
	return string(e)
}

// ErrDuplicateKey is flagged when inserting a key which is already present.
// The index remains unchanged.
const ErrDuplicateKey = IndexError("wordtree: key already exists")

// ErrKeyNotFound is flagged when deleting or searching an absent key.
// The index remains unchanged.
const ErrKeyNotFound = IndexError("wordtree: key not found")

// ErrMalformedBatchLine is flagged whenever a batch line has the wrong number of
// fields or the batch mode is unknown. The whole batch is rejected.
const ErrMalformedBatchLine = IndexError("wordtree: malformed batch line")

// ErrInvariantViolation is flagged by structural checks of an index.
const ErrInvariantViolation = IndexError("wordtree: structural invariant violation")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = IndexError("wordtree: illegal arguments")
