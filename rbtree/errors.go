package rbtree

import "github.com/npillmayer/wordtree"

// Errors of this package are the errors of the shared index contract, so clients
// may match them independently of the backend.
const (
	// ErrDuplicateKey signals an insert of a key already present.
	ErrDuplicateKey = wordtree.ErrDuplicateKey
	// ErrKeyNotFound signals a delete of a key not present.
	ErrKeyNotFound = wordtree.ErrKeyNotFound
	// ErrInvariantViolation signals a broken red-black property.
	ErrInvariantViolation = wordtree.ErrInvariantViolation
	// ErrIllegalArguments signals invalid parameters, e.g. a nil tree.
	ErrIllegalArguments = wordtree.ErrIllegalArguments
)
