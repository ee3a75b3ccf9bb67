package btree

import (
	"errors"

	"github.com/npillmayer/wordtree"
)

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
)

// Index errors are shared with the other backends, so callers may test for them
// with errors.Is independently of the tree kind.
const (
	ErrDuplicateKey       = wordtree.ErrDuplicateKey
	ErrKeyNotFound        = wordtree.ErrKeyNotFound
	ErrInvariantViolation = wordtree.ErrInvariantViolation
	ErrIllegalArguments   = wordtree.ErrIllegalArguments
)
