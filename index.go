package wordtree

import (
	"fmt"
	"io"
)

// Entry is a (key, value) pair of an index: an English word and its translation.
type Entry struct {
	Key   string
	Value string
}

func (e Entry) String() string {
	return fmt.Sprintf("%s: %s", e.Key, e.Value)
}

// Index is an ordered, string-keyed map with point and range lookup.
//
// Keys are unique and ordered lexicographically by Go string comparison.
// Implementations report failures as returned errors and never panic for any
// input; ErrDuplicateKey and ErrKeyNotFound leave the index unchanged.
type Index interface {
	// Search returns the value stored for key, if any.
	Search(key string) (string, bool)
	// Insert adds a new entry. Returns ErrDuplicateKey if key is already present.
	Insert(key, value string) error
	// Delete removes the entry for key. Returns ErrKeyNotFound if key is absent.
	Delete(key string) error
	// RangeSearch returns all entries with low <= key <= high in ascending key order.
	// The result is empty if low > high or no key falls into the range.
	RangeSearch(low, high string) []Entry
	// BulkLoad applies a validated batch and reports one result per operation.
	BulkLoad(batch *Batch) []Result
	// Dump writes a pre-order diagnostic listing of the index structure.
	Dump(w io.Writer) error
	// Len returns the number of entries.
	Len() int
	// Check validates the structural invariants of the index.
	Check() error
}

// InRange reports whether low <= key <= high.
func InRange(key, low, high string) bool {
	return low <= key && key <= high
}
