package btree

import "fmt"

const (
	// DefaultDegree is the minimum degree used when a configuration leaves it unset.
	DefaultDegree = 10
	// MinDegree is the smallest minimum degree a B-tree can be built with.
	MinDegree = 2
	// MaxDegree caps node size; larger nodes degrade into linear lists.
	MaxDegree = 1 << 12
)

// Config configures a B-tree.
type Config struct {
	// Degree is the minimum degree t. Nodes hold at most 2t-1 entries and,
	// except for the root, at least t-1. Zero selects DefaultDegree.
	Degree int
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree %d is less than %d", ErrInvalidConfig, cfg.Degree, MinDegree)
	}
	if cfg.Degree > MaxDegree {
		return fmt.Errorf("%w: degree %d exceeds %d", ErrInvalidConfig, cfg.Degree, MaxDegree)
	}
	return nil
}

func (cfg Config) maxEntries() int {
	return 2*cfg.Degree - 1
}

func (cfg Config) minEntries() int {
	return cfg.Degree - 1
}
