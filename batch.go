package wordtree

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Mode is the kind of operations a batch carries.
type Mode int8

// Batch modes, as named on the first line of a batch.
const (
	ModeInsert Mode = iota
	ModeDelete
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeDelete:
		return "DELETE"
	}
	return fmt.Sprintf("Mode(%d)", int8(m))
}

// ParseMode maps a batch header to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.TrimSpace(s) {
	case "INSERT":
		return ModeInsert, true
	case "DELETE":
		return ModeDelete, true
	}
	return 0, false
}

// Op is a single batch operation. Value is used by insert operations only.
type Op struct {
	Mode  Mode
	Key   string
	Value string
	Line  int // 1-based line number in the batch source, 0 if synthesized
}

// String returns op in batch line format.
func (op Op) String() string {
	if op.Mode == ModeInsert {
		return op.Key + " " + op.Value
	}
	return op.Key
}

// Batch is a validated sequence of operations of a single mode.
type Batch struct {
	Mode Mode
	Ops  []Op
}

// Len returns the number of operations in b.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Ops)
}

// NewBatch creates an empty batch for mode m.
func NewBatch(m Mode) *Batch {
	return &Batch{Mode: m}
}

// Add appends an operation to b. For delete batches value is ignored.
func (b *Batch) Add(key, value string) *Batch {
	op := Op{Mode: b.Mode, Key: key}
	if b.Mode == ModeInsert {
		op.Value = value
	}
	b.Ops = append(b.Ops, op)
	return b
}

// Result is the outcome of applying a single batch operation.
// Err is nil on success, ErrDuplicateKey or ErrKeyNotFound otherwise.
type Result struct {
	Op  Op
	Err error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// CountFailures returns the number of unsuccessful results.
func CountFailures(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

const utf8BOM = "\ufeff"

// maxLineLength bounds a single batch line.
const maxLineLength = 1 << 20

// ParseBatch reads a batch from r.
//
// The first non-blank line names the mode, "INSERT" or "DELETE". Every following
// non-blank line holds one operation: "<word> <translation>" for inserts,
// "<word>" for deletes. Fields are separated by white space.
// A line with the wrong number of fields, or an unknown mode, rejects the
// whole batch with an error wrapping ErrMalformedBatchLine; no partial batch
// is returned. Empty input yields an empty insert batch.
func ParseBatch(r io.Reader) (*Batch, error) {
	if r == nil {
		return nil, ErrIllegalArguments
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	var batch *Batch
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if lineno == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if batch == nil {
			mode, ok := ParseMode(line)
			if !ok {
				T().Errorf("batch rejected: unknown mode %q in line %d", strings.TrimSpace(line), lineno)
				return nil, fmt.Errorf("%w: line %d: unknown mode %q", ErrMalformedBatchLine,
					lineno, strings.TrimSpace(line))
			}
			batch = NewBatch(mode)
			continue
		}
		want := 1
		if batch.Mode == ModeInsert {
			want = 2
		}
		if len(fields) != want {
			T().Errorf("batch rejected: line %d has %d fields, %s needs %d", lineno, len(fields),
				batch.Mode, want)
			return nil, fmt.Errorf("%w: line %d: %d fields, want %d", ErrMalformedBatchLine,
				lineno, len(fields), want)
		}
		op := Op{Mode: batch.Mode, Key: fields[0], Line: lineno}
		if want == 2 {
			op.Value = fields[1]
		}
		batch.Ops = append(batch.Ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if batch == nil {
		batch = NewBatch(ModeInsert)
	}
	T().Debugf("parsed %s batch with %d operations", batch.Mode, len(batch.Ops))
	return batch, nil
}

// ProgressInterval is the default number of operations between two progress
// records published by Apply.
const ProgressInterval = 100

// ApplyOption configures Apply.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	monitor  *Monitor
	interval int
}

// WithMonitor lets Apply publish timing records to m.
func WithMonitor(m *Monitor) ApplyOption {
	return func(cfg *applyConfig) {
		cfg.monitor = m
	}
}

// WithInterval sets the number of operations between two progress records.
// Values below 1 are ignored.
func WithInterval(n int) ApplyOption {
	return func(cfg *applyConfig) {
		if n > 0 {
			cfg.interval = n
		}
	}
}

// Apply performs the operations of batch on idx, in order, and returns one
// result per operation. Failing operations (duplicates, missing keys) do not
// stop the batch.
//
// If a monitor is configured, Apply publishes a Progress record after every
// interval operations and after the last one.
func Apply(idx Index, batch *Batch, opts ...ApplyOption) []Result {
	if idx == nil || batch == nil {
		return nil
	}
	cfg := applyConfig{interval: ProgressInterval}
	for _, opt := range opts {
		opt(&cfg)
	}
	results := make([]Result, 0, len(batch.Ops))
	total := len(batch.Ops)
	start := time.Now()
	for i, op := range batch.Ops {
		var err error
		switch op.Mode {
		case ModeInsert:
			err = idx.Insert(op.Key, op.Value)
		case ModeDelete:
			err = idx.Delete(op.Key)
		default:
			err = fmt.Errorf("%w: unknown mode %d", ErrIllegalArguments, op.Mode)
		}
		if err != nil {
			T().Infof("batch op %q: %v", op.String(), err)
		}
		results = append(results, Result{Op: op, Err: err})
		done := i + 1
		if cfg.monitor != nil && (done%cfg.interval == 0 || done == total) {
			cfg.monitor.publish(Progress{Done: done, Total: total, Elapsed: time.Since(start)})
			start = time.Now()
		}
	}
	return results
}

// Load parses a batch from r and applies it to idx.
// If the batch is malformed, Load returns a nil result and idx is not touched.
func Load(idx Index, r io.Reader, opts ...ApplyOption) ([]Result, error) {
	if idx == nil {
		return nil, ErrIllegalArguments
	}
	batch, err := ParseBatch(r)
	if err != nil {
		return nil, err
	}
	return Apply(idx, batch, opts...), nil
}
