package wordtree

import (
	"context"
	"fmt"
	"time"

	"github.com/guiguan/caster"
)

// Progress is a timing record for a block of batch operations.
// Elapsed covers the operations since the previous record only.
type Progress struct {
	Done    int           // operations applied so far
	Total   int           // operations in the batch
	Elapsed time.Duration // time spent on the current block
}

func (p Progress) String() string {
	return fmt.Sprintf("%d/%d operations, block took %s", p.Done, p.Total, p.Elapsed)
}

// Monitor broadcasts Progress records of running batches to any number of
// subscribers. Publishing blocks while a subscriber's buffer is full, so
// subscribers should drain their channels.
type Monitor struct {
	cast *caster.Caster
}

// NewMonitor creates a monitor. Clients must call Close when done.
func NewMonitor() *Monitor {
	return &Monitor{
		cast: caster.New(nil), // we will broadcast progress records of batches
	}
}

// Subscribe returns a channel receiving progress records. capacity is the
// buffer size of the subscription. The channel is closed when ctx is done or
// the monitor is closed.
func (m *Monitor) Subscribe(ctx context.Context, capacity uint) (<-chan Progress, error) {
	if m == nil || m.cast == nil {
		return nil, ErrIllegalArguments
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sub, ok := m.cast.Sub(ctx, capacity)
	if !ok {
		return nil, fmt.Errorf("%w: monitor is closed", ErrIllegalArguments)
	}
	out := make(chan Progress, capacity)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub:
				if !ok {
					return
				}
				p, isProgress := msg.(Progress)
				if !isProgress {
					continue
				}
				select {
				case out <- p:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func (m *Monitor) publish(p Progress) {
	if m == nil || m.cast == nil {
		return
	}
	T().Debugf("progress: %s", p)
	m.cast.Pub(p)
}

// Close stops the monitor and ends all subscriptions.
func (m *Monitor) Close() {
	if m == nil || m.cast == nil {
		return
	}
	m.cast.Close()
}
