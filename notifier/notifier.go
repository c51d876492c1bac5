// Package notifier contains the interchangeable implementations of
// contract.Notifier. Timed wraps another notifier by composition instead of
// extending it, so any notifier can be instrumented.
package notifier

import (
	"context"
	"fmt"
	"time"

	"solid-lab/contract"
	"solid-lab/errors"
)

// PopToken is the fixed notification emitted by Pop.
const PopToken = "Pop!"

// Pop writes the fixed notification token.
type Pop struct {
	sink contract.Sink
}

func NewPop(sink contract.Sink) (*Pop, error) {
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	return &Pop{sink: sink}, nil
}

func (n *Pop) Notify(ctx context.Context) error {
	return n.sink.WriteLine(ctx, PopToken)
}

// StampLayout formats instrumentation timestamps with millisecond precision.
const StampLayout = "2006-01-02 15:04:05.000"

// Timed surrounds the wrapped notifier's output with started/finished
// timestamp lines. The wrapped behavior itself is delegated unmodified.
type Timed struct {
	wrapped contract.Notifier
	sink    contract.Sink

	// now is swapped in tests for a deterministic clock.
	now func() time.Time
}

func NewTimed(wrapped contract.Notifier, sink contract.Sink) (*Timed, error) {
	if wrapped == nil {
		return nil, errors.ErrNilWrapped
	}
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	return &Timed{wrapped: wrapped, sink: sink, now: time.Now}, nil
}

func (n *Timed) Notify(ctx context.Context) error {
	start := n.now()
	if err := n.sink.WriteLine(ctx, "started at "+start.Format(StampLayout)); err != nil {
		return err
	}
	if err := n.wrapped.Notify(ctx); err != nil {
		return fmt.Errorf("wrapped notifier: %w", err)
	}
	end := n.now()
	return n.sink.WriteLine(ctx, "finished at "+end.Format(StampLayout))
}
