package sink

import (
	"context"
	"fmt"

	"solid-lab/contract"
)

// Fanout broadcasts each line to several sinks in registration order.
//
// It provides in-order, fail-fast delivery: the first sink error stops the
// broadcast. Fanout is not a message broker.
type Fanout struct {
	sinks []contract.Sink
}

func NewFanout(sinks ...contract.Sink) *Fanout {
	return &Fanout{sinks: sinks}
}

func (f *Fanout) Add(sinks ...contract.Sink) *Fanout {
	f.sinks = append(f.sinks, sinks...)
	return f
}

func (f *Fanout) WriteLine(ctx context.Context, line string) error {
	for _, s := range f.sinks {
		if err := s.WriteLine(ctx, line); err != nil {
			return fmt.Errorf("fanout write: %w", err)
		}
	}
	return nil
}
