package messenger

import (
	"context"
	"fmt"

	"solid-lab/contract"
	"solid-lab/errors"
)

// DeliveredLine is appended by Receipt after the base messenger has run.
const DeliveredLine = "Message delivered."

// Receipt delegates to a held base messenger unmodified, then writes one
// delivery confirmation line. The base output is always a prefix of its own.
type Receipt struct {
	base contract.Messenger
	sink contract.Sink
}

func NewReceipt(base contract.Messenger, sink contract.Sink) (*Receipt, error) {
	if base == nil {
		return nil, errors.ErrNilBase
	}
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	return &Receipt{base: base, sink: sink}, nil
}

func (m *Receipt) SendMessage(ctx context.Context, text string) error {
	if err := m.base.SendMessage(ctx, text); err != nil {
		return fmt.Errorf("base send: %w", err)
	}
	return m.sink.WriteLine(ctx, DeliveredLine)
}
