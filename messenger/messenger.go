// Package messenger contains the interchangeable implementations of
// contract.Messenger. Each variant is selected once at construction time;
// extension happens by delegation to a held base messenger, never by
// modifying an existing variant.
package messenger

import (
	"context"
	"fmt"
	"log/slog"

	"solid-lab/contract"
	"solid-lab/errors"
)

// Plain writes the text exactly as received.
type Plain struct {
	sink contract.Sink
	log  *slog.Logger
}

func NewPlain(sink contract.Sink, log *slog.Logger) (*Plain, error) {
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	return &Plain{sink: sink, log: log}, nil
}

func (m *Plain) SendMessage(ctx context.Context, text string) error {
	m.log.Debug("Sending message", "variant", "plain", "size", len(text))
	return m.sink.WriteLine(ctx, text)
}

const extendedFormat = "This is an Extended %s."

// Extended fully replaces the plain formatting with its own wrapper string.
// It never delegates to Plain: the base variant stays untouched.
type Extended struct {
	sink contract.Sink
	log  *slog.Logger
}

func NewExtended(sink contract.Sink, log *slog.Logger) (*Extended, error) {
	if sink == nil {
		return nil, errors.ErrNilSink
	}
	return &Extended{sink: sink, log: log}, nil
}

func (m *Extended) SendMessage(ctx context.Context, text string) error {
	m.log.Debug("Sending message", "variant", "extended", "size", len(text))
	return m.sink.WriteLine(ctx, fmt.Sprintf(extendedFormat, text))
}
