// Package sink contains the output sinks every variant writes through.
// Sinks are themselves interchangeable implementations of contract.Sink,
// so decorating or multiplying the output never touches the variants.
package sink

import (
	"context"
	"fmt"
	"io"
)

// Console writes each line to an io.Writer, one line per call.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) WriteLine(_ context.Context, line string) error {
	_, err := fmt.Fprintln(c.w, line)
	return err
}
