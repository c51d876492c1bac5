package sink

import (
	"context"

	"github.com/gookit/color"

	"solid-lab/contract"
)

// Tinted decorates another sink by rendering each line with a color style.
// Substituting it for a plain sink changes presentation only, never content.
type Tinted struct {
	inner contract.Sink
	style color.Style
}

func NewTinted(inner contract.Sink, style color.Style) *Tinted {
	return &Tinted{inner: inner, style: style}
}

func (t *Tinted) WriteLine(ctx context.Context, line string) error {
	return t.inner.WriteLine(ctx, t.style.Render(line))
}
