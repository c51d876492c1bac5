package messenger

import (
	"context"
	"fmt"

	"solid-lab/contract"
	"solid-lab/errors"
)

// Notifying delegates to a held base messenger, then fires a notification on
// whatever contract.Notifier it was constructed with. It only ever sees the
// contract, so any notifier variant can be substituted at the composition
// root without touching this type.
type Notifying struct {
	base     contract.Messenger
	notifier contract.Notifier
}

// NewNotifying fails fast on a missing collaborator instead of deferring the
// failure to the first send.
func NewNotifying(base contract.Messenger, notifier contract.Notifier) (*Notifying, error) {
	if base == nil {
		return nil, errors.ErrNilBase
	}
	if notifier == nil {
		return nil, errors.ErrNilNotifier
	}
	return &Notifying{base: base, notifier: notifier}, nil
}

func (m *Notifying) SendMessage(ctx context.Context, text string) error {
	if err := m.base.SendMessage(ctx, text); err != nil {
		return fmt.Errorf("base send: %w", err)
	}
	if err := m.notifier.Notify(ctx); err != nil {
		return fmt.Errorf("notify after send: %w", err)
	}
	return nil
}
