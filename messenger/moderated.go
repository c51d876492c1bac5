package messenger

import (
	"context"
	"log/slog"

	"github.com/abadojack/whatlanggo"

	"solid-lab/contract"
	"solid-lab/errors"
	"solid-lab/moderation"
)

// Moderated censors the text before handing it to the base messenger.
// The base variants stay closed for modification: moderation is bolted on
// purely by wrapping.
type Moderated struct {
	base      contract.Messenger
	moderator moderation.Moderator
	log       *slog.Logger
}

func NewModerated(base contract.Messenger, moderator moderation.Moderator, log *slog.Logger) (*Moderated, error) {
	if base == nil {
		return nil, errors.ErrNilBase
	}
	return &Moderated{base: base, moderator: moderator, log: log}, nil
}

func (m *Moderated) SendMessage(ctx context.Context, text string) error {
	clean, found := m.moderator.Censor(text)
	if len(found) > 0 {
		info := whatlanggo.Detect(text)
		m.log.Warn("Censored message",
			"lang", info.Lang.Iso6391(),
			"words", len(found))
	}
	return m.base.SendMessage(ctx, clean)
}
