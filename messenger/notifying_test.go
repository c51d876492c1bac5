package messenger_test

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"solid-lab/errors"
	"solid-lab/messenger"
	"solid-lab/mocks"
	"solid-lab/notifier"
	"solid-lab/sink"
)

func TestNotifying_SendMessage_DelegatesThenNotifies(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	base := mocks.NewMockMessenger(ctrl)
	noti := mocks.NewMockNotifier(ctrl)

	// The notification always fires after the base send.
	gomock.InOrder(
		base.EXPECT().SendMessage(ctx, "Test").Return(nil),
		noti.EXPECT().Notify(ctx).Return(nil),
	)

	m, err := messenger.NewNotifying(base, noti)
	req.NoError(err)
	req.NoError(m.SendMessage(ctx, "Test"))
}

// The delegation law holds for any notifier variant: the output starts with
// the base output and continues with exactly that notifier's output.
func TestNotifying_SendMessage_WithPopNotifier(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	rec := sink.NewMemory()
	base, err := messenger.NewPlain(rec, log)
	req.NoError(err)
	pop, err := notifier.NewPop(rec)
	req.NoError(err)

	m, err := messenger.NewNotifying(base, pop)
	req.NoError(err)

	req.NoError(m.SendMessage(ctx, "Test"))
	req.Equal([]string{"Test", notifier.PopToken}, rec.Lines())
}

func TestNotifying_SendMessage_WithTimedNotifier(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx := context.Background()

	rec := sink.NewMemory()
	base, err := messenger.NewPlain(rec, log)
	req.NoError(err)
	pop, err := notifier.NewPop(rec)
	req.NoError(err)
	timed, err := notifier.NewTimed(pop, rec)
	req.NoError(err)

	m, err := messenger.NewNotifying(base, timed)
	req.NoError(err)

	req.NoError(m.SendMessage(ctx, "Test"))

	lines := rec.Lines()
	req.Len(lines, 4)
	req.Equal("Test", lines[0])
	req.Contains(lines[1], "started at ")
	req.Equal(notifier.PopToken, lines[2])
	req.Contains(lines[3], "finished at ")
}

func TestNotifying_FailsFastOnNilCollaborators(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)

	rec := sink.NewMemory()
	base, err := messenger.NewPlain(rec, log)
	req.NoError(err)

	// Nothing may be written before the invalid-argument failure.
	_, err = messenger.NewNotifying(base, nil)
	req.ErrorIs(err, errors.ErrNilNotifier)
	req.Empty(rec.Lines())

	_, err = messenger.NewNotifying(nil, mocks.NewMockNotifier(ctrl))
	req.ErrorIs(err, errors.ErrNilBase)
}

func TestNotifying_SendMessage_NotifierFailureIsWrapped(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	base := mocks.NewMockMessenger(ctrl)
	noti := mocks.NewMockNotifier(ctrl)
	base.EXPECT().SendMessage(ctx, "Test").Return(nil)
	noti.EXPECT().Notify(ctx).Return(fmt.Errorf("boom"))

	m, err := messenger.NewNotifying(base, noti)
	req.NoError(err)

	err = m.SendMessage(ctx, "Test")
	req.ErrorContains(err, "notify after send")
}
