package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"solid-lab/errors"
	"solid-lab/sink"
)

func TestPop_Notify_WritesToken(t *testing.T) {
	req := require.New(t)
	rec := sink.NewMemory()

	pop, err := NewPop(rec)
	req.NoError(err)

	req.NoError(pop.Notify(context.Background()))
	req.Equal([]string{"Pop!"}, rec.Lines())
}

func TestTimed_Notify_SurroundsWrappedOutput(t *testing.T) {
	req := require.New(t)
	rec := sink.NewMemory()

	pop, err := NewPop(rec)
	req.NoError(err)
	timed, err := NewTimed(pop, rec)
	req.NoError(err)

	// Deterministic clock: second reading is 250ms after the first.
	base := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	readings := []time.Time{base, base.Add(250 * time.Millisecond)}
	timed.now = func() time.Time {
		next := readings[0]
		readings = readings[1:]
		return next
	}

	req.NoError(timed.Notify(context.Background()))

	req.Equal([]string{
		"started at 2024-05-17 10:30:00.000",
		"Pop!",
		"finished at 2024-05-17 10:30:00.250",
	}, rec.Lines())
}

func TestTimed_Notify_TimestampsNeverDecrease(t *testing.T) {
	req := require.New(t)
	rec := sink.NewMemory()

	pop, err := NewPop(rec)
	req.NoError(err)
	timed, err := NewTimed(pop, rec)
	req.NoError(err)

	req.NoError(timed.Notify(context.Background()))

	lines := rec.Lines()
	req.Len(lines, 3)
	req.Equal("Pop!", lines[1])

	start, err := time.Parse(StampLayout, lines[0][len("started at "):])
	req.NoError(err)
	end, err := time.Parse(StampLayout, lines[2][len("finished at "):])
	req.NoError(err)
	req.False(end.Before(start))
}

func TestNotifier_NilCollaborators(t *testing.T) {
	req := require.New(t)
	rec := sink.NewMemory()

	_, err := NewPop(nil)
	req.ErrorIs(err, errors.ErrNilSink)

	pop, err := NewPop(rec)
	req.NoError(err)

	_, err = NewTimed(nil, rec)
	req.ErrorIs(err, errors.ErrNilWrapped)

	_, err = NewTimed(pop, nil)
	req.ErrorIs(err, errors.ErrNilSink)
}
