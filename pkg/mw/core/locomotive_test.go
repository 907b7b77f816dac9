package core

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/nextchain/pkg/mw"
)

func entryOf(h mw.Handler) *mw.Entry {
	return &mw.Entry{Handler: h, Name: mw.HandlerName(h)}
}

func TestLocomotive_Continue(t *testing.T) {
	t.Parallel()

	var seen mw.Args
	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		seen = args
		next(nil)
	}), mw.Args{"a"}, time.Second, "too slow")

	require.NoError(t, err)
	assert.Equal(t, mw.Args{"a"}, seen)
}

func TestLocomotive_ErrorFromNext(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		next(boom)
	}), nil, time.Second, "too slow")

	assert.ErrorIs(t, err, boom)
}

type brokenErr struct{}

func (brokenErr) Error() string { panic("broken error") }

func TestLocomotive_TypedNilErrorContinues(t *testing.T) {
	t.Parallel()

	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		var perr *os.PathError
		next(perr)
	}), nil, time.Second, "too slow")

	assert.NoError(t, err)
}

func TestLocomotive_PanickingErrorBecomesPanicError(t *testing.T) {
	t.Parallel()

	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		next(brokenErr{})
	}), nil, time.Second, "too slow")

	require.ErrorIs(t, err, mw.ErrPanic)
	assert.Equal(t, "broken error", err.Error())
}

func TestLocomotive_OnlyFirstContinuationCounts(t *testing.T) {
	t.Parallel()

	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		next(nil)
		next(errors.New("ignored"))
		next(nil)
	}), nil, time.Second, "too slow")

	assert.NoError(t, err)
}

func TestLocomotive_PanicBecomesError(t *testing.T) {
	t.Parallel()

	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		panic("somethingThatShouldBeDefined is not defined")
	}), nil, time.Second, "too slow")

	require.Error(t, err)
	assert.ErrorIs(t, err, mw.ErrPanic)
	assert.Equal(t, "somethingThatShouldBeDefined is not defined", err.Error())
}

func TestLocomotive_StepTimeout(t *testing.T) {
	t.Parallel()

	stepDone := make(chan struct{})
	start := time.Now()
	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		go func() {
			<-ctx.Done()
			close(stepDone)
		}()
	}), nil, 50*time.Millisecond, "too slow")

	var te *mw.StepTimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "too slow", te.Error())
	assert.Equal(t, 50*time.Millisecond, te.Timeout)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	select {
	case <-stepDone:
	case <-time.After(time.Second):
		t.Fatal("handler context was not cancelled after the step settled")
	}
}

func TestLocomotive_NoTimerWhenTimeoutDisabled(t *testing.T) {
	t.Parallel()

	err := Locomotive(context.Background(), entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		time.AfterFunc(30*time.Millisecond, func() { next(nil) })
	}), nil, 0, "too slow")

	assert.NoError(t, err)
}

func TestLocomotive_ContextCause(t *testing.T) {
	t.Parallel()

	cause := &mw.ChainTimeoutError{Message: "chain too slow"}
	ctx, cancel := context.WithTimeoutCause(context.Background(), 30*time.Millisecond, cause)
	defer cancel()

	err := Locomotive(ctx, entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {}), nil, time.Second, "too slow")
	assert.Same(t, cause, err)

	called := false
	err = Locomotive(ctx, entryOf(func(ctx context.Context, args mw.Args, next mw.Next) {
		called = true
		next(nil)
	}), nil, time.Second, "too slow")
	assert.Same(t, cause, err)
	assert.False(t, called)
}

func TestLocomotive_BoundAndStep(t *testing.T) {
	t.Parallel()

	type target struct{ name string }
	bound := &target{name: "logger"}

	var (
		gotBound any
		gotStep  Step
		hasStep  bool
	)
	entry := &mw.Entry{
		Bound: bound,
		Handler: func(ctx context.Context, args mw.Args, next mw.Next) {
			gotBound = Bound(ctx)
			gotStep, hasStep = StepFrom(ctx)
			next(nil)
		},
	}

	ctx := WithStep(context.Background(), Step{Index: 2, Name: "third"})
	require.NoError(t, Locomotive(ctx, entry, nil, time.Second, "too slow"))

	assert.Same(t, bound, gotBound)
	require.True(t, hasStep)
	assert.Equal(t, 2, gotStep.Index)
	assert.Equal(t, "third", gotStep.Name)

	_, ok := StepFrom(context.Background())
	assert.False(t, ok)
	assert.Nil(t, Bound(context.Background()))
}
