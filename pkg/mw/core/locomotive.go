package core

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ib-77/nextchain/pkg/mw"
)

// Locomotive runs one step: it invokes entry's handler with args and a fresh
// single-use continuation, then waits for whichever comes first of the
// continuation, the per-step timer and the end of ctx.
//
// It returns nil when the handler continued without error (a typed-nil error
// counts as none), the handler's error (a PanicError if it panicked or if the
// error itself panics when inspected), a StepTimeoutError, or
// context.Cause(ctx) when ctx ended first. A non-positive timeout disables
// the per-step timer.
//
// The handler's context is cancelled once the step is settled. A handler
// that ignores it keeps running; only its continuation is disregarded.
func Locomotive(ctx context.Context, entry *mw.Entry, args mw.Args,
	timeout time.Duration, timeoutMessage string) error {

	if ctx.Err() != nil {
		return context.Cause(ctx)
	}

	stepCtx, cancel := context.WithCancel(WithBound(ctx, entry.Bound))
	defer cancel()

	done := make(chan error, 1)
	var once sync.Once
	next := func(err error) {
		if mw.IsNil(err) {
			err = nil
		}
		once.Do(func() {
			done <- err
		})
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				next(mw.NewPanicError(r))
			}
		}()
		entry.Handler(stepCtx, args, next)
	}()

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case err := <-done:
		return settle(err)
	case <-expired:
		return &mw.StepTimeoutError{Message: timeoutMessage, Timeout: timeout}
	case <-ctx.Done():
		return context.Cause(ctx)
	}
}

// settle makes err safe to log and attribute: every Error, Unwrap and Is
// method on its chain is run once here, and a panic in any of them is
// reported as a PanicError.
func settle(err error) (out error) {
	if err == nil {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			out = mw.NewPanicError(r)
		}
	}()

	_ = err.Error()
	var ce *mw.ChainError
	_ = errors.As(err, &ce)
	_ = errors.Is(err, mw.ErrPanic)
	return err
}
