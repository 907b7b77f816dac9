package chain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ib-77/nextchain/pkg/mw"
	"github.com/ib-77/nextchain/pkg/mw/core"
)

// Execute runs every registered handler in order over a fresh copy of args.
//
// Each handler gets its own shallow copy of the argument set and a
// single-use continuation. A step that continues without error hands over
// to the next one. A step that fails (error passed to next, panic, or step
// timeout) aborts the run unless errors are ignored, in which case the error
// is recorded and the next step runs on the same argument set.
//
// The whole run is bounded by the chain timeout, which aborts it regardless
// of the error policy. Cancelling ctx ends the run with a Cancel result.
func (c *Chain) Execute(ctx context.Context, args ...any) mw.Result {
	cfg, entries, observers, log := c.snapshot()

	id := uuid.New()
	started := time.Now()
	base := mw.Args(args).Clone()

	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if cfg.ChainTimeout > 0 {
		runCtx, cancel = context.WithTimeoutCause(ctx, cfg.ChainTimeout,
			&mw.ChainTimeoutError{Message: cfg.ChainTimeoutMessage, Timeout: cfg.ChainTimeout})
	} else {
		runCtx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	runLog := log.WithField("run", id.String())

	for _, o := range observers {
		o.RunStarted(runCtx, id, len(entries))
	}

	res := c.run(runCtx, id, cfg, entries, observers, runLog, base)

	elapsed := time.Since(started)
	for _, o := range observers {
		o.RunFinished(runCtx, res, elapsed)
	}

	if res.IsFailure() {
		runLog.WithError(res.Err()).WithField("elapsed", elapsed).Debug("chain aborted")
	} else {
		runLog.WithField("elapsed", elapsed).Debug("chain completed")
	}

	return res
}

func (c *Chain) run(ctx context.Context, id uuid.UUID, cfg core.Config, entries []*mw.Entry,
	observers []Observer, log logrus.FieldLogger, base mw.Args) mw.Result {

	var tolerated []*mw.ChainError

	for _, e := range entries {
		if ctx.Err() != nil {
			return abort(ctx, id)
		}

		step := core.Step{RunID: id, Index: e.Index, Name: e.Name}
		stepLog := log.WithFields(logrus.Fields{"step": e.Index, "handler": e.Name})
		timeout, msg := c.stepLimits()

		for _, o := range observers {
			o.StepStarted(ctx, step)
		}
		stepLog.Debug("step started")

		start := time.Now()
		err := core.Locomotive(core.WithStep(ctx, step), e, base.Clone(), timeout, msg)
		elapsed := time.Since(start)

		if ctx.Err() != nil {
			cause := context.Cause(ctx)
			for _, o := range observers {
				o.StepFinished(ctx, step, elapsed, cause)
			}
			return abort(ctx, id)
		}

		if err == nil {
			for _, o := range observers {
				o.StepFinished(ctx, step, elapsed, nil)
			}
			stepLog.WithField("elapsed", elapsed).Debug("step finished")
			continue
		}

		ce := mw.Attribute(err, e)
		for _, o := range observers {
			o.StepFinished(ctx, step, elapsed, ce)
		}

		if !cfg.IgnoreErrors {
			return mw.Fail(id, ce)
		}

		stepLog.WithError(ce).Warn("step failed, continuing with unchanged args")
		tolerated = append(tolerated, ce)
	}

	if ctx.Err() != nil {
		return abort(ctx, id)
	}

	return mw.Tolerated(id, base, tolerated)
}

func abort(ctx context.Context, id uuid.UUID) mw.Result {
	cause := context.Cause(ctx)
	if errors.Is(cause, mw.ErrChainTimeout) {
		return mw.Fail(id, cause)
	}
	return mw.Cancel(id, cause)
}
