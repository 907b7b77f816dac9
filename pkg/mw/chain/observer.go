package chain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/nextchain/pkg/mw"
	"github.com/ib-77/nextchain/pkg/mw/core"
)

// Observer is notified of run and step progress. Calls for one run are made
// sequentially from the goroutine running Execute; calls for concurrent runs
// may overlap.
type Observer interface {
	RunStarted(ctx context.Context, run uuid.UUID, steps int)
	StepStarted(ctx context.Context, step core.Step)
	// StepFinished receives nil, a *mw.ChainError, or the cause that ended
	// the run while the step was waiting.
	StepFinished(ctx context.Context, step core.Step, elapsed time.Duration, err error)
	RunFinished(ctx context.Context, res mw.Outcome, elapsed time.Duration)
}

// ObserverFuncs adapts optional functions to Observer.
type ObserverFuncs struct {
	OnRunStarted   func(ctx context.Context, run uuid.UUID, steps int)
	OnStepStarted  func(ctx context.Context, step core.Step)
	OnStepFinished func(ctx context.Context, step core.Step, elapsed time.Duration, err error)
	OnRunFinished  func(ctx context.Context, res mw.Outcome, elapsed time.Duration)
}

func (f ObserverFuncs) RunStarted(ctx context.Context, run uuid.UUID, steps int) {
	if f.OnRunStarted != nil {
		f.OnRunStarted(ctx, run, steps)
	}
}

func (f ObserverFuncs) StepStarted(ctx context.Context, step core.Step) {
	if f.OnStepStarted != nil {
		f.OnStepStarted(ctx, step)
	}
}

func (f ObserverFuncs) StepFinished(ctx context.Context, step core.Step, elapsed time.Duration, err error) {
	if f.OnStepFinished != nil {
		f.OnStepFinished(ctx, step, elapsed, err)
	}
}

func (f ObserverFuncs) RunFinished(ctx context.Context, res mw.Outcome, elapsed time.Duration) {
	if f.OnRunFinished != nil {
		f.OnRunFinished(ctx, res, elapsed)
	}
}
