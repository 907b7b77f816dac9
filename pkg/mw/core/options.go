package core

import (
	"context"

	"github.com/google/uuid"
)

type OptionKey string

const (
	BoundOptionKey OptionKey = "bound_value"
	StepOptionKey  OptionKey = "step_info"
)

// Step describes the step a handler is running as.
type Step struct {
	RunID uuid.UUID
	Index int
	Name  string
}

func WithBound(ctx context.Context, bound any) context.Context {
	return context.WithValue(ctx, BoundOptionKey, bound)
}

// Bound returns the value the running handler was registered with, or nil.
func Bound(ctx context.Context) any {
	return ctx.Value(BoundOptionKey)
}

func WithStep(ctx context.Context, step Step) context.Context {
	return context.WithValue(ctx, StepOptionKey, step)
}

func StepFrom(ctx context.Context) (Step, bool) {
	step, ok := ctx.Value(StepOptionKey).(Step)
	return step, ok
}
