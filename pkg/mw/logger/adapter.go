package logger

import (
	"context"
	"time"

	"github.com/ib-77/nextchain/pkg/mw"
	"github.com/ib-77/nextchain/pkg/mw/chain"
	"github.com/ib-77/nextchain/pkg/mw/core"
)

// DefaultStepTimeout bounds a single logger call.
const DefaultStepTimeout = 15 * time.Second

// Adapter fans level-named log calls out to every attached logger through a
// chain. Errors are ignored by default so a failing logger never breaks the
// caller; a logger that panics or hangs only costs its own step.
type Adapter struct {
	chain *chain.Chain
}

// New returns an adapter whose chain ignores errors and bounds each logger
// call by DefaultStepTimeout. opts are applied on top of those defaults.
func New(opts ...core.Option) (*Adapter, error) {
	base := []core.Option{
		core.WithIgnoreErrors(true),
		core.WithStepTimeout(DefaultStepTimeout),
	}
	c, err := chain.New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Adapter{chain: c}, nil
}

func MustNew(opts ...core.Option) *Adapter {
	a, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// AttachLogger registers l, which may implement any of Debugger, Printer,
// Infoer, Warner and Errorer. Missing levels degrade as described on
// resolve; each attached logger becomes one step of the chain.
func (a *Adapter) AttachLogger(l any) *Adapter {
	return a.attach(l, nil)
}

// AttachLoggerLevel is AttachLogger with every level ranked below threshold
// disabled.
func (a *Adapter) AttachLoggerLevel(l any, threshold Level) *Adapter {
	return a.attach(l, &threshold)
}

func (a *Adapter) attach(l any, threshold *Level) *Adapter {
	if mw.IsNil(l) {
		panic("logger: nil logger passed to AttachLogger")
	}
	a.chain.Use(emit, chain.WithBound(resolve(l, threshold)), chain.WithName("logger.emit"))
	return a
}

// emit runs as a chain step with args (Level, []any).
func emit(ctx context.Context, args mw.Args, next mw.Next) {
	t, _ := core.Bound(ctx).(*table)
	level, _ := mw.Arg[Level](args, 0)
	values, _ := mw.Arg[[]any](args, 1)

	if t != nil {
		t.emit(level, values)
	}
	next(nil)
}

func (a *Adapter) write(ctx context.Context, level Level, args []any) mw.Result {
	return a.chain.Execute(ctx, level, args)
}

func (a *Adapter) Debug(args ...any) mw.Result {
	return a.write(context.Background(), LevelDebug, args)
}

func (a *Adapter) Log(args ...any) mw.Result {
	return a.write(context.Background(), LevelLog, args)
}

func (a *Adapter) Info(args ...any) mw.Result {
	return a.write(context.Background(), LevelInfo, args)
}

func (a *Adapter) Warn(args ...any) mw.Result {
	return a.write(context.Background(), LevelWarn, args)
}

func (a *Adapter) Error(args ...any) mw.Result {
	return a.write(context.Background(), LevelError, args)
}

func (a *Adapter) DebugContext(ctx context.Context, args ...any) mw.Result {
	return a.write(ctx, LevelDebug, args)
}

func (a *Adapter) LogContext(ctx context.Context, args ...any) mw.Result {
	return a.write(ctx, LevelLog, args)
}

func (a *Adapter) InfoContext(ctx context.Context, args ...any) mw.Result {
	return a.write(ctx, LevelInfo, args)
}

func (a *Adapter) WarnContext(ctx context.Context, args ...any) mw.Result {
	return a.write(ctx, LevelWarn, args)
}

func (a *Adapter) ErrorContext(ctx context.Context, args ...any) mw.Result {
	return a.write(ctx, LevelError, args)
}
