package logger

import "fmt"

// A logger handed to AttachLogger may implement any subset of these.
type (
	Debugger interface{ Debug(args ...any) }
	Printer  interface{ Log(args ...any) }
	Infoer   interface{ Info(args ...any) }
	Warner   interface{ Warn(args ...any) }
	Errorer  interface{ Error(args ...any) }
)

type logFunc func(args ...any)

func noop(...any) {}

// table is the resolved capability set of one attached logger.
type table struct {
	fns [LevelError + 1]logFunc
}

func (t *table) emit(level Level, args []any) {
	if !level.valid() {
		return
	}
	if fn := t.fns[level]; fn != nil {
		fn(args...)
	}
}

func capability(l any, level Level) logFunc {
	switch level {
	case LevelDebug:
		if d, ok := l.(Debugger); ok {
			return d.Debug
		}
	case LevelLog:
		if p, ok := l.(Printer); ok {
			return p.Log
		}
	case LevelInfo:
		if i, ok := l.(Infoer); ok {
			return i.Info
		}
	case LevelWarn:
		if w, ok := l.(Warner); ok {
			return w.Warn
		}
	case LevelError:
		if e, ok := l.(Errorer); ok {
			return e.Error
		}
	}
	return nil
}

// resolve binds every level to l's matching method. A missing debug falls
// back to log and vice versa; any other gap is disabled and reported through
// l's Warn, when it has one. Levels ranked below threshold are disabled after
// resolution.
func resolve(l any, threshold *Level) *table {
	t := &table{}

	for _, level := range Levels {
		fn := capability(l, level)

		if fn == nil {
			switch level {
			case LevelDebug:
				fn = capability(l, LevelLog)
			case LevelLog:
				fn = capability(l, LevelDebug)
			}
		}

		if fn == nil {
			if w, ok := l.(Warner); ok {
				w.Warn(fmt.Sprintf("logger: '%s' not supported by logger, disabled", level))
			}
			fn = noop
		}

		if threshold != nil && level.Rank() < threshold.Rank() {
			fn = noop
		}

		t.fns[level] = fn
	}

	return t
}
