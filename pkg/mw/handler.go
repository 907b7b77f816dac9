package mw

import (
	"context"
	"reflect"
	"runtime"
	"strings"
)

// Next is the single-use continuation handed to a step. Calling it with nil
// advances the chain; calling it with an error fails the step. Only the
// first call counts.
type Next func(err error)

// Handler is one middleware step. It must eventually call next exactly once
// or let the step timeout expire.
type Handler func(ctx context.Context, args Args, next Next)

// Entry is a registered handler. Entries are immutable once registered and
// are identified by pointer, which is what ChainError.Handler refers to.
type Entry struct {
	Handler Handler
	// Bound is the optional value the handler was registered with. Handlers
	// read it back with core.Bound.
	Bound any
	Name  string
	Index int
}

// HandlerName derives a readable name from the handler's function symbol,
// e.g. "chain_test.willHitTimeout".
func HandlerName(h Handler) string {
	if h == nil {
		return ""
	}
	fn := runtime.FuncForPC(reflect.ValueOf(h).Pointer())
	if fn == nil {
		return ""
	}
	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
