package mw

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"
)

const (
	DefaultStepTimeoutMessage  = "mw: middleware operation exceeded time limit"
	DefaultChainTimeoutMessage = "mw: middleware chain exceeded time limit for all operations"
)

var (
	ErrStepTimeout  = errors.New("mw: step timeout")
	ErrChainTimeout = errors.New("mw: chain timeout")
	ErrPanic        = errors.New("mw: handler panic")
)

// StepTimeoutError is returned when a step does not call its continuation
// within the per-step timeout.
type StepTimeoutError struct {
	Message string
	Timeout time.Duration
}

func (e *StepTimeoutError) Error() string {
	return e.Message
}

func (e *StepTimeoutError) Is(target error) bool {
	return target == ErrStepTimeout
}

// ChainTimeoutError is returned when the whole run exceeds the chain
// timeout. It is always fatal and never attributed to a handler.
type ChainTimeoutError struct {
	Message string
	Timeout time.Duration
}

func (e *ChainTimeoutError) Error() string {
	return e.Message
}

func (e *ChainTimeoutError) Is(target error) bool {
	return target == ErrChainTimeout
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value any
	Stack []byte
}

func NewPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

func (e *PanicError) Is(target error) bool {
	return target == ErrPanic
}

// ChainError attributes a step failure to the handler that caused it.
// Its message is the underlying error's message.
type ChainError struct {
	Err     error
	Handler *Entry
}

func (e *ChainError) Error() string {
	if e.Err == nil {
		return "mw: step failed"
	}
	return e.Err.Error()
}

func (e *ChainError) Unwrap() error {
	return e.Err
}

// HandlerName returns the originating handler's name, or "" when unset.
func (e *ChainError) HandlerName() string {
	if e.Handler == nil {
		return ""
	}
	return e.Handler.Name
}

// Attribute wraps err as a ChainError originating from entry. The first
// attribution wins: an error that already carries an originating handler
// keeps it.
func Attribute(err error, entry *Entry) *ChainError {
	if err == nil {
		return nil
	}

	if ce, ok := err.(*ChainError); ok {
		if ce.Handler == nil {
			ce.Handler = entry
		}
		return ce
	}

	var inner *ChainError
	if errors.As(err, &inner) && inner.Handler != nil {
		return &ChainError{Err: err, Handler: inner.Handler}
	}

	return &ChainError{Err: err, Handler: entry}
}
