// Package mw holds the shared vocabulary of the middleware chain: the
// argument set threaded through steps, the handler and continuation
// signatures, the error taxonomy and the Result of a run.
//
// Error taxonomy:
// - handler errors: passed to Next or raised by panic (PanicError)
// - StepTimeoutError: a step did not continue in time
// - ChainTimeoutError: the whole run did not finish in time, always fatal
//
// Handler and step-timeout errors are wrapped in ChainError, which records
// the originating Entry. Result distinguishes success, tolerated (errors
// ignored and collected) and failure/cancel outcomes.
package mw
