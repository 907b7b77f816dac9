// Package chain provides the middleware chain: a handler registry and the
// executor that runs it.
//
// Handlers are registered with Use and run strictly one after another in
// registration order. Every handler receives the run's argument set and a
// continuation; the chain only moves on once that continuation is called.
//
//	c := chain.MustNew(core.WithStepTimeout(time.Second))
//	c.Use(func(ctx context.Context, args mw.Args, next mw.Next) {
//		req := args[0].(*Request)
//		req.Seen = true
//		next(nil)
//	})
//	res := c.Execute(ctx, &Request{})
//
// Key operations:
// - Use: register a handler, optionally with a bound value and a name
// - Execute: run all handlers, returning a mw.Result
// - SetStepTimeout/SetChainTimeout/IgnoreErrors: adjust the configuration
// - Observe: attach observers such as metrics.Collector
package chain
