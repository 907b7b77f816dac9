package chain

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ib-77/nextchain/pkg/mw"
	"github.com/ib-77/nextchain/pkg/mw/core"
)

// Chain is an ordered, append-only set of handlers plus the configuration
// they run under. A Chain may be executed any number of times, including
// concurrently; every Execute is an independent run.
type Chain struct {
	mu        sync.RWMutex
	cfg       core.Config
	entries   []*mw.Entry
	observers []Observer
	log       logrus.FieldLogger
}

// EntryOption configures a handler at registration.
type EntryOption func(*mw.Entry)

// WithBound attaches a value the handler reads back with core.Bound.
func WithBound(bound any) EntryOption {
	return func(e *mw.Entry) {
		e.Bound = bound
	}
}

// WithName overrides the name derived from the handler's symbol.
func WithName(name string) EntryOption {
	return func(e *mw.Entry) {
		e.Name = name
	}
}

// New returns a chain with the default configuration and opts applied.
func New(opts ...core.Option) (*Chain, error) {
	cfg, err := core.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Chain{
		cfg: cfg,
		log: logrus.StandardLogger(),
	}, nil
}

// MustNew is like New but panics if an option fails.
func MustNew(opts ...core.Option) *Chain {
	c, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// WithLogger sets the logger used for the chain's own diagnostics.
// Returns the Chain instance for chaining.
func (c *Chain) WithLogger(l logrus.FieldLogger) *Chain {
	if l == nil {
		panic("chain: nil logger passed to WithLogger")
	}
	c.mu.Lock()
	c.log = l
	c.mu.Unlock()
	return c
}

// Observe adds observers notified of run and step progress.
func (c *Chain) Observe(obs ...Observer) *Chain {
	for _, o := range obs {
		if o == nil {
			panic("chain: nil observer passed to Observe")
		}
	}
	c.mu.Lock()
	c.observers = append(c.observers, obs...)
	c.mu.Unlock()
	return c
}

// Use appends a handler. Handlers run in the order they are added.
// Registrations are read when Execute starts, so a handler added during a
// run takes part from the next run on.
func (c *Chain) Use(h mw.Handler, opts ...EntryOption) *Chain {
	if h == nil {
		panic("chain: nil handler passed to Use")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := &mw.Entry{
		Handler: h,
		Name:    mw.HandlerName(h),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Index = len(c.entries)
	c.entries = append(c.entries, e)
	return c
}

// Entries returns the registered handlers in order.
func (c *Chain) Entries() []*mw.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*mw.Entry(nil), c.entries...)
}

// Len returns the number of registered handlers.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Config returns a snapshot of the current configuration.
func (c *Chain) Config() core.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

// SetStepTimeout changes the per-step timeout. Runs in progress pick it up
// from their next step on.
func (c *Chain) SetStepTimeout(d time.Duration) *Chain {
	c.mu.Lock()
	c.cfg.StepTimeout = d
	c.mu.Unlock()
	return c
}

// SetChainTimeout changes the whole-run timeout for runs started afterwards.
func (c *Chain) SetChainTimeout(d time.Duration) *Chain {
	c.mu.Lock()
	c.cfg.ChainTimeout = d
	c.mu.Unlock()
	return c
}

// IgnoreErrors switches between aborting on the first step error (false)
// and collecting step errors while running every step (true).
func (c *Chain) IgnoreErrors(ignore bool) *Chain {
	c.mu.Lock()
	c.cfg.IgnoreErrors = ignore
	c.mu.Unlock()
	return c
}

// SetStepTimeoutMessage sets the message of step timeout errors.
func (c *Chain) SetStepTimeoutMessage(msg string) *Chain {
	c.mu.Lock()
	c.cfg.StepTimeoutMessage = msg
	c.mu.Unlock()
	return c
}

// SetChainTimeoutMessage sets the message of chain timeout errors.
func (c *Chain) SetChainTimeoutMessage(msg string) *Chain {
	c.mu.Lock()
	c.cfg.ChainTimeoutMessage = msg
	c.mu.Unlock()
	return c
}

func (c *Chain) stepLimits() (time.Duration, string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg.StepTimeout, c.cfg.StepTimeoutMessage
}

func (c *Chain) snapshot() (core.Config, []*mw.Entry, []Observer, logrus.FieldLogger) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg,
		append([]*mw.Entry(nil), c.entries...),
		append([]Observer(nil), c.observers...),
		c.log
}
