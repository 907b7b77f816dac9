package core

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ib-77/nextchain/pkg/mw"
)

const (
	DefaultStepTimeout  = 45 * time.Second
	DefaultChainTimeout = 300 * time.Second

	envStepTimeout  = "_STEP_TIMEOUT"
	envChainTimeout = "_CHAIN_TIMEOUT"
	envIgnoreErrors = "_IGNORE_ERRORS"
)

// Config holds the timeouts and error policy of a chain.
type Config struct {
	StepTimeout         time.Duration
	ChainTimeout        time.Duration
	IgnoreErrors        bool
	StepTimeoutMessage  string
	ChainTimeoutMessage string
}

func DefaultConfig() Config {
	return Config{
		StepTimeout:         DefaultStepTimeout,
		ChainTimeout:        DefaultChainTimeout,
		IgnoreErrors:        false,
		StepTimeoutMessage:  mw.DefaultStepTimeoutMessage,
		ChainTimeoutMessage: mw.DefaultChainTimeoutMessage,
	}
}

type Option func(*Config) error

func WithStepTimeout(d time.Duration) Option {
	return func(c *Config) error {
		c.StepTimeout = d
		return nil
	}
}

func WithChainTimeout(d time.Duration) Option {
	return func(c *Config) error {
		c.ChainTimeout = d
		return nil
	}
}

func WithIgnoreErrors(ignore bool) Option {
	return func(c *Config) error {
		c.IgnoreErrors = ignore
		return nil
	}
}

func WithStepTimeoutMessage(msg string) Option {
	return func(c *Config) error {
		c.StepTimeoutMessage = msg
		return nil
	}
}

func WithChainTimeoutMessage(msg string) Option {
	return func(c *Config) error {
		c.ChainTimeoutMessage = msg
		return nil
	}
}

// FromEnv reads <prefix>_STEP_TIMEOUT, <prefix>_CHAIN_TIMEOUT (Go durations)
// and <prefix>_IGNORE_ERRORS (bool). Unset variables leave the current value.
func FromEnv(prefix string) Option {
	return func(c *Config) error {
		if v := os.Getenv(prefix + envStepTimeout); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("core: parse %s%s: %w", prefix, envStepTimeout, err)
			}
			c.StepTimeout = d
		}
		if v := os.Getenv(prefix + envChainTimeout); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("core: parse %s%s: %w", prefix, envChainTimeout, err)
			}
			c.ChainTimeout = d
		}
		if v := os.Getenv(prefix + envIgnoreErrors); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("core: parse %s%s: %w", prefix, envIgnoreErrors, err)
			}
			c.IgnoreErrors = b
		}
		return nil
	}
}

// Apply applies opts to c in order and stops at the first failing option.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// NewConfig returns the defaults with opts applied.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Apply(opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
