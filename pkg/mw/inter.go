package mw

import (
	"time"

	"github.com/google/uuid"
)

type ArgsProvider interface {
	// Args returns the argument set the run finished with
	Args() Args
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErrors defines an interface for outcomes that carry step errors
type WithErrors interface {
	ArgsProvider
	// Err returns the fatal error, or the joined tolerated errors
	Err() error
	// Errors returns tolerated step errors in step order
	Errors() []*ChainError
	// IsSuccess returns true if every step continued without error
	IsSuccess() bool
	// IsTolerated returns true if steps failed but errors were ignored
	IsTolerated() bool
}

// Outcome extends WithErrors with cancellation and run identity
type Outcome interface {
	WithErrors
	// IsCancel returns true if the caller's context ended the run
	IsCancel() bool
	// ID identifies the run
	ID() uuid.UUID
}

var _ Outcome = Result{}
