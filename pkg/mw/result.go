package mw

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one Execute call. It has three shapes:
// success, tolerated (ignoreErrors collected one or more step errors) and
// failure/cancel (the run was aborted by a fatal error).
type Result struct {
	id          uuid.UUID
	createdAt   time.Time
	args        Args
	errs        []*ChainError
	err         error
	isSuccess   bool
	isCancel    bool
	isTolerated bool
}

func Success(id uuid.UUID, args Args) Result {
	return Result{
		id:        id,
		createdAt: time.Now().UTC(),
		args:      args,
		isSuccess: true,
	}
}

// Tolerated builds the result of a run that completed every step while
// recording step errors. An empty errs collapses to Success.
func Tolerated(id uuid.UUID, args Args, errs []*ChainError) Result {
	if len(errs) == 0 {
		return Success(id, args)
	}
	return Result{
		id:          id,
		createdAt:   time.Now().UTC(),
		args:        args,
		errs:        errs,
		isTolerated: true,
	}
}

func Fail(id uuid.UUID, err error) Result {
	return Result{
		id:        id,
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func Cancel(id uuid.UUID, err error) Result {
	return Result{
		id:        id,
		createdAt: time.Now().UTC(),
		err:       err,
		isCancel:  true,
	}
}

// Args returns the run's argument set. It is nil for aborted runs.
func (r Result) Args() Args {
	return r.args
}

// Errors returns the step errors collected while ignoring errors.
func (r Result) Errors() []*ChainError {
	return r.errs
}

// Err returns the fatal error of an aborted run, or the joined tolerated
// errors. It is nil on success.
func (r Result) Err() error {
	if r.err != nil {
		return r.err
	}
	if len(r.errs) == 0 {
		return nil
	}
	joined := make([]error, 0, len(r.errs))
	for _, e := range r.errs {
		joined = append(joined, e)
	}
	return errors.Join(joined...)
}

func (r Result) IsSuccess() bool {
	return r.isSuccess
}

func (r Result) IsTolerated() bool {
	return r.isTolerated
}

// IsFailure reports an aborted run, whether by error, timeout or cancel.
func (r Result) IsFailure() bool {
	return r.err != nil
}

func (r Result) IsCancel() bool {
	return r.isCancel
}

func (r Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result) ID() uuid.UUID {
	return r.id
}
