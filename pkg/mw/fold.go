package mw

type FoldHandlers[Out any] struct {
	OnSuccess   func(args Args) Out
	OnTolerated func(args Args, errs []*ChainError) Out
	OnFailure   func(err error) Out
	OnCancel    func(err error) Out
}

// Fold reduces r to a concrete value through the handler matching its shape.
// A nil handler yields the zero value of Out.
func Fold[Out any](r Result, handlers FoldHandlers[Out]) Out {
	var zero Out

	switch {
	case r.IsSuccess():
		if handlers.OnSuccess != nil {
			return handlers.OnSuccess(r.Args())
		}
	case r.IsTolerated():
		if handlers.OnTolerated != nil {
			return handlers.OnTolerated(r.Args(), r.Errors())
		}
	case r.IsCancel():
		if handlers.OnCancel != nil {
			return handlers.OnCancel(r.Err())
		}
	default:
		if handlers.OnFailure != nil {
			return handlers.OnFailure(r.Err())
		}
	}
	return zero
}
