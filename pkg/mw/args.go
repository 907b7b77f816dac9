package mw

// Args is the ordered argument set threaded through every step of a run.
//
// Each step receives its own shallow copy. Reassigning an element inside a
// handler is never seen by later steps; mutating a value reached through a
// reference element (pointer, map, slice) is.
type Args []any

// Clone returns a shallow copy of a.
func (a Args) Clone() Args {
	if a == nil {
		return Args{}
	}
	out := make(Args, len(a))
	copy(out, a)
	return out
}

func (a Args) Len() int {
	return len(a)
}

// At returns the element at i, or nil when i is out of range.
func (a Args) At(i int) any {
	if i < 0 || i >= len(a) {
		return nil
	}
	return a[i]
}

// Arg returns element i of args asserted to T.
func Arg[T any](args Args, i int) (T, bool) {
	v, ok := args.At(i).(T)
	return v, ok
}
