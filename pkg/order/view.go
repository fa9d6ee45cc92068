package order

import (
	"iter"
	"slices"
)

// View is a restartable traversal of a Source snapshot in one Kind of order.
type View[T any] struct {
	kind    Kind
	values  []T
	perm    []int
	source  Source[T]
	version uint64
}

// New makes a View of the given Kind over the current state of the source.
func New[T any](kind Kind, src Source[T]) (View[T], error) {
	if err := kind.Validate(); err != nil {
		return View[T]{}, err
	}
	return newView(kind, src), nil
}

// Order makes a View in insertion order.
func Order[T any](src Source[T]) View[T] { return newView(Insertion, src) }

// ReverseOrder makes a View that starts with the last inserted element.
func ReverseOrder[T any](src Source[T]) View[T] { return newView(Reverse, src) }

// AscendingOrder makes a View from the smallest to the largest element.
// Equal elements keep their insertion order.
func AscendingOrder[T any](src Source[T]) View[T] { return newView(Ascending, src) }

// DescendingOrder makes a View from the largest to the smallest element.
// Equal elements keep their insertion order.
func DescendingOrder[T any](src Source[T]) View[T] { return newView(Descending, src) }

// SideCrossOrder makes a View that alternates between the smallest and the largest remaining element.
//
//	[4,1,3,2] -> 1,4,2,3
func SideCrossOrder[T any](src Source[T]) View[T] { return newView(SideCross, src) }

// MiddleOutOrder makes a View that starts at the middle position and alternates outward.
// The order depends only on the positions, not on the element values.
//
//	[1,2,3,4,5] -> 3,2,4,1,5
//	[1,2,3,4]   -> 2,3,1,4
func MiddleOutOrder[T any](src Source[T]) View[T] { return newView(MiddleOut, src) }

func newView[T any](kind Kind, src Source[T]) View[T] {
	if src == nil {
		return View[T]{kind: kind}
	}
	var (
		version = src.Version()
		values  = src.ToSlice()
	)
	return View[T]{
		kind:    kind,
		values:  values,
		perm:    permutation(kind, values, src.Compare),
		source:  src,
		version: version,
	}
}

// Begin returns a new cursor at the first logical element.
// For an empty View, the returned cursor is already exhausted.
func (v View[T]) Begin() Cursor[T] {
	c := Cursor[T]{
		kind:   v.kind,
		values: v.values,
		perm:   v.perm,
	}
	if v.kind == Reverse {
		c.pos = len(v.values) - 1
	}
	if c.Done() {
		return v.End()
	}
	return c
}

// End returns the exhausted cursor, which is only meant to be compared against.
func (v View[T]) End() Cursor[T] {
	c := Cursor[T]{
		kind:   v.kind,
		values: v.values,
		perm:   v.perm,
		done:   true,
	}
	if v.kind == Reverse {
		c.pos = -1
	} else {
		c.pos = len(v.values)
	}
	return c
}

// Kind returns the traversal order of the View.
func (v View[T]) Kind() Kind { return v.kind }

// Len returns the number of elements in the snapshot.
func (v View[T]) Len() int { return len(v.values) }

// Stale reports whether the source was mutated since the View was made.
// A stale View still walks its own snapshot.
func (v View[T]) Stale() bool {
	if v.source == nil {
		return false
	}
	return v.source.Version() != v.version
}

// Values iterates over the elements in the View's order.
func (v View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.All() {
			if !yield(val) {
				return
			}
		}
	}
}

// All iterates over the source index and element pairs in the View's order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := v.Begin(); !c.Done(); c.Advance() {
			if !yield(c.index(), c.values[c.index()]) {
				return
			}
		}
	}
}

// Indices returns the source indices in the View's order.
func (v View[T]) Indices() []int {
	var out = make([]int, 0, v.Len())
	for index := range v.All() {
		out = append(out, index)
	}
	return out
}

// ToSlice collects the View's elements in order.
func (v View[T]) ToSlice() []T {
	var out = make([]T, 0, v.Len())
	for val := range v.Values() {
		out = append(out, val)
	}
	return out
}

// Snapshot returns a copy of the elements the View was made from, in insertion order.
func (v View[T]) Snapshot() []T {
	return slices.Clone(v.values)
}
