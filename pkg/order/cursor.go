package order

import "slices"

// Cursor is a forward-only position marker over a View's snapshot.
//
// Cursor is a value type, copying it yields an independent cursor at the same position.
// Copies do not own a permutation of their own: they share the View's snapshot and
// permutation backing arrays, which are never written after the View is built,
// so advancing one copy never moves another. Use Clone for a cursor that owns its permutation.
// The zero Cursor is exhausted.
type Cursor[T any] struct {
	kind   Kind
	values []T
	perm   []int
	// pos is the logical position,
	// except for Reverse where it counts down over the source indices.
	pos  int
	done bool
}

// Advance moves the cursor to the next logical position.
// Once the cursor is exhausted, Advance is a no-op.
func (c *Cursor[T]) Advance() {
	if c.Done() {
		c.done = true
		return
	}
	if c.kind == Reverse {
		if c.pos == 0 {
			c.done = true
			return
		}
		c.pos--
		return
	}
	c.pos++
	if c.len() <= c.pos {
		c.done = true
	}
}

// Current returns the element under the cursor.
// It fails with ErrOutOfRange when the cursor is exhausted.
func (c Cursor[T]) Current() (T, error) {
	index, err := c.Index()
	if err != nil {
		var zero T
		return zero, err
	}
	return c.values[index], nil
}

// Index returns the source index under the cursor.
// It fails with ErrOutOfRange when the cursor is exhausted.
func (c Cursor[T]) Index() (int, error) {
	if c.Done() {
		return 0, ErrOutOfRange.F("%s cursor is exhausted", c.kind)
	}
	return c.index(), nil
}

// Done reports whether the cursor is exhausted.
func (c Cursor[T]) Done() bool {
	if c.done {
		return true
	}
	if c.pos < 0 || c.len() <= c.pos {
		return true
	}
	index := c.index()
	return index < 0 || len(c.values) <= index
}

// Equal reports whether two cursors of the same View stand at the same logical position.
// Exhausted cursors are equal to each other, and never equal to a non-exhausted one.
func (c Cursor[T]) Equal(oth Cursor[T]) bool {
	if c.kind != oth.kind {
		return false
	}
	cDone, othDone := c.Done(), oth.Done()
	if cDone || othDone {
		return cDone && othDone
	}
	return c.pos == oth.pos
}

// Kind returns the traversal order of the cursor.
func (c Cursor[T]) Kind() Kind { return c.kind }

// Clone returns a copy of the cursor that owns its own permutation.
func (c Cursor[T]) Clone() Cursor[T] {
	c.perm = slices.Clone(c.perm)
	return c
}

func (c Cursor[T]) index() int {
	if c.perm != nil {
		return c.perm[c.pos]
	}
	return c.pos
}

func (c Cursor[T]) len() int {
	if c.perm != nil {
		return len(c.perm)
	}
	return len(c.values)
}
