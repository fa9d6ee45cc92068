// Package container implements a growable sequence of comparable elements
// that can be traversed in several orders without reordering its storage.
package container

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
	"golang.org/x/exp/constraints"

	"go.llib.dev/multiorder/pkg/compare"
	"go.llib.dev/multiorder/pkg/order"
)

const (
	// ErrNotFound is returned by Remove when the value is not in the Container.
	ErrNotFound errorkit.Error = "element not found"
	// ErrOutOfRange is returned on indexed access outside of [0, Len()).
	ErrOutOfRange errorkit.Error = "index out of range"
)

// Container is an insertion-order preserving sequence.
// Use New or NewFunc to make one, the zero value has no order defined:
// Remove, Contains, Compare and the sorted views panic on it.
// Equality between elements is derived from the comparison function.
//
// Container is not safe for concurrent use.
type Container[T any] struct {
	elements []T
	cmp      compare.Func[T]
	version  uint64
}

var _ order.Source[int] = (*Container[int])(nil)

// New makes a Container for a built-in ordered type.
func New[T constraints.Ordered](vs ...T) *Container[T] {
	return NewFunc(compare.Ordered[T], vs...)
}

// NewFunc makes a Container that orders its elements with cmp.
func NewFunc[T any](cmp compare.Func[T], vs ...T) *Container[T] {
	if cmp == nil {
		panic("container: nil compare function")
	}
	c := &Container[T]{cmp: cmp}
	c.Add(vs...)
	return c
}

// Add appends values to the end of the Container.
func (c *Container[T]) Add(vs ...T) {
	if len(vs) == 0 {
		return
	}
	c.elements = append(c.elements, vs...)
	c.version++
}

// Remove deletes the first occurrence of v.
// Equality is decided by the comparison function and not by ==,
// so with New a NaN matches another NaN.
func (c *Container[T]) Remove(v T) error {
	cmp := c.compareFunc()
	index := slices.IndexFunc(c.elements, func(e T) bool {
		return compare.IsEqual(cmp(e, v))
	})
	if index < 0 {
		return ErrNotFound.F("%v", v)
	}
	c.elements = slices.Delete(c.elements, index, index+1)
	c.version++
	return nil
}

// Clear removes every element.
func (c *Container[T]) Clear() {
	if len(c.elements) == 0 {
		return
	}
	clear(c.elements)
	c.elements = c.elements[:0]
	c.version++
}

// Len returns the number of elements.
func (c *Container[T]) Len() int {
	return len(c.elements)
}

// Get returns the element at index.
func (c *Container[T]) Get(index int) (T, error) {
	if err := c.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return c.elements[index], nil
}

// Set replaces the element at index.
func (c *Container[T]) Set(index int, v T) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.elements[index] = v
	c.version++
	return nil
}

// Contains reports whether v is in the Container.
func (c *Container[T]) Contains(v T) bool {
	cmp := c.compareFunc()
	return slices.ContainsFunc(c.elements, func(e T) bool {
		return compare.IsEqual(cmp(e, v))
	})
}

func (c *Container[T]) checkIndex(index int) error {
	if index < 0 || len(c.elements) <= index {
		return ErrOutOfRange.F("index %d, length %d", index, len(c.elements))
	}
	return nil
}

// String renders the Container as [e1,e2,...,eN].
func (c *Container[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i, e := range c.elements {
		if 0 < i {
			b.WriteString(",")
		}
		fmt.Fprint(&b, e)
	}
	b.WriteString("]")
	return b.String()
}

// ToSlice returns a copy of the elements in insertion order.
func (c *Container[T]) ToSlice() []T {
	return slices.Clone(c.elements)
}

// Iter iterates over the index and element pairs in insertion order.
func (c *Container[T]) Iter() iter.Seq2[int, T] {
	return slices.All(c.elements)
}

// Compare applies the Container's order to a and b.
func (c *Container[T]) Compare(a, b T) int {
	return c.compareFunc()(a, b)
}

func (c *Container[T]) compareFunc() compare.Func[T] {
	if c.cmp == nil {
		panic("container: no compare function, use New or NewFunc")
	}
	return c.cmp
}

// Version is increased by every mutation.
func (c *Container[T]) Version() uint64 {
	return c.version
}
