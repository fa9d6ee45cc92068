// Package ordercontract holds the behavioural contract every order.View traversal must fulfil.
package ordercontract

import (
	"testing"

	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"

	"go.llib.dev/multiorder/pkg/order"
)

// Subject bundles what the contract needs to make Views.
type Subject[T any] struct {
	// MakeSource returns a Source that holds the given values in insertion order.
	MakeSource func(tb testing.TB, vs ...T) order.Source[T]
	// MakeValue returns a random element.
	MakeValue func(tb testing.TB) T
}

func (s Subject[T]) view(tb testing.TB, kind order.Kind, vs ...T) order.View[T] {
	v, err := order.New(kind, s.MakeSource(tb, vs...))
	assert.NoError(tb, err)
	return v
}

// Cursor verifies the cursor protocol of a Kind:
// end sentinels, exhaustion, idempotent advancing, copy independence and restartability.
func Cursor[T any](kind order.Kind, mk contract.Make[Subject[T]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[T] {
		return mk(t)
	})
	values := testcase.Let(s, func(t *testcase.T) []T {
		return random.Slice(t.Random.IntBetween(2, 7), func() T {
			return subject.Get(t).MakeValue(t)
		})
	})
	view := testcase.Let(s, func(t *testcase.T) order.View[T] {
		return subject.Get(t).view(t, kind, values.Get(t)...)
	})

	s.Test("on an empty source, begin equals end and dereferencing fails", func(t *testcase.T) {
		v := subject.Get(t).view(t, kind)
		assert.Equal(t, 0, v.Len())
		assert.True(t, v.Begin().Equal(v.End()))
		assert.True(t, v.Begin().Done())

		_, err := v.Begin().Current()
		assert.ErrorIs(t, err, order.ErrOutOfRange)
		_, err = v.End().Current()
		assert.ErrorIs(t, err, order.ErrOutOfRange)
		_, err = v.Begin().Index()
		assert.ErrorIs(t, err, order.ErrOutOfRange)

		assert.Empty(t, iterkit.Collect(v.Values()))
		assert.Empty(t, v.Indices())
	})

	s.Test("on a single element source, the element is yielded exactly once", func(t *testcase.T) {
		exp := subject.Get(t).MakeValue(t)
		v := subject.Get(t).view(t, kind, exp)

		c := v.Begin()
		assert.False(t, c.Equal(v.End()))
		got, err := c.Current()
		assert.NoError(t, err)
		assert.Equal(t, exp, got)

		c.Advance()
		assert.True(t, c.Done())
		assert.True(t, c.Equal(v.End()))
		_, err = c.Current()
		assert.ErrorIs(t, err, order.ErrOutOfRange)
	})

	s.Test("begin is not the end when the source has values", func(t *testcase.T) {
		assert.False(t, view.Get(t).Begin().Equal(view.Get(t).End()))
		assert.False(t, view.Get(t).Begin().Done())
	})

	s.Test("the end cursor is exhausted and cannot be dereferenced", func(t *testcase.T) {
		end := view.Get(t).End()
		assert.True(t, end.Done())
		_, err := end.Current()
		assert.ErrorIs(t, err, order.ErrOutOfRange)
	})

	s.Test("the traversal visits every source index exactly once", func(t *testcase.T) {
		var indices []int
		for c := view.Get(t).Begin(); !c.Equal(view.Get(t).End()); c.Advance() {
			index, err := c.Index()
			assert.NoError(t, err)
			indices = append(indices, index)
		}
		assert.Equal(t, len(values.Get(t)), len(indices))
		assert.ContainsExactly(t, identity(len(values.Get(t))), indices)
		assert.Equal(t, indices, view.Get(t).Indices())
	})

	s.Test("the traversal yields the same multiset of elements as the source", func(t *testcase.T) {
		got := iterkit.Collect(view.Get(t).Values())
		assert.ContainsExactly(t, values.Get(t), got)
		assert.Equal(t, got, view.Get(t).ToSlice())
	})

	s.Test("dereferenced values match the source at the cursor index", func(t *testcase.T) {
		for c := view.Get(t).Begin(); !c.Done(); c.Advance() {
			index, err := c.Index()
			assert.NoError(t, err)
			got, err := c.Current()
			assert.NoError(t, err)
			assert.Equal(t, values.Get(t)[index], got)
		}
	})

	s.Test("advancing an exhausted cursor keeps it exhausted", func(t *testcase.T) {
		c := view.Get(t).Begin()
		for !c.Done() {
			c.Advance()
		}
		t.Random.Repeat(1, 7, func() {
			c.Advance()
			assert.True(t, c.Done())
			assert.True(t, c.Equal(view.Get(t).End()))
		})
		_, err := c.Current()
		assert.ErrorIs(t, err, order.ErrOutOfRange)

		end := view.Get(t).End()
		end.Advance()
		assert.True(t, end.Equal(view.Get(t).End()))
	})

	s.Test("advancing a copy does not move the original", func(t *testcase.T) {
		original := view.Get(t).Begin()
		exp, err := original.Current()
		assert.NoError(t, err)

		cp := original
		cp.Advance()
		assert.False(t, cp.Equal(original))

		got, err := original.Current()
		assert.NoError(t, err)
		assert.Equal(t, exp, got)

		clone := original.Clone()
		assert.True(t, clone.Equal(original))
		for !clone.Done() {
			clone.Advance()
		}
		got, err = original.Current()
		assert.NoError(t, err)
		assert.Equal(t, exp, got)
	})

	s.Test("copies at the same position are equal", func(t *testcase.T) {
		a := view.Get(t).Begin()
		steps := t.Random.IntBetween(0, view.Get(t).Len()-1)
		for i := 0; i < steps; i++ {
			a.Advance()
		}
		b := a
		assert.True(t, a.Equal(b))
		b.Advance()
		assert.False(t, a.Equal(b))
		a.Advance()
		assert.True(t, a.Equal(b))
	})

	s.Test("begin restarts the traversal", func(t *testcase.T) {
		first := view.Get(t).ToSlice()

		c := view.Get(t).Begin()
		c.Advance()

		assert.Equal(t, first, view.Get(t).ToSlice())
		assert.True(t, view.Get(t).Begin().Equal(view.Get(t).Begin()))

		again := subject.Get(t).view(t, kind, values.Get(t)...)
		assert.Equal(t, first, again.ToSlice())
	})

	s.Test("the view reports its kind", func(t *testcase.T) {
		assert.Equal(t, kind, view.Get(t).Kind())
		assert.Equal(t, kind, view.Get(t).Begin().Kind())
	})

	return s.AsSuite(kind.String() + " cursor")
}

func identity(n int) []int {
	var out = make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
