package container

import "go.llib.dev/multiorder/pkg/order"

// View returns a fresh View of the given kind, bound to the current state of the Container.
func (c *Container[T]) View(kind order.Kind) (order.View[T], error) {
	return order.New[T](kind, c)
}

// OrderView walks the elements in insertion order.
func (c *Container[T]) OrderView() order.View[T] { return order.Order[T](c) }

// ReverseOrderView walks the elements from the last added to the first.
func (c *Container[T]) ReverseOrderView() order.View[T] { return order.ReverseOrder[T](c) }

// AscendingOrderView walks the elements from the smallest to the largest.
func (c *Container[T]) AscendingOrderView() order.View[T] { return order.AscendingOrder[T](c) }

// DescendingOrderView walks the elements from the largest to the smallest.
func (c *Container[T]) DescendingOrderView() order.View[T] { return order.DescendingOrder[T](c) }

// SideCrossOrderView alternates between the smallest and the largest remaining elements.
func (c *Container[T]) SideCrossOrderView() order.View[T] { return order.SideCrossOrder[T](c) }

// MiddleOutOrderView starts at the middle position and alternates outward.
func (c *Container[T]) MiddleOutOrderView() order.View[T] { return order.MiddleOutOrder[T](c) }

// Views returns a View for every order Kind.
func (c *Container[T]) Views() []order.View[T] {
	var vs []order.View[T]
	for _, kind := range order.Kinds() {
		v, _ := c.View(kind)
		vs = append(vs, v)
	}
	return vs
}
