// Package compare holds the total order functions that drive the sorted traversals.
package compare

import (
	"strings"

	"github.com/maruel/natural"
	"golang.org/x/exp/constraints"
)

// Func defines a total order between two values.
//
// It returns:
//   - a negative number if a is less than b,
//   - zero if they're equal, and
//   - a positive number if a is greater than b.
//
// Implementations must be consistent: a strict weak ordering on the negative results,
// where equality is everything that is neither less nor greater.
type Func[T any] func(a, b T) int

// Ordered compares built-in ordered types.
// NaN values are treated as equal to each other and less than any other value,
// so floating point sequences still form a total order.
func Ordered[T constraints.Ordered](a, b T) int {
	var (
		aNaN = isNaN(a)
		bNaN = isNaN(b)
	)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func isNaN[T constraints.Ordered](v T) bool { return v != v }

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Natural compares strings in natural sort order,
// where embedded digit sequences are compared by their numeric value.
//
//	file2 < file10
//
// https://en.wikipedia.org/wiki/Natural_sort_order
func Natural[S ~string](a, b S) int {
	if a == b {
		return 0
	}
	if natural.Less(string(a), string(b)) {
		return -1
	}
	if natural.Less(string(b), string(a)) {
		return 1
	}
	return Strings(a, b)
}

// Reverse turns the order of cmp upside down.
func Reverse[T any](cmp Func[T]) Func[T] {
	return func(a, b T) int { return cmp(b, a) }
}

// ByKey compares values by a key extracted from them.
func ByKey[T, K any](key func(T) K, cmp Func[K]) Func[T] {
	return func(a, b T) int { return cmp(key(a), key(b)) }
}

// The Is helpers interpret the result of a Func call.

func IsEqual(cmp int) bool          { return cmp == 0 }
func IsLess(cmp int) bool           { return cmp < 0 }
func IsLessOrEqual(cmp int) bool    { return cmp <= 0 }
func IsGreater(cmp int) bool        { return 0 < cmp }
func IsGreaterOrEqual(cmp int) bool { return 0 <= cmp }
