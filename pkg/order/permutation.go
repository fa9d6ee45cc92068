package order

import (
	"slices"

	"github.com/tidwall/btree"
)

// permutation computes the index order for the kinds that need one.
// Insertion and Reverse positions are computed arithmetically, so they get nil.
func permutation[T any](kind Kind, values []T, cmp func(a, b T) int) []int {
	switch kind {
	case Ascending:
		return sortedIndices(values, cmp)
	case Descending:
		return sortedIndices(values, func(a, b T) int { return cmp(b, a) })
	case SideCross:
		return sideCrossIndices(values, cmp)
	case MiddleOut:
		return middleOutIndices(len(values))
	default:
		return nil
	}
}

func identity(n int) []int {
	var out = make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func sortedIndices[T any](values []T, cmp func(a, b T) int) []int {
	indices := identity(len(values))
	slices.SortStableFunc(indices, func(i, j int) int {
		return cmp(values[i], values[j])
	})
	return indices
}

// sideCrossIndices keeps the indices in a B-tree ordered by value, then by original position,
// and drains it from both ends alternately.
func sideCrossIndices[T any](values []T, cmp func(a, b T) int) []int {
	tr := btree.NewBTreeG(func(i, j int) bool {
		if c := cmp(values[i], values[j]); c != 0 {
			return c < 0
		}
		return i < j
	})
	for i := range values {
		tr.Set(i)
	}
	var out = make([]int, 0, len(values))
	for tr.Len() > 0 {
		if i, ok := tr.PopMin(); ok {
			out = append(out, i)
		}
		if i, ok := tr.PopMax(); ok {
			out = append(out, i)
		}
	}
	return out
}

func middleOutIndices(n int) []int {
	var out = make([]int, 0, n)
	if n == 0 {
		return out
	}
	var (
		mid   = n / 2
		left  = mid
		right = mid
	)
	if n%2 == 0 {
		left = mid - 1
		out = append(out, mid-1, mid)
	} else {
		out = append(out, mid)
	}
	for i := 1; len(out) < n; i++ {
		if l := left - i; 0 <= l {
			out = append(out, l)
		}
		if r := right + i; r < n {
			out = append(out, r)
		}
	}
	return out
}
