// Package order provides read-only traversal orders over a snapshot of a sequence.
//
// # Summary
//
// A View is created from a Source, and it captures the Source's elements at that instant.
// Each View follows one Kind of traversal order,
// and hands out Cursors that walk the snapshot forward until they are exhausted.
//
//	view := order.AscendingOrder(src)
//	for c := view.Begin(); !c.Equal(view.End()); c.Advance() {
//		v, _ := c.Current()
//		fmt.Println(v)
//	}
//
// Views are restartable: every Begin call starts a new, independent traversal.
// Mutating the Source after the View was made does not affect the View, but View.Stale will report it.
package order

import (
	"strings"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	// ErrOutOfRange is returned when a Cursor is dereferenced at an invalid position,
	// which is most commonly the exhausted state.
	ErrOutOfRange errorkit.Error = "invalid position"
	// ErrUnknownKind is returned when an order name or Kind value is not one of the known orders.
	ErrUnknownKind errorkit.Error = "unknown order kind"
)

// Source is the read-only collaborator a View is built from.
type Source[T any] interface {
	// ToSlice returns a copy of the current elements in insertion order.
	ToSlice() []T
	// Compare defines the total order of the elements.
	Compare(a, b T) int
	// Version changes on every mutation of the Source.
	Version() uint64
}

// Kind tells which traversal order a View follows.
type Kind int

const (
	// Insertion walks the elements in the order they were added.
	Insertion Kind = iota
	// Reverse walks the elements from the last added to the first.
	Reverse
	// Ascending walks the elements from the smallest to the largest.
	Ascending
	// Descending walks the elements from the largest to the smallest.
	Descending
	// SideCross alternates between the smallest and the largest remaining elements.
	SideCross
	// MiddleOut starts at the central position and alternates outward.
	MiddleOut
)

var kindNames = map[Kind]string{
	Insertion:  "order",
	Reverse:    "reverse",
	Ascending:  "ascending",
	Descending: "descending",
	SideCross:  "side-cross",
	MiddleOut:  "middle-out",
}

var kindAliases = map[string]Kind{
	"insertion": Insertion,
	"asc":       Ascending,
	"desc":      Descending,
	"sidecross": SideCross,
	"zigzag":    SideCross,
	"middleout": MiddleOut,
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Insertion, Reverse, Ascending, Descending, SideCross, MiddleOut}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Title is the human readable name of the order, as used in listings.
func (k Kind) Title() string {
	switch k {
	case Insertion:
		return "Regular Order"
	case Reverse:
		return "Reverse Order"
	case Ascending:
		return "Ascending Order"
	case Descending:
		return "Descending Order"
	case SideCross:
		return "Side Cross Order"
	case MiddleOut:
		return "Middle Out Order"
	default:
		return "Unknown Order"
	}
}

// Validate fails with ErrUnknownKind when k is not one of the known orders.
func (k Kind) Validate() error {
	if _, ok := kindNames[k]; !ok {
		return ErrUnknownKind.F("%d", int(k))
	}
	return nil
}

// ParseKind looks up a Kind by its name.
// Names are case-insensitive, and underscores are accepted in place of dashes.
func ParseKind(name string) (Kind, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for kind, n := range kindNames {
		if n == key {
			return kind, nil
		}
	}
	if kind, ok := kindAliases[key]; ok {
		return kind, nil
	}
	return 0, ErrUnknownKind.F("%q", name)
}
