// Package render presents containers and order views for humans and machines.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/multiorder/pkg/order"
)

const ErrUnknownFormat errorkit.Error = "unknown output format"

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(raw string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(raw))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", ErrUnknownFormat.F("%q", raw)
	}
}

// ViewDTO is the JSON representation of an order.View.
type ViewDTO[T any] struct {
	Order   string `json:"order"`
	Values  []T    `json:"values"`
	Indices []int  `json:"indices"`
}

func ToDTO[T any](view order.View[T]) ViewDTO[T] {
	return ViewDTO[T]{
		Order:   view.Kind().String(),
		Values:  view.ToSlice(),
		Indices: view.Indices(),
	}
}

// Views writes each view on its own line in the requested format.
func Views[T any](w io.Writer, format Format, views ...order.View[T]) error {
	switch format {
	case FormatText, "":
		for _, view := range views {
			if err := Text(w, view); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		return JSON(w, views...)
	default:
		return ErrUnknownFormat.F("%q", string(format))
	}
}

// Text writes a view as a titled, space separated line.
//
//	Ascending Order: 1 2 3 4
func Text[T any](w io.Writer, view order.View[T]) error {
	var b strings.Builder
	b.WriteString(view.Kind().Title())
	b.WriteString(":")
	for v := range view.Values() {
		b.WriteString(" ")
		fmt.Fprint(&b, v)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes one JSON object per view.
func JSON[T any](w io.Writer, views ...order.View[T]) error {
	enc := json.NewEncoder(w)
	for _, view := range views {
		if err := enc.Encode(ToDTO(view)); err != nil {
			return err
		}
	}
	return nil
}

// Container writes the bracketed form of a container, like [1,2,3].
func Container(w io.Writer, c fmt.Stringer) error {
	_, err := fmt.Fprintln(w, c.String())
	return err
}
