package shell

import (
	"strconv"

	"go.llib.dev/frameless/pkg/errorkit"
)

const ErrInvalidValue errorkit.Error = "invalid value"

// Parser turns a command argument into an element value.
type Parser[T any] func(raw string) (T, error)

func ParseInt(raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidValue.F("%q is not an integer", raw)
	}
	return v, nil
}

func ParseFloat(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidValue.F("%q is not a number", raw)
	}
	return v, nil
}

func ParseString(raw string) (string, error) { return raw, nil }
