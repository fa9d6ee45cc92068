package main

import (
	"context"
	"io"
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multiorder/internal/config"
	"go.llib.dev/multiorder/internal/render"
	"go.llib.dev/multiorder/internal/shell"
	"go.llib.dev/multiorder/pkg/compare"
	"go.llib.dev/multiorder/pkg/container"
)

const ErrUnknownElementType errorkit.Error = "unknown element type"

// session is a shell.Shell with its element type erased.
type session interface {
	Exec(ctx context.Context, line string) error
	AddValues(ctx context.Context, raws []string) error
	Run(ctx context.Context, lines iter.Seq[string]) error
}

func newSession(cfg config.Config, out io.Writer, logger *logging.Logger) (session, error) {
	format, err := cfg.OutputFormat()
	if err != nil {
		return nil, err
	}
	switch cfg.ElementType {
	case config.ElementInt, "":
		return withFormat(shell.New(container.New[int](), shell.ParseInt, out, logger), format), nil
	case config.ElementFloat:
		return withFormat(shell.New(container.New[float64](), shell.ParseFloat, out, logger), format), nil
	case config.ElementString:
		return withFormat(shell.New(container.New[string](), shell.ParseString, out, logger), format), nil
	case config.ElementNatural:
		c := container.NewFunc[string](compare.Natural[string])
		return withFormat(shell.New(c, shell.ParseString, out, logger), format), nil
	default:
		return nil, ErrUnknownElementType.F("%q", cfg.ElementType)
	}
}

func withFormat[T any](sh *shell.Shell[T], format render.Format) *shell.Shell[T] {
	sh.Format = format
	return sh
}
