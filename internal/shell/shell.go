// Package shell is a line oriented command interpreter over a container.Container.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multiorder/internal/render"
	"go.llib.dev/multiorder/pkg/container"
	"go.llib.dev/multiorder/pkg/order"
)

const (
	ErrUnknownCommand errorkit.Error = "unknown command"
	ErrUsage          errorkit.Error = "usage"
	// ErrQuit is returned by Exec for the quit command.
	ErrQuit errorkit.Error = "quit"
)

// Shell interprets one command per line against a Container.
//
// Shell is not safe for concurrent use.
type Shell[T any] struct {
	Container *container.Container[T]
	Parse     Parser[T]
	Out       io.Writer
	Format    render.Format
	Logger    *logging.Logger

	sessionID string
}

func New[T any](c *container.Container[T], parse Parser[T], out io.Writer, logger *logging.Logger) *Shell[T] {
	return &Shell[T]{
		Container: c,
		Parse:     parse,
		Out:       out,
		Format:    render.FormatText,
		Logger:    logger,
		sessionID: uuid.NewString(),
	}
}

type command struct {
	Usage   string
	Summary string
	MinArgs int
	MaxArgs int // negative means unbounded
}

var commands = map[string]command{
	"add":    {Usage: "add <value>...", Summary: "append values", MinArgs: 1, MaxArgs: -1},
	"remove": {Usage: "remove <value>", Summary: "remove the first occurrence of a value", MinArgs: 1, MaxArgs: 1},
	"get":    {Usage: "get <index>", Summary: "print the value at index", MinArgs: 1, MaxArgs: 1},
	"set":    {Usage: "set <index> <value>", Summary: "replace the value at index", MinArgs: 2, MaxArgs: 2},
	"size":   {Usage: "size", Summary: "print the number of values"},
	"print":  {Usage: "print", Summary: "print the values in insertion order"},
	"order":  {Usage: "order [kind|all]", Summary: "print the values in one or every order", MaxArgs: 1},
	"format": {Usage: "format <text|json>", Summary: "switch the output format of order", MinArgs: 1, MaxArgs: 1},
	"clear":  {Usage: "clear", Summary: "remove every value"},
	"help":   {Usage: "help", Summary: "list the commands"},
	"quit":   {Usage: "quit", Summary: "leave the shell"},
}

// Commands lists the command names in alphabetical order.
func Commands() []string {
	var names []string
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Exec runs a single command line.
// Blank lines and lines starting with # are ignored.
func (sh *Shell[T]) Exec(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]

	sh.logger().Debug(ctx, "executing command",
		logging.Field("session_id", sh.session()),
		logging.Field("command", line))

	err := sh.exec(name, args)
	if err != nil && !errors.Is(err, ErrQuit) {
		sh.logger().Warn(ctx, "command failed",
			logging.Field("session_id", sh.session()),
			logging.Field("command", line),
			logging.ErrField(err))
	}
	return err
}

// AddValues parses each raw value as a single element and appends them.
// Nothing is added when any of them fails to parse.
func (sh *Shell[T]) AddValues(ctx context.Context, raws []string) error {
	sh.logger().Debug(ctx, "adding values",
		logging.Field("session_id", sh.session()),
		logging.Field("count", len(raws)))

	var vs []T
	for _, raw := range raws {
		v, err := sh.Parse(raw)
		if err != nil {
			sh.logger().Warn(ctx, "adding values failed",
				logging.Field("session_id", sh.session()),
				logging.ErrField(err))
			return err
		}
		vs = append(vs, v)
	}
	sh.Container.Add(vs...)
	return nil
}

// Run executes every line until the lines are consumed, the context is done, or quit is entered.
// A failing line is reported to Out and does not stop the run.
// The returned error merges every failure.
func (sh *Shell[T]) Run(ctx context.Context, lines iter.Seq[string]) error {
	var errs []error
	for line := range lines {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		err := sh.Exec(ctx, line)
		if errors.Is(err, ErrQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(sh.Out, "error: %s\n", err.Error())
			errs = append(errs, err)
		}
	}
	return errorkit.Merge(errs...)
}

func (sh *Shell[T]) exec(name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return ErrUnknownCommand.F("%q, try help", name)
	}
	if len(args) < cmd.MinArgs || (0 <= cmd.MaxArgs && cmd.MaxArgs < len(args)) {
		return ErrUsage.F("%s", cmd.Usage)
	}
	switch name {
	case "add":
		var vs []T
		for _, raw := range args {
			v, err := sh.Parse(raw)
			if err != nil {
				return err
			}
			vs = append(vs, v)
		}
		sh.Container.Add(vs...)
		return nil

	case "remove":
		v, err := sh.Parse(args[0])
		if err != nil {
			return err
		}
		return sh.Container.Remove(v)

	case "get":
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		v, err := sh.Container.Get(index)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(sh.Out, v)
		return err

	case "set":
		index, err := parseIndex(args[0])
		if err != nil {
			return err
		}
		v, err := sh.Parse(args[1])
		if err != nil {
			return err
		}
		return sh.Container.Set(index, v)

	case "size":
		_, err := fmt.Fprintln(sh.Out, sh.Container.Len())
		return err

	case "print":
		return render.Container(sh.Out, sh.Container)

	case "order":
		if len(args) == 0 || strings.EqualFold(args[0], "all") {
			return render.Views(sh.Out, sh.Format, sh.Container.Views()...)
		}
		kind, err := order.ParseKind(args[0])
		if err != nil {
			return err
		}
		view, err := sh.Container.View(kind)
		if err != nil {
			return err
		}
		return render.Views(sh.Out, sh.Format, view)

	case "format":
		format, err := render.ParseFormat(args[0])
		if err != nil {
			return err
		}
		sh.Format = format
		return nil

	case "clear":
		sh.Container.Clear()
		return nil

	case "help":
		return sh.help()

	case "quit":
		return ErrQuit
	}
	return ErrUnknownCommand.F("%q", name)
}

func (sh *Shell[T]) help() error {
	for _, name := range Commands() {
		cmd := commands[name]
		if _, err := fmt.Fprintf(sh.Out, "  %-22s %s\n", cmd.Usage, cmd.Summary); err != nil {
			return err
		}
	}
	var kinds []string
	for _, kind := range order.Kinds() {
		kinds = append(kinds, kind.String())
	}
	_, err := fmt.Fprintf(sh.Out, "orders: %s\n", strings.Join(kinds, ", "))
	return err
}

func (sh *Shell[T]) logger() *logging.Logger {
	if sh.Logger == nil {
		sh.Logger = &logging.Logger{Out: io.Discard}
	}
	return sh.Logger
}

func (sh *Shell[T]) session() string {
	if sh.sessionID == "" {
		sh.sessionID = uuid.NewString()
	}
	return sh.sessionID
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidValue.F("%q is not an index", raw)
	}
	return index, nil
}
