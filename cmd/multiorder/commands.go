package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/chzyer/readline"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multiorder/internal/config"
	"go.llib.dev/multiorder/internal/render"
	"go.llib.dev/multiorder/internal/shell"
	"go.llib.dev/multiorder/pkg/container"
	"go.llib.dev/multiorder/pkg/order"
)

const (
	exitCodeError      = 1
	exitCodeBadRequest = 2
)

var demoValues = []int{3, 1, 5, 2, 4}

func handleError(w cli.Response, err error) {
	w.ExitCode(exitCodeError)
	fmt.Fprintf(w, "%s\n", err.Error())
}

type DemoCommand struct {
	Format string `flag:"format,f" desc:"output format: text or json"`

	Config *config.Config
}

func (cmd DemoCommand) Summary() string {
	return "print 3 1 5 2 4 in every order"
}

func (cmd DemoCommand) ServeCLI(w cli.Response, r *cli.Request) {
	format, err := render.ParseFormat(coalesce(cmd.Format, cmd.Config.Format))
	if err != nil {
		handleError(w, err)
		return
	}
	c := container.New(demoValues...)
	if err := render.Views(w, format, c.Views()...); err != nil {
		handleError(w, err)
	}
}

type ShowCommand struct {
	Type   string `flag:"type,t" desc:"element type: int, float, string or natural"`
	Order  string `flag:"order,o" default:"all" desc:"order kind, or all"`
	Format string `flag:"format,f" desc:"output format: text or json"`

	Config *config.Config
	Logger *logging.Logger
}

func (cmd ShowCommand) Summary() string {
	return "print the given values in one or every order"
}

func (cmd ShowCommand) ServeCLI(w cli.Response, r *cli.Request) {
	cfg := *cmd.Config
	cfg.ElementType = coalesce(cmd.Type, cfg.ElementType)
	cfg.Format = coalesce(cmd.Format, cfg.Format)

	sess, err := newSession(cfg, w, cmd.Logger)
	if err != nil {
		handleError(w, err)
		return
	}
	if err := sess.AddValues(r.Context(), r.Args); err != nil {
		handleError(w, err)
		return
	}
	if err := sess.Exec(r.Context(), "order "+cmd.Order); err != nil {
		handleError(w, err)
	}
}

type ReplCommand struct {
	Type   string `flag:"type,t" desc:"element type: int, float, string or natural"`
	Script bool   `flag:"script,s" desc:"read commands from stdin without a prompt"`

	Config *config.Config
	Logger *logging.Logger
}

func (cmd ReplCommand) Summary() string {
	return "interactive shell over a container"
}

func (cmd ReplCommand) ServeCLI(w cli.Response, r *cli.Request) {
	cfg := *cmd.Config
	cfg.ElementType = coalesce(cmd.Type, cfg.ElementType)

	if cmd.Script {
		cmd.script(w, r, cfg)
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "multiorder> ",
		HistoryFile:     cfg.HistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    completer(),
	})
	if err != nil {
		handleError(w, err)
		return
	}
	defer rl.Close()

	sess, err := newSession(cfg, rl.Stdout(), cmd.Logger)
	if err != nil {
		handleError(w, err)
		return
	}
	fmt.Fprintln(rl.Stdout(), "Enter help for the list of commands.")
	// failures are already reported line by line
	_ = sess.Run(r.Context(), readlineLines(rl))
}

func (cmd ReplCommand) script(w cli.Response, r *cli.Request, cfg config.Config) {
	sess, err := newSession(cfg, w, cmd.Logger)
	if err != nil {
		handleError(w, err)
		return
	}
	var body io.Reader = r.Body
	if body == nil {
		body = strings.NewReader("")
	}
	lines, scanErr := scannerLines(body)
	runErr := sess.Run(r.Context(), lines)
	if err := errorkit.Merge(runErr, scanErr()); err != nil {
		w.ExitCode(exitCodeError)
	}
}

func readlineLines(rl *readline.Instance) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return
				}
				continue
			}
			if err != nil {
				return
			}
			if !yield(line) {
				return
			}
		}
	}
}

func scannerLines(in io.Reader) (iter.Seq[string], func() error) {
	var scanErr error
	seq := func(yield func(string) bool) {
		for line, err := range iterkit.BufioScanner[string](bufio.NewScanner(in), nil) {
			if err != nil {
				scanErr = err
				return
			}
			if !yield(line) {
				return
			}
		}
	}
	return seq, func() error { return scanErr }
}

func completer() *readline.PrefixCompleter {
	var kinds []readline.PrefixCompleterInterface
	kinds = append(kinds, readline.PcItem("all"))
	for _, kind := range order.Kinds() {
		kinds = append(kinds, readline.PcItem(kind.String()))
	}
	var items []readline.PrefixCompleterInterface
	for _, name := range shell.Commands() {
		switch name {
		case "order":
			items = append(items, readline.PcItem(name, kinds...))
		case "format":
			items = append(items, readline.PcItem(name,
				readline.PcItem(string(render.FormatText)),
				readline.PcItem(string(render.FormatJSON))))
		default:
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

func coalesce(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}
