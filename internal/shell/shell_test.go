package shell_test

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/multiorder/internal/shell"
	"go.llib.dev/multiorder/pkg/container"
	"go.llib.dev/multiorder/pkg/order"
)

func newIntShell(tb testing.TB, vs ...int) (*shell.Shell[int], *bytes.Buffer, logging.StubOutput) {
	logger, logs := logging.Stub(tb)
	out := &bytes.Buffer{}
	return shell.New(container.New(vs...), shell.ParseInt, out, logger), out, logs
}

func TestShell_Exec_add(t *testing.T) {
	sh, _, _ := newIntShell(t)
	require.NoError(t, sh.Exec(context.Background(), "add 3 1 5"))
	require.NoError(t, sh.Exec(context.Background(), "ADD 2"))
	require.Equal(t, []int{3, 1, 5, 2}, sh.Container.ToSlice())

	err := sh.Exec(context.Background(), "add")
	require.ErrorIs(t, err, shell.ErrUsage)

	err = sh.Exec(context.Background(), "add 7 x")
	require.ErrorIs(t, err, shell.ErrInvalidValue)
	require.Equal(t, 4, sh.Container.Len(), "a partially invalid add should not add anything")
}

func TestShell_Exec_remove(t *testing.T) {
	sh, _, _ := newIntShell(t, 1, 2, 1)
	require.NoError(t, sh.Exec(context.Background(), "remove 1"))
	require.Equal(t, []int{2, 1}, sh.Container.ToSlice())

	require.ErrorIs(t, sh.Exec(context.Background(), "remove 42"), container.ErrNotFound)
	require.ErrorIs(t, sh.Exec(context.Background(), "remove 1 2"), shell.ErrUsage)
}

func TestShell_Exec_getAndSet(t *testing.T) {
	sh, out, _ := newIntShell(t, 10, 20, 30)
	require.NoError(t, sh.Exec(context.Background(), "get 1"))
	require.Equal(t, "20\n", out.String())

	require.NoError(t, sh.Exec(context.Background(), "set 1 25"))
	require.Equal(t, []int{10, 25, 30}, sh.Container.ToSlice())

	require.ErrorIs(t, sh.Exec(context.Background(), "get 3"), container.ErrOutOfRange)
	require.ErrorIs(t, sh.Exec(context.Background(), "set -1 0"), container.ErrOutOfRange)
	require.ErrorIs(t, sh.Exec(context.Background(), "get one"), shell.ErrInvalidValue)
	require.ErrorIs(t, sh.Exec(context.Background(), "set 0"), shell.ErrUsage)
}

func TestShell_Exec_sizePrintClear(t *testing.T) {
	sh, out, _ := newIntShell(t, 1, 2, 3)
	require.NoError(t, sh.Exec(context.Background(), "size"))
	require.NoError(t, sh.Exec(context.Background(), "print"))
	require.NoError(t, sh.Exec(context.Background(), "clear"))
	require.NoError(t, sh.Exec(context.Background(), "size"))
	require.NoError(t, sh.Exec(context.Background(), "print"))
	require.Equal(t, "3\n[1,2,3]\n0\n[]\n", out.String())
}

func TestShell_Exec_order(t *testing.T) {
	sh, out, _ := newIntShell(t, 3, 1, 5, 2, 4)

	require.NoError(t, sh.Exec(context.Background(), "order side-cross"))
	require.Equal(t, "Side Cross Order: 1 5 2 4 3\n", out.String())

	out.Reset()
	require.NoError(t, sh.Exec(context.Background(), "order"))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(order.Kinds()))
	require.Equal(t, "Middle Out Order: 5 1 2 3 4", lines[len(lines)-1])

	out.Reset()
	require.NoError(t, sh.Exec(context.Background(), "format json"))
	require.NoError(t, sh.Exec(context.Background(), "order desc"))
	require.JSONEq(t, `{"order":"descending","values":[5,4,3,2,1],"indices":[2,4,0,3,1]}`, out.String())

	require.ErrorIs(t, sh.Exec(context.Background(), "order sideways"), order.ErrUnknownKind)
	require.Error(t, sh.Exec(context.Background(), "format yaml"))
}

func TestShell_Exec_unknownCommand(t *testing.T) {
	sh, _, logs := newIntShell(t)
	err := sh.Exec(context.Background(), "push 1")
	require.ErrorIs(t, err, shell.ErrUnknownCommand)
	require.Contains(t, logs.String(), "command failed")
	require.Contains(t, logs.String(), "push 1")
}

func TestShell_Exec_blankAndComment(t *testing.T) {
	sh, out, logs := newIntShell(t)
	require.NoError(t, sh.Exec(context.Background(), "   "))
	require.NoError(t, sh.Exec(context.Background(), "# add 1"))
	require.Equal(t, 0, sh.Container.Len())
	require.Empty(t, out.String())
	require.Empty(t, logs.String())
}

func TestShell_Exec_logsCommands(t *testing.T) {
	sh, _, logs := newIntShell(t)
	require.NoError(t, sh.Exec(context.Background(), "add 1"))
	require.NoError(t, sh.Exec(context.Background(), "size"))
	require.Contains(t, logs.String(), "executing command")
	require.Contains(t, logs.String(), "session_id")
	require.Equal(t, 2, strings.Count(logs.String(), "executing command"))
}

func TestShell_Exec_help(t *testing.T) {
	sh, out, _ := newIntShell(t)
	require.NoError(t, sh.Exec(context.Background(), "help"))
	for _, name := range shell.Commands() {
		require.Contains(t, out.String(), name)
	}
	require.Contains(t, out.String(), "middle-out")
}

func TestShell_Run(t *testing.T) {
	sh, out, _ := newIntShell(t)
	err := sh.Run(context.Background(), slices.Values([]string{
		"add 3 1 2",
		"bogus",
		"order asc",
		"quit",
		"add 9",
	}))
	require.ErrorIs(t, err, shell.ErrUnknownCommand)
	require.Equal(t, []int{3, 1, 2}, sh.Container.ToSlice(), "lines after quit are not executed")
	require.Contains(t, out.String(), "error: ")
	require.Contains(t, out.String(), "Ascending Order: 1 2 3\n")
}

func TestShell_Run_noErrors(t *testing.T) {
	sh, _, _ := newIntShell(t)
	require.NoError(t, sh.Run(context.Background(), slices.Values([]string{"add 1", "add 2", "remove 1"})))
	require.Equal(t, []int{2}, sh.Container.ToSlice())
}

func TestShell_Run_cancelledContext(t *testing.T) {
	sh, _, _ := newIntShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sh.Run(ctx, slices.Values([]string{"add 1"}))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, sh.Container.Len())
}

func TestShell_strings(t *testing.T) {
	logger, _ := logging.Stub(t)
	out := &bytes.Buffer{}
	sh := shell.New(container.New[string](), shell.ParseString, out, logger)
	require.NoError(t, sh.Run(context.Background(), slices.Values([]string{
		"add pear apple fig",
		"order descending",
	})))
	require.Equal(t, "Descending Order: pear fig apple\n", out.String())
}

func TestShell_zeroLogger(t *testing.T) {
	sh := &shell.Shell[float64]{
		Container: container.New[float64](),
		Parse:     shell.ParseFloat,
		Out:       &bytes.Buffer{},
	}
	require.NoError(t, sh.Exec(context.Background(), "add 1.5 -2"))
	require.Equal(t, []float64{1.5, -2}, sh.Container.ToSlice())
}

func TestParsers(t *testing.T) {
	i, err := shell.ParseInt("-42")
	require.NoError(t, err)
	require.Equal(t, -42, i)
	_, err = shell.ParseInt("4.2")
	require.ErrorIs(t, err, shell.ErrInvalidValue)

	f, err := shell.ParseFloat("4.25")
	require.NoError(t, err)
	require.Equal(t, 4.25, f)
	_, err = shell.ParseFloat("four")
	require.ErrorIs(t, err, shell.ErrInvalidValue)

	s, err := shell.ParseString("x")
	require.NoError(t, err)
	require.Equal(t, "x", s)
}

func TestShell_AddValues(t *testing.T) {
	logger, _ := logging.Stub(t)
	sh := shell.New(container.New[string](), shell.ParseString, &bytes.Buffer{}, logger)
	require.NoError(t, sh.AddValues(context.Background(), []string{"hello world", "x"}))
	require.Equal(t, []string{"hello world", "x"}, sh.Container.ToSlice())

	ints, _, _ := newIntShell(t, 1)
	require.ErrorIs(t, ints.AddValues(context.Background(), []string{"2", "three"}), shell.ErrInvalidValue)
	require.Equal(t, []int{1}, ints.Container.ToSlice())
}
