package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	calls []string
	err   error
}

func (f *fakeExec) add(format string, args ...any) error {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
	return f.err
}

func (f *fakeExec) Kinds(context.Context) error          { return f.add("kinds") }
func (f *fakeExec) Use(_ context.Context, k string) error { return f.add("use %s", k) }
func (f *fakeExec) List(context.Context) error           { return f.add("list") }
func (f *fakeExec) Refresh(context.Context) error        { return f.add("refresh") }
func (f *fakeExec) Page(_ context.Context, i, s int) error {
	return f.add("page %d %d", i, s)
}
func (f *fakeExec) Next(context.Context) error              { return f.add("next") }
func (f *fakeExec) Prev(context.Context) error              { return f.add("prev") }
func (f *fakeExec) Search(_ context.Context, q string) error { return f.add("search %q", q) }
func (f *fakeExec) New(context.Context) error               { return f.add("new") }
func (f *fakeExec) Edit(_ context.Context, id int64) error  { return f.add("edit %d", id) }
func (f *fakeExec) Save(context.Context) error              { return f.add("save") }
func (f *fakeExec) Cancel(context.Context) error            { return f.add("cancel") }
func (f *fakeExec) Delete(_ context.Context, id int64) error { return f.add("delete %d", id) }
func (f *fakeExec) Show(_ context.Context, id int64) error  { return f.add("show %d", id) }
func (f *fakeExec) Find(_ context.Context, n string) error  { return f.add("find %q", n) }

// capturePrintln collects printlnFn output for the duration of the test.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"kinds",
		"use employee",
		"l",
		"refresh",
		"page 2",
		"page 1 10",
		"next",
		"prev",
		"search  a1 b ",
		"search",
		"new",
		"edit 3",
		"save",
		"cancel",
		"delete 7",
		"show 9",
		"find Ada Lovelace",
		"",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(task)" }, rdr(input))

	assert.Equal(t, []string{
		"kinds",
		"use employee",
		"list",
		"refresh",
		"page 2 0",
		"page 1 10",
		"next",
		"prev",
		`search "a1 b"`,
		`search ""`,
		"new",
		"edit 3",
		"save",
		"cancel",
		"delete 7",
		"show 9",
		`find "Ada Lovelace"`,
	}, exec.calls)
}

func TestRunREPL_UsageErrorsMakeNoCalls(t *testing.T) {
	out := capturePrintln(t)

	input := "use\nedit\nedit x\ndelete -1\npage\npage a\npage 1 0\nfind\nfoobar\nquit\n"
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr(input))

	assert.Empty(t, exec.calls)
	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, "Error: usage: use <kind>")
	assert.Contains(t, joined, "Error: usage: edit <id>")
	assert.Contains(t, joined, `Error: invalid id "x"`)
	assert.Contains(t, joined, `Error: invalid id "-1"`)
	assert.Contains(t, joined, `Error: invalid number "a"`)
	assert.Contains(t, joined, "Error: page size must be positive")
	assert.Contains(t, joined, "Unknown command: foobar")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_HandlerErrorsArePrintedAndLoopContinues(t *testing.T) {
	out := capturePrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("list\nkinds\n"))

	assert.Equal(t, []string{"list", "kinds"}, exec.calls)
	assert.Contains(t, *out, "Error: boom")
}

func TestRunREPL_PromptShowsStatusAndHelp(t *testing.T) {
	out := capturePrintln(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "(forum)" }, rdr("help"))

	assert.Equal(t, "bo (forum)> ", (*out)[0])
	assert.Contains(t, (*out)[1], "search <text>")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, rdr("list\nkinds\n"))

	assert.Equal(t, []string{"list"}, exec.calls)
}
