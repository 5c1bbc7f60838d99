package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Kinds(ctx context.Context) error
	Use(ctx context.Context, kind string) error
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Page(ctx context.Context, index, size int) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Search(ctx context.Context, query string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
	Save(ctx context.Context) error
	Cancel(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	Show(ctx context.Context, id int64) error
	Find(ctx context.Context, name string) error
}

const helpText = `Available commands:
  kinds                 list resource kinds
  use <kind>            switch to a kind (task, employee, message, ...)
  (l)ist                show the current page or search result
  refresh               re-fetch the collection
  page <index> [size]   go to a page (index starts at 0)
  next | prev           move one page
  search <text>         prefix search (first 5 matches)
  new                   create a record
  edit <id>             edit a record
  save                  fill in and submit the open form again
  cancel                discard the open form
  delete <id>           delete a record
  show <id>             fetch one record by id
  find <name>           fetch one record by name
  exit | quit           leave the program`

// runREPL starts a simple read–eval–print loop over the console commands.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on a. Handler errors are printed and the loop goes
// on. The loop exits on EOF or when the user types "exit" or "quit".
// Handlers that prompt for more input share reader with the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bo %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("Error:", err)
			}
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if err := dispatch(ctx, a, cmd, args); err != nil {
			printlnFn("Error:", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		printlnFn(helpText)
		return nil

	case "kinds":
		return a.Kinds(ctx)

	case "use":
		if len(args) != 1 {
			return usage("use <kind>")
		}
		return a.Use(ctx, args[0])

	case "l", "list":
		return a.List(ctx)

	case "refresh":
		return a.Refresh(ctx)

	case "page":
		if len(args) < 1 || len(args) > 2 {
			return usage("page <index> [size]")
		}
		index, err := parseNonNegative(args[0])
		if err != nil {
			return err
		}
		size := 0
		if len(args) == 2 {
			if size, err = parseNonNegative(args[1]); err != nil {
				return err
			}
			if size == 0 {
				return errors.New("page size must be positive")
			}
		}
		return a.Page(ctx, index, size)

	case "next":
		return a.Next(ctx)

	case "prev":
		return a.Prev(ctx)

	case "search":
		return a.Search(ctx, strings.Join(args, " "))

	case "new":
		return a.New(ctx)

	case "edit", "delete", "show":
		if len(args) != 1 {
			return usage(cmd + " <id>")
		}
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		switch cmd {
		case "edit":
			return a.Edit(ctx, id)
		case "delete":
			return a.Delete(ctx, id)
		default:
			return a.Show(ctx, id)
		}

	case "find":
		if len(args) == 0 {
			return usage("find <name>")
		}
		return a.Find(ctx, strings.Join(args, " "))

	case "save":
		return a.Save(ctx)

	case "cancel":
		return a.Cancel(ctx)

	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}

type usageError string

func (u usageError) Error() string {
	return "usage: " + string(u)
}

func usage(s string) error {
	return usageError(s)
}
