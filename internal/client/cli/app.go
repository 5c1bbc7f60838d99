package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/backoffice/internal/client/resources"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

// App is the line-oriented console: one current kind, commands read from
// reader, output written to out.
type App struct {
	catalog *resources.Catalog
	current resources.Kind
	reader  *bufio.Reader
	out     io.Writer
	logger  logging.Logger
}

// NewApp builds the console over cat, reading os.Stdin.
func NewApp(cat *resources.Catalog, logger logging.Logger) *App {
	return newApp(cat, bufio.NewReader(os.Stdin), os.Stdout, logger)
}

func newApp(cat *resources.Catalog, reader *bufio.Reader, out io.Writer, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	a := &App{catalog: cat, reader: reader, out: out, logger: logger}
	if kinds := cat.Kinds(); len(kinds) > 0 {
		a.current = kinds[0]
	}
	return a
}

// Catalog returns the kinds the app works with.
func (a *App) Catalog() *resources.Catalog {
	return a.catalog
}

// Run loads the first kind and blocks in the REPL until the user exits,
// the input ends or ctx is done.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Backoffice console (type 'help' for commands)")
	if err := a.Refresh(ctx); err != nil {
		printlnFn("Error:", err)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	s := a.current.Snapshot()
	if s.Mode.IsOpen() {
		return fmt.Sprintf("(%s %s)", s.Kind, s.Mode)
	}
	return fmt.Sprintf("(%s)", s.Kind)
}
