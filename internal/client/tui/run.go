// Package tui is the full-screen terminal front end of the backoffice
// console, built on bubbletea.
//
// Every kind of the catalog gets a tab. The list shows the active kind's
// visible records in a table with a paginator; "/" opens the prefix search,
// "n" and "e" open the form, "d" asks before deleting. Remote calls run as
// tea.Cmds against the kind's resource.Controller and report back with a
// message, after which the widgets are re-synced from a controller snapshot.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/backoffice/internal/client/resources"
)

// Run starts the full-screen program and blocks until the user quits or
// ctx is done.
func Run(ctx context.Context, cat *resources.Catalog) error {
	p := tea.NewProgram(New(ctx, cat), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
