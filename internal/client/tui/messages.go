package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
)

// Remote calls run as commands; each reports back with one of these.
type (
	refreshedMsg struct {
		kind string
		err  error
	}
	submittedMsg struct {
		kind string
		err  error
	}
	deletedMsg struct {
		kind string
		id   int64
		err  error
	}
	cancelledMsg struct {
		kind string
		err  error
	}
)

func refreshCmd(ctx context.Context, k resource.Handle) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{kind: k.Kind(), err: k.Refresh(ctx)}
	}
}

func submitCmd(ctx context.Context, k resource.Handle, values resource.Values) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{kind: k.Kind(), err: k.Submit(ctx, values)}
	}
}

// deleteCmd runs after the user confirmed in the UI.
func deleteCmd(ctx context.Context, k resource.Handle, id int64) tea.Cmd {
	return func() tea.Msg {
		err := k.DeleteByID(ctx, id, func(string) bool { return true })
		return deletedMsg{kind: k.Kind(), id: id, err: err}
	}
}

func cancelCmd(ctx context.Context, k resource.Handle) tea.Cmd {
	return func() tea.Msg {
		return cancelledMsg{kind: k.Kind(), err: k.Cancel(ctx)}
	}
}
