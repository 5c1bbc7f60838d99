package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/backoffice/internal/client/resource"
)

// View renders the console.
func (m Model) View() string {
	k := m.current()
	if k == nil {
		return "No resource kinds configured.\n"
	}
	s := k.Snapshot()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Backoffice") + "\n")
	sb.WriteString(m.renderTabs() + "\n\n")

	switch {
	case s.Mode.IsOpen():
		sb.WriteString(m.renderForm(s))
	case !m.loaded[s.Kind]:
		sb.WriteString(m.styles.Muted.Render("Loading "+strings.ToLower(k.Title())+"...") + "\n")
	default:
		sb.WriteString(m.renderList(s))
	}

	sb.WriteString("\n" + m.renderStatus(s) + "\n")
	sb.WriteString(m.renderHelp(s))
	return sb.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, len(m.kinds))
	for i, k := range m.kinds {
		style := m.styles.Tab
		if i == m.active {
			style = m.styles.ActiveTab
		}
		tabs[i] = style.Render(k.Title())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderList(s resource.Snapshot) string {
	var sb strings.Builder

	if m.searching || s.Display == resource.DisplaySearch {
		box := m.styles.Box
		if m.searching {
			box = m.styles.FocusBox
		}
		sb.WriteString(box.Render(m.search.View()) + "\n")
	}

	if len(s.Rows) == 0 {
		sb.WriteString(m.styles.Muted.Render("No records.") + "\n")
	} else {
		sb.WriteString(m.table.View() + "\n")
	}

	if s.Display == resource.DisplaySearch {
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d match(es) for %q, at most %d shown",
			len(s.Rows), s.Search, resource.SearchLimit)))
	} else {
		sb.WriteString(fmt.Sprintf("%s  %s", m.pager.View(),
			m.styles.Muted.Render(fmt.Sprintf("%d per page, %d total", s.PageSize, s.Total))))
	}
	sb.WriteString("\n")

	if m.confirming {
		sb.WriteString("\n" + m.styles.Warning.Render(
			fmt.Sprintf("Delete %s %d? %s (y/n)", s.Kind, m.confirmID, resource.DeletePrompt)) + "\n")
	}
	return sb.String()
}

func (m Model) renderForm(s resource.Snapshot) string {
	var sb strings.Builder

	title := "New " + s.Kind
	if id, ok := s.Mode.EditingID(); ok {
		title = fmt.Sprintf("Edit %s %d", s.Kind, id)
	}
	sb.WriteString(m.styles.Label.Render(title) + "\n\n")

	for i, f := range m.current().Fields() {
		if i >= len(m.inputs) {
			break
		}
		sb.WriteString(m.styles.Label.Render(f.DisplayName()) + "\n")
		box := m.styles.Box
		if i == m.focus {
			box = m.styles.FocusBox
		}
		sb.WriteString(box.Render(m.inputs[i].View()) + "\n")
		if msg := s.ErrorFor(f.Name); msg != "" {
			sb.WriteString(m.styles.Error.Render(msg) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderStatus(s resource.Snapshot) string {
	switch {
	case m.err != nil:
		return m.styles.Error.Render("Error: " + m.err.Error())
	case s.Busy:
		return m.styles.Muted.Render("Working...")
	case m.status != "":
		return m.styles.Muted.Render(m.status)
	}
	return ""
}

func (m Model) renderHelp(s resource.Snapshot) string {
	switch {
	case m.confirming:
		return m.help.ShortHelpView(nil)
	case s.Mode.IsOpen():
		return m.help.ShortHelpView(m.keys.formHelp())
	case m.searching:
		return m.help.ShortHelpView(m.keys.searchHelp())
	}
	return m.help.ShortHelpView(m.keys.listHelp())
}
