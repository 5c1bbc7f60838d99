package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/client/resources"
	"github.com/dmitrijs2005/backoffice/internal/common"
)

// PageSizes are the sizes the page size key cycles through.
var PageSizes = []int{5, 10, 25}

const defaultWidth = 100

// Model is the bubbletea model of the console: one tab per kind, the list
// of the active kind and, when open, its form.
type Model struct {
	ctx    context.Context
	kinds  []resources.Kind
	active int
	loaded map[string]bool

	table table.Model
	rows  []resource.Row
	pager paginator.Model

	search    textinput.Model
	searching bool

	inputs   []textinput.Model
	formMode resource.Mode
	focus    int

	confirming bool
	confirmID  int64

	status string
	err    error

	width  int
	height int
	keys   keyMap
	help   help.Model
	styles Styles
}

// New builds the model over the kinds of cat. Remote calls use ctx.
func New(ctx context.Context, cat *resources.Catalog) Model {
	search := textinput.New()
	search.Placeholder = "prefix..."
	search.Prompt = "/ "
	search.CharLimit = 100
	search.Width = 40
	search.Cursor.SetMode(cursor.CursorStatic)

	pager := paginator.New()
	pager.Type = paginator.Arabic

	m := Model{
		ctx:    ctx,
		kinds:  cat.Kinds(),
		loaded: make(map[string]bool),
		table:  table.New(table.WithFocused(true), table.WithHeight(resource.DefaultPageSize+2)),
		pager:  pager,
		search: search,
		width:  defaultWidth,
		keys:   defaultKeyMap(),
		help:   help.New(),
		styles: DefaultStyles(),
	}
	m.sync()
	return m
}

// Init loads the first kind.
func (m Model) Init() tea.Cmd {
	if k := m.current(); k != nil {
		return refreshCmd(m.ctx, k)
	}
	return nil
}

func (m Model) current() resources.Kind {
	if len(m.kinds) == 0 {
		return nil
	}
	return m.kinds[m.active]
}

func (m Model) snapshot() resource.Snapshot {
	if k := m.current(); k != nil {
		return k.Snapshot()
	}
	return resource.Snapshot{}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.sync()
		return m, nil

	case refreshedMsg:
		m.loaded[msg.kind] = true
		if m.isCurrent(msg.kind) {
			m.err = msg.err
			m.clampPage()
		}
		m.sync()
		return m, nil

	case submittedMsg:
		var verr *resource.ValidationError
		switch {
		case errors.As(msg.err, &verr):
			m.status, m.err = "", nil
		case msg.err != nil:
			m.status, m.err = "", msg.err
		default:
			m.status, m.err = "Saved", nil
		}
		if m.isCurrent(msg.kind) {
			m.clampPage()
		}
		m.sync()
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.status, m.err = "", msg.err
		} else {
			m.status, m.err = fmt.Sprintf("Deleted %s %d", msg.kind, msg.id), nil
		}
		if m.isCurrent(msg.kind) {
			m.clampPage()
		}
		m.sync()
		return m, nil

	case cancelledMsg:
		m.status, m.err = "", msg.err
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.current() == nil {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		switch {
		case m.confirming:
			return m.updateConfirm(msg)
		case m.snapshot().Mode.IsOpen():
			return m.updateForm(msg)
		case m.searching:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) isCurrent(kind string) bool {
	k := m.current()
	return k != nil && k.Kind() == kind
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.current()
	s := k.Snapshot()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextKind), key.Matches(msg, m.keys.PrevKind):
		step := 1
		if key.Matches(msg, m.keys.PrevKind) {
			step = len(m.kinds) - 1
		}
		m.active = (m.active + step) % len(m.kinds)
		m.status, m.err = "", nil
		m.sync()
		if next := m.current(); !m.loaded[next.Kind()] {
			return m, refreshCmd(m.ctx, next)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(s.Search)
		m.search.CursorEnd()
		m.search.Focus()
		k.Search(s.Search)
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.New):
		if err := k.New(); err != nil {
			m.err = err
			return m, nil
		}
		m.status, m.err = "", nil
		m.openForm()
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !row.HasID {
			m.err = common.ErrMissingID
			return m, nil
		}
		if err := k.EditByID(row.ID); err != nil {
			m.err = err
			return m, nil
		}
		m.status, m.err = "", nil
		m.openForm()
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !row.HasID {
			m.err = common.ErrMissingID
			return m, nil
		}
		m.confirming, m.confirmID = true, row.ID
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.status = "Refreshing..."
		return m, refreshCmd(m.ctx, k)

	case key.Matches(msg, m.keys.NextPage):
		if s.PageIndex+1 < s.PageCount() {
			k.ChangePage(resource.PageEvent{Index: s.PageIndex + 1, Size: s.PageSize})
		} else if s.Display == resource.DisplaySearch {
			k.ChangePage(resource.PageEvent{Index: s.PageIndex, Size: s.PageSize})
		}
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		k.ChangePage(resource.PageEvent{Index: max(min(s.PageIndex-1, s.PageCount()-1), 0), Size: s.PageSize})
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		k.ChangePage(resource.PageEvent{Index: 0, Size: nextPageSize(s.PageSize)})
		m.sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.current()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.searching = false
		m.search.Blur()
		s := k.Snapshot()
		k.ChangePage(resource.PageEvent{Index: s.PageIndex, Size: s.PageSize})
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	k.Search(m.search.Value())
	m.sync()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.current()
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m, cancelCmd(m.ctx, k)

	case key.Matches(msg, m.keys.Submit):
		m.status = "Saving..."
		return m, submitCmd(m.ctx, k, m.formValues())

	case key.Matches(msg, m.keys.NextField):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.setFocus(m.focus - 1 + len(m.inputs))
		return m, nil
	}

	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirming = false
		m.status = "Deleting..."
		return m, deleteCmd(m.ctx, m.current(), m.confirmID)
	case key.Matches(msg, m.keys.Deny):
		m.confirming = false
		m.status = "Not deleted"
		return m, nil
	}
	return m, nil
}

func (m Model) selected() (resource.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return resource.Row{}, false
	}
	return m.rows[i], true
}

func (m Model) formValues() resource.Values {
	values := resource.Values{}
	for i, f := range m.current().Fields() {
		if i < len(m.inputs) {
			values[f.Name] = m.inputs[i].Value()
		}
	}
	return values
}

func (m *Model) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	m.focus = i % len(m.inputs)
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// clampPage moves a page index left past the end of a shrunken collection
// back to the last page.
func (m *Model) clampPage() {
	k := m.current()
	s := k.Snapshot()
	if s.Display != resource.DisplayPage || s.Mode.IsOpen() {
		return
	}
	last := max(s.PageCount()-1, 0)
	if s.PageIndex > last {
		k.ChangePage(resource.PageEvent{Index: last, Size: s.PageSize})
	}
}

// sync copies the active controller's state into the widgets.
func (m *Model) sync() {
	k := m.current()
	if k == nil {
		return
	}
	s := k.Snapshot()

	m.rows = s.Rows
	rows := make([]table.Row, len(s.Rows))
	for i, r := range s.Rows {
		rows[i] = table.Row(r.Cells)
	}
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns(k.Columns()))
	m.table.SetRows(rows)
	m.table.SetHeight(max(s.PageSize, resource.SearchLimit) + 2)
	if c := m.table.Cursor(); c >= len(rows) || c < 0 {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	m.pager.PerPage = max(s.PageSize, 1)
	m.pager.SetTotalPages(s.Total)
	m.pager.Page = s.PageIndex

	if !s.Mode.IsOpen() {
		m.inputs = nil
		m.formMode = resource.Closed()
		m.focus = 0
		return
	}
	if m.inputs == nil || s.Mode != m.formMode {
		m.inputs = m.newInputs(k.Fields(), s.Form)
		m.formMode = s.Mode
		m.focus = 0
	}
}

// openForm rebuilds the inputs from the controller's form values.
func (m *Model) openForm() {
	m.inputs = nil
	m.sync()
}

func (m Model) newInputs(fields []resource.Field, values resource.Values) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = f.DisplayName()
		ti.CharLimit = 255
		ti.Width = max(m.width-10, 20)
		ti.Cursor.SetMode(cursor.CursorStatic)
		ti.SetValue(values[f.Name])
		if i == 0 {
			ti.Focus()
		}
		inputs[i] = ti
	}
	return inputs
}

func (m Model) columns(names []string) []table.Column {
	const idWidth = 6
	rest := len(names) - 1
	width := 20
	if rest > 0 {
		width = max((m.width-idWidth-2*len(names))/rest, 10)
	}
	cols := make([]table.Column, len(names))
	for i, n := range names {
		w := width
		if i == 0 {
			w = idWidth
		}
		cols[i] = table.Column{Title: n, Width: w}
	}
	return cols
}

func nextPageSize(current int) int {
	for _, s := range PageSizes {
		if s > current {
			return s
		}
	}
	return PageSizes[0]
}
