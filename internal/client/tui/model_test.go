package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/backoffice/internal/client/models"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/client/resources"
	"github.com/dmitrijs2005/backoffice/internal/client/resources/resourcestest"
)

var taskNames = []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf"}

func seedTasks() *resourcestest.Memory[models.Task] {
	items := make([]models.Task, len(taskNames))
	for i, n := range taskNames {
		items[i] = models.Task{ID: models.NewID(int64(i + 1)), Name: n, Contenu: "about " + n}
	}
	return resourcestest.Tasks(items...)
}

func forums(names ...string) *resourcestest.Memory[models.Forum] {
	items := make([]models.Forum, len(names))
	for i, n := range names {
		items[i] = models.Forum{ID: models.NewID(int64(i + 1)), Name: n}
	}
	return resourcestest.NewMemory("Forum",
		func(f models.Forum) (int64, bool) { return models.IDOf(f.ID) },
		func(f models.Forum, id int64) models.Forum { f.ID = models.NewID(id); return f },
		func(f models.Forum) string { return f.Name },
		items...)
}

func newTestModel(t *testing.T, tasks *resourcestest.Memory[models.Task], extra ...resources.Kind) Model {
	t.Helper()
	k, err := resources.Bind[models.Task](tasks, resources.TaskResource())
	require.NoError(t, err)
	cat, err := resources.NewCatalog(append([]resources.Kind{k}, extra...)...)
	require.NoError(t, err)

	m := New(context.Background(), cat)
	cmd := m.Init()
	require.NotNil(t, cmd)
	return send(t, m, cmd())
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

// press sends a key and runs the command it returns, feeding the result
// back. Only the package's own remote commands are run.
func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	updated, cmd := m.Update(k)
	m = updated.(Model)
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case refreshedMsg, submittedMsg, deletedMsg, cancelledMsg:
		return send(t, m, msg)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, runes(string(r)))
	}
	return m
}

var (
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keySave  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestModel_InitLoadsFirstPage(t *testing.T) {
	m := newTestModel(t, seedTasks())

	view := m.View()
	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "alpha")
	assert.Contains(t, view, "echo")
	assert.NotContains(t, view, "foxtrot")
	assert.Contains(t, view, "1/2")
	assert.Contains(t, view, "5 per page, 7 total")
}

func TestModel_LoadingView(t *testing.T) {
	k, err := resources.Bind[models.Task](seedTasks(), resources.TaskResource())
	require.NoError(t, err)
	cat, err := resources.NewCatalog(k)
	require.NoError(t, err)

	m := New(context.Background(), cat)
	assert.Contains(t, m.View(), "Loading tasks...")
}

func TestModel_Paging(t *testing.T) {
	m := newTestModel(t, seedTasks())

	m = press(t, m, keyRight)
	assert.Equal(t, 1, m.snapshot().PageIndex)
	assert.Contains(t, m.View(), "golf")
	assert.Contains(t, m.View(), "2/2")

	m = press(t, m, keyRight)
	assert.Equal(t, 1, m.snapshot().PageIndex, "stays on the last page")

	m = press(t, m, keyLeft)
	m = press(t, m, keyLeft)
	assert.Equal(t, 0, m.snapshot().PageIndex)

	m = press(t, m, runes("s"))
	s := m.snapshot()
	assert.Equal(t, 10, s.PageSize)
	assert.Len(t, s.Rows, 7)
}

func TestModel_SearchIsLiveAndEscReturnsToPages(t *testing.T) {
	m := newTestModel(t, seedTasks())

	m = press(t, m, runes("/"))
	require.True(t, m.searching)
	assert.Empty(t, m.snapshot().Rows, "empty search shows nothing")

	m = typeText(t, m, "GO")
	s := m.snapshot()
	assert.Equal(t, resource.DisplaySearch, s.Display)
	require.Len(t, s.Rows, 1)
	assert.Equal(t, "golf", s.Rows[0].Cells[1])
	assert.Contains(t, m.View(), `1 match(es) for "GO"`)

	m = press(t, m, keyEsc)
	assert.False(t, m.searching)
	assert.Equal(t, resource.DisplayPage, m.snapshot().Display)
	assert.Len(t, m.snapshot().Rows, 5)
}

func TestModel_CreateRecord(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	m = press(t, m, runes("n"))
	require.Equal(t, resource.CreateMode(), m.snapshot().Mode)
	assert.Contains(t, m.View(), "New task")
	assert.Empty(t, m.snapshot().Rows, "list hidden while the form is open")

	m = typeText(t, m, "Write docs")
	m = press(t, m, keyTab)
	m = typeText(t, m, "for every package")
	m = press(t, m, keySave)

	assert.Equal(t, resource.Closed(), m.snapshot().Mode)
	assert.Nil(t, m.inputs)
	assert.Contains(t, m.View(), "Saved")
	items := mem.Items()
	require.Len(t, items, 8)
	assert.Equal(t, "Write docs", items[7].Name)
	assert.Equal(t, "for every package", items[7].Contenu)
}

func TestModel_NewFormWhileSaveIsReportedStartsEmpty(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	m = press(t, m, runes("n"))
	m = typeText(t, m, "zulu")
	m = press(t, m, keyTab)
	m = typeText(t, m, "body text")

	updated, cmd := m.Update(keySave)
	m = updated.(Model)
	require.NotNil(t, cmd)
	saved := cmd()
	require.Equal(t, resource.Closed(), m.snapshot().Mode)

	m = press(t, m, runes("n"))
	m = send(t, m, saved)

	require.Equal(t, resource.CreateMode(), m.snapshot().Mode)
	assert.Equal(t, resource.Values{"name": "", "contenu": ""}, m.formValues())
	assert.Equal(t, 0, m.focus)
	require.Len(t, mem.Items(), 8)

	m = press(t, m, keySave)
	assert.Len(t, mem.Items(), 8, "empty form is not posted")
	assert.Equal(t, resource.CreateMode(), m.snapshot().Mode)
}

func TestModel_CancelledFormIsNotReused(t *testing.T) {
	m := newTestModel(t, seedTasks())

	m = press(t, m, runes("n"))
	m = typeText(t, m, "draft")

	updated, cmd := m.Update(keyEsc)
	m = updated.(Model)
	require.NotNil(t, cmd)
	cancelled := cmd()

	m = press(t, m, runes("n"))
	m = send(t, m, cancelled)

	require.Equal(t, resource.CreateMode(), m.snapshot().Mode)
	assert.Equal(t, "", m.inputs[0].Value())
}

func TestModel_InvalidFormShowsFieldErrors(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	m = press(t, m, runes("n"))
	m = typeText(t, m, "abc")
	m = press(t, m, keySave)

	assert.Equal(t, resource.CreateMode(), m.snapshot().Mode)
	view := m.View()
	assert.Contains(t, view, "name should have at least 4 Characters")
	assert.Contains(t, view, "contenu is Required")
	assert.Equal(t, "abc", m.inputs[0].Value(), "typed values survive")
	assert.Equal(t, []string{"findAll"}, mem.Calls())
}

func TestModel_EditSelectedRow(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	m = press(t, m, keyDown)
	m = press(t, m, runes("e"))

	require.Equal(t, resource.EditMode(2), m.snapshot().Mode)
	assert.Contains(t, m.View(), "Edit task 2")
	require.Len(t, m.inputs, 2)
	assert.Equal(t, "bravo", m.inputs[0].Value())

	m = typeText(t, m, "!")
	m = press(t, m, keySave)

	assert.Equal(t, resource.Closed(), m.snapshot().Mode)
	assert.Equal(t, "bravo!", mem.Items()[1].Name)
	assert.Equal(t, []string{"findAll", "update", "findAll"}, mem.Calls())
}

func TestModel_CancelForm(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	m = press(t, m, runes("n"))
	m = typeText(t, m, "draft")
	m = press(t, m, keyEsc)

	assert.Equal(t, resource.Closed(), m.snapshot().Mode)
	assert.Empty(t, m.snapshot().Form)
	assert.Equal(t, []string{"findAll", "findAll"}, mem.Calls())
}

func TestModel_DeleteAsksFirst(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	m = press(t, m, runes("d"))
	require.True(t, m.confirming)
	assert.Contains(t, m.View(), "Delete task 1? Are you sure? (y/n)")

	m = press(t, m, runes("n"))
	assert.False(t, m.confirming)
	assert.Len(t, mem.Items(), 7)

	m = press(t, m, runes("d"))
	m = press(t, m, runes("y"))
	assert.Len(t, mem.Items(), 6)
	assert.Contains(t, m.View(), "Deleted task 1")
	assert.Equal(t, []string{"findAll", "delete", "findAll"}, mem.Calls())
}

func TestModel_DeletingLastPageClampsIndex(t *testing.T) {
	m := newTestModel(t, seedTasks())

	m = press(t, m, keyRight)
	m = press(t, m, runes("d"))
	m = press(t, m, runes("y"))
	assert.Equal(t, 1, m.snapshot().PageIndex)

	m = press(t, m, runes("d"))
	m = press(t, m, runes("y"))

	s := m.snapshot()
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 0, s.PageIndex)
	assert.Len(t, s.Rows, 5)
}

func TestModel_RefreshFailureIsShown(t *testing.T) {
	mem := seedTasks()
	m := newTestModel(t, mem)

	mem.Fail("findAll", errors.New("connection refused"))
	m = press(t, m, runes("r"))

	view := m.View()
	assert.Contains(t, view, "Error:")
	assert.Contains(t, view, "connection refused")
	assert.Contains(t, view, "alpha", "previous collection is kept")
}

func TestModel_TabSwitchesKindAndLoadsIt(t *testing.T) {
	fm := forums("General", "Announcements")
	fk, err := resources.Bind[models.Forum](fm, resources.ForumResource())
	require.NoError(t, err)

	m := newTestModel(t, seedTasks(), fk)
	assert.Empty(t, fm.Calls())

	m = press(t, m, keyTab)
	assert.Equal(t, "forum", m.current().Kind())
	assert.Equal(t, []string{"findAll"}, fm.Calls())
	assert.Contains(t, m.View(), "Announcements")

	m = press(t, m, keyTab)
	m = press(t, m, keyTab)
	assert.Equal(t, "forum", m.current().Kind())
	assert.Equal(t, []string{"findAll"}, fm.Calls(), "loaded kinds are not re-fetched on switch")
}

func TestModel_BackgroundRefreshErrorStaysOnItsKind(t *testing.T) {
	fk, err := resources.Bind[models.Forum](forums("General"), resources.ForumResource())
	require.NoError(t, err)

	m := newTestModel(t, seedTasks(), fk)
	m = press(t, m, keyTab)
	require.Equal(t, "forum", m.current().Kind())

	m = send(t, m, refreshedMsg{kind: "task", err: errors.New("connection refused")})

	assert.NoError(t, m.err)
	assert.NotContains(t, m.View(), "connection refused")
	assert.Contains(t, m.View(), "General")
}

func TestModel_CtrlCReturnsQuit(t *testing.T) {
	m := newTestModel(t, seedTasks())
	m = press(t, m, runes("n"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, seedTasks())
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	cols := m.table.Columns()
	require.Len(t, cols, 3)
	assert.Equal(t, 6, cols[0].Width)
	assert.True(t, strings.EqualFold(cols[1].Title, "name"))
}

func TestNextPageSize(t *testing.T) {
	assert.Equal(t, 10, nextPageSize(5))
	assert.Equal(t, 25, nextPageSize(10))
	assert.Equal(t, 5, nextPageSize(25))
	assert.Equal(t, 5, nextPageSize(3))
}
