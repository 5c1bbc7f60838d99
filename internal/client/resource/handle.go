package resource

import (
	"context"
	"strconv"
)

// Handle is the type-independent view of a Controller used by front ends
// that work with several kinds at once.
type Handle interface {
	Kind() string
	Title() string
	Fields() []Field
	Columns() []string

	Refresh(ctx context.Context) error
	Search(q string)
	ChangePage(ev PageEvent)
	New() error
	EditByID(id int64) error
	Cancel(ctx context.Context) error
	Submit(ctx context.Context, values Values) error
	DeleteByID(ctx context.Context, id int64, confirm Confirm) error

	Snapshot() Snapshot
}

// Row is one listed record rendered as strings, in Columns order.
type Row struct {
	ID    int64
	HasID bool
	Cells []string
}

// Snapshot is a consistent, render-ready copy of a controller's state.
type Snapshot struct {
	Kind      string
	Mode      Mode
	Display   Display
	Search    string
	PageIndex int
	PageSize  int
	Total     int // records in the collection
	Rows      []Row
	Form      Values
	Errors    []FieldError
	Busy      bool
	Err       error
}

// PageCount is the number of pages of the whole collection.
func (s Snapshot) PageCount() int {
	return PageCount(s.Total, s.PageSize)
}

// ErrorFor returns the validation message of field, or "".
func (s Snapshot) ErrorFor(field string) string {
	return messageFor(s.Errors, field)
}

var _ Handle = (*Controller[struct{}])(nil)

func (c *Controller[E]) Kind() string {
	return c.res.Kind
}

func (c *Controller[E]) Title() string {
	if c.res.Title == "" {
		return c.res.Kind
	}
	return c.res.Title
}

func (c *Controller[E]) Fields() []Field {
	return append([]Field(nil), c.res.Fields...)
}

func (c *Controller[E]) Columns() []string {
	return c.res.Columns()
}

// Snapshot renders the state for display.
func (c *Controller[E]) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := Visible(c.state, c.res.searchKey)
	rows := make([]Row, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, c.RowOf(item))
	}

	return Snapshot{
		Kind:      c.res.Kind,
		Mode:      c.state.Mode,
		Display:   c.state.Display,
		Search:    c.state.Search,
		PageIndex: c.state.PageIndex,
		PageSize:  c.state.PageSize,
		Total:     len(c.state.Collection),
		Rows:      rows,
		Form:      c.state.Form.Values.Clone(),
		Errors:    append([]FieldError(nil), c.state.Form.Errors...),
		Busy:      c.busy,
		Err:       c.state.Err,
	}
}

// RowOf renders item as a table row in Columns order.
func (c *Controller[E]) RowOf(item E) Row {
	values := c.res.Values(item)
	cells := make([]string, 0, len(c.res.Fields)+1)

	id, ok := c.res.ID(item)
	if ok {
		cells = append(cells, strconv.FormatInt(id, 10))
	} else {
		cells = append(cells, "")
	}
	for _, f := range c.res.Fields {
		cells = append(cells, values[f.Name])
	}
	return Row{ID: id, HasID: ok, Cells: cells}
}
