package resource

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

// DeletePrompt is the question passed to Confirm before a delete.
const DeletePrompt = "Are you sure?"

// Confirm asks the user a yes/no question and blocks until answered.
type Confirm func(prompt string) bool

// Controller drives the list, search, paging and form of one resource kind.
type Controller[E any] struct {
	res    Resource[E]
	remote Remote[E]
	logger logging.Logger

	mu    sync.Mutex
	state State[E]
	busy  bool

	// refresh sequencing: a response older than the last applied one is dropped
	issued  uint64
	applied uint64
}

// Option customizes a new Controller.
type Option func(*options)

type options struct {
	pageSize int
	logger   logging.Logger
}

// WithPageSize sets the initial page size. Values below 1 keep the default.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithLogger sets the logger; the default discards output.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New builds a controller with an empty collection, page 0 and a closed
// form. Call Refresh to load the collection.
func New[E any](res Resource[E], remote Remote[E], opts ...Option) (*Controller[E], error) {
	if err := res.Check(); err != nil {
		return nil, err
	}
	o := options{pageSize: DefaultPageSize, logger: logging.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller[E]{
		res:    res,
		remote: remote,
		logger: o.logger.With("kind", res.Kind),
		state: State[E]{
			Collection: []E{},
			PageSize:   o.pageSize,
			Mode:       Closed(),
			Form:       Form{Values: Values{}},
		},
	}, nil
}

// Resource returns the controller's configuration.
func (c *Controller[E]) Resource() Resource[E] {
	return c.res
}

// State returns a copy of the current state.
func (c *Controller[E]) State() State[E] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyState()
}

func (c *Controller[E]) copyState() State[E] {
	s := c.state
	s.Collection = append([]E(nil), c.state.Collection...)
	s.Form.Values = c.state.Form.Values.Clone()
	s.Form.Errors = append([]FieldError(nil), c.state.Form.Errors...)
	return s
}

// Visible returns the records currently listed.
func (c *Controller[E]) Visible() []E {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]E{}, Visible(c.state, c.res.searchKey)...)
}

// Err returns the last remote failure.
func (c *Controller[E]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Err
}

// Refresh fetches the whole collection and replaces the local one. On
// failure the previous collection is kept and the error is recorded. A
// response, failed or not, that arrives after a later refresh's response is
// dropped.
func (c *Controller[E]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.issued++
	seq := c.issued
	c.mu.Unlock()

	items, err := c.remote.FindAll(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.applied {
		c.logger.Debug(ctx, "stale refresh dropped", "seq", seq, "applied", c.applied, "error", err)
		return nil
	}
	c.applied = seq
	if err != nil {
		c.state.Err = err
		c.logger.Warn(ctx, "refresh failed", "error", err)
		return fmt.Errorf("refresh %s: %w", c.res.Kind, err)
	}
	if items == nil {
		items = []E{}
	}
	c.state.Collection = items
	c.state.Display = DisplayPage
	c.state.Err = nil
	c.logger.Debug(ctx, "refreshed", "count", len(items))
	return nil
}

// Search switches to search display with query q.
func (c *Controller[E]) Search(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Search = q
	c.state.Display = DisplaySearch
}

// ChangePage applies a new page index and size and switches to page display.
func (c *Controller[E]) ChangePage(ev PageEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PageIndex = ev.Index
	c.state.PageSize = ev.Size
	c.state.Display = DisplayPage
}

// New opens an empty form in create mode.
func (c *Controller[E]) New() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return common.ErrBusy
	}
	c.state.Mode = CreateMode()
	c.state.Form.Reset()
	return nil
}

// Edit opens the form in edit mode for item, pre-filled with its fields.
// Only persisted records (with an identifier) can be edited.
func (c *Controller[E]) Edit(item E) error {
	id, ok := c.res.ID(item)
	if !ok {
		return common.ErrMissingID
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return common.ErrBusy
	}
	c.state.Mode = EditMode(id)
	c.state.Form = Form{Values: c.res.Values(item).Clone()}
	return nil
}

// EditByID is Edit for the record id of the current collection.
func (c *Controller[E]) EditByID(id int64) error {
	item, ok := c.find(id)
	if !ok {
		return fmt.Errorf("%s %d: %w", c.res.Kind, id, common.ErrorNotFound)
	}
	return c.Edit(item)
}

func (c *Controller[E]) find(id int64) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.state.Collection {
		if got, ok := c.res.ID(item); ok && got == id {
			return item, true
		}
	}
	var zero E
	return zero, false
}

// Cancel discards the form, closes it and re-fetches the collection.
func (c *Controller[E]) Cancel(ctx context.Context) error {
	c.mu.Lock()
	if !c.state.Mode.IsOpen() {
		c.mu.Unlock()
		return common.ErrFormClosed
	}
	if c.busy {
		c.mu.Unlock()
		return common.ErrBusy
	}
	c.state.Mode = Closed()
	c.state.Form.Reset()
	c.mu.Unlock()

	return c.Refresh(ctx)
}

// Submit validates values and creates (create mode) or updates (edit mode)
// the record. Invalid values return a *ValidationError without any request.
// On success the form is reset and closed and the collection re-fetched; a
// failing re-fetch is returned but the form stays closed. On a remote
// failure the form keeps its mode and values.
func (c *Controller[E]) Submit(ctx context.Context, values Values) error {
	c.mu.Lock()
	if !c.state.Mode.IsOpen() {
		c.mu.Unlock()
		return common.ErrFormClosed
	}
	if c.busy {
		c.mu.Unlock()
		return common.ErrBusy
	}
	values = values.Clone()
	c.state.Form.Values = values
	c.state.Form.Errors = Validate(c.res.Fields, values)
	if len(c.state.Form.Errors) > 0 {
		verr := &ValidationError{Fields: append([]FieldError(nil), c.state.Form.Errors...)}
		c.mu.Unlock()
		return verr
	}
	mode := c.state.Mode
	c.busy = true
	c.mu.Unlock()

	var err error
	if id, editing := mode.EditingID(); editing {
		_, err = c.remote.Update(ctx, id, c.res.Build(&id, values))
	} else {
		_, err = c.remote.Save(ctx, c.res.Build(nil, values))
	}

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.state.Err = err
		c.mu.Unlock()
		c.logger.Warn(ctx, "submit failed", "mode", mode.String(), "error", err)
		return fmt.Errorf("%s %s: %w", mode, c.res.Kind, err)
	}
	c.state.Mode = Closed()
	c.state.Form.Reset()
	c.state.Err = nil
	c.mu.Unlock()

	c.logger.Info(ctx, "submitted", "mode", mode.String())
	return c.Refresh(ctx)
}

// Delete asks confirm and, when accepted, deletes item and re-fetches the
// collection. Records without an identifier return common.ErrMissingID and
// a declined (or nil) confirm returns nil; neither makes a request. While
// another change is in flight it returns common.ErrBusy without asking.
func (c *Controller[E]) Delete(ctx context.Context, item E, confirm Confirm) error {
	id, ok := c.res.ID(item)
	if !ok {
		return common.ErrMissingID
	}
	if confirm == nil {
		return nil
	}

	// busy is held while asking, so an accepted delete cannot then fail
	// with ErrBusy.
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return common.ErrBusy
	}
	c.busy = true
	c.mu.Unlock()

	if !confirm(DeletePrompt) {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
		return nil
	}

	err := c.remote.Delete(ctx, id)

	c.mu.Lock()
	c.busy = false
	if err != nil {
		c.state.Err = err
		c.mu.Unlock()
		c.logger.Warn(ctx, "delete failed", "id", id, "error", err)
		return fmt.Errorf("delete %s %d: %w", c.res.Kind, id, err)
	}
	c.state.Err = nil
	c.mu.Unlock()

	c.logger.Info(ctx, "deleted", "id", id)
	return c.Refresh(ctx)
}

// DeleteByID is Delete for the record id of the current collection.
func (c *Controller[E]) DeleteByID(ctx context.Context, id int64, confirm Confirm) error {
	item, ok := c.find(id)
	if !ok {
		return fmt.Errorf("%s %d: %w", c.res.Kind, id, common.ErrorNotFound)
	}
	return c.Delete(ctx, item, confirm)
}
