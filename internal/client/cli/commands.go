package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/backoffice/internal/client/render"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/common"
)

// errNoKind is returned when the catalog is empty.
var errNoKind = errors.New("no resource kind selected")

func (a *App) kind() (resource.Handle, error) {
	if a.current == nil {
		return nil, errNoKind
	}
	return a.current, nil
}

// Kinds prints the registered kinds, marking the current one.
func (a *App) Kinds(ctx context.Context) error {
	for _, k := range a.catalog.Kinds() {
		mark := " "
		if k == a.current {
			mark = "*"
		}
		fmt.Fprintf(a.out, "%s %-10s %s (/%s)\n", mark, k.Kind(), k.Title(), k.Path())
	}
	return nil
}

// Use switches to kind and loads it.
func (a *App) Use(ctx context.Context, kind string) error {
	k, err := a.catalog.Lookup(kind)
	if err != nil {
		return err
	}
	a.current = k
	a.logger.Debug(ctx, "kind selected", "kind", k.Kind())
	return a.Refresh(ctx)
}

// List prints what the current kind shows: the open form, the search
// result or the current page.
func (a *App) List(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	s := k.Snapshot()

	if s.Mode.IsOpen() {
		fmt.Fprintf(a.out, "Form open (%s). Type 'save' to submit or 'cancel' to discard.\n", s.Mode)
		return nil
	}
	if err := render.Table(a.out, k.Columns(), s.Rows); err != nil {
		return err
	}
	if s.Display == resource.DisplaySearch {
		fmt.Fprintf(a.out, "Search %q: %d match(es), at most %d shown\n", s.Search, len(s.Rows), resource.SearchLimit)
		return nil
	}
	fmt.Fprintf(a.out, "Page %d of %d (%d per page, %d total)\n",
		s.PageIndex+1, max(s.PageCount(), 1), s.PageSize, s.Total)
	return nil
}

// Refresh re-fetches the current kind and lists it.
func (a *App) Refresh(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	if err := k.Refresh(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}

// Page moves to page index; size 0 keeps the current size.
func (a *App) Page(ctx context.Context, index, size int) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	if size == 0 {
		size = k.Snapshot().PageSize
	}
	k.ChangePage(resource.PageEvent{Index: index, Size: size})
	return a.List(ctx)
}

// Next moves one page forward, staying on the last page.
func (a *App) Next(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	s := k.Snapshot()
	index := s.PageIndex + 1
	if last := s.PageCount() - 1; index > last {
		index = max(last, 0)
	}
	return a.Page(ctx, index, s.PageSize)
}

// Prev moves one page back, staying on the first page.
func (a *App) Prev(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	s := k.Snapshot()
	index := min(s.PageIndex-1, s.PageCount()-1)
	return a.Page(ctx, max(index, 0), s.PageSize)
}

// Search filters the collection by prefix and lists the matches.
func (a *App) Search(ctx context.Context, query string) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	k.Search(query)
	return a.List(ctx)
}

// New opens the create form and prompts for it.
func (a *App) New(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	if err := k.New(); err != nil {
		return err
	}
	return a.fill(ctx, k)
}

// Edit opens the edit form for id and prompts for it.
func (a *App) Edit(ctx context.Context, id int64) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	if err := k.EditByID(id); err != nil {
		return err
	}
	return a.fill(ctx, k)
}

// Save prompts for the open form again and submits it.
func (a *App) Save(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	if !k.Snapshot().Mode.IsOpen() {
		return common.ErrFormClosed
	}
	return a.fill(ctx, k)
}

// fill prompts for every field and submits. Validation failures are
// printed per field and leave the form open.
func (a *App) fill(ctx context.Context, k resource.Handle) error {
	s := k.Snapshot()
	fmt.Fprintf(a.out, "%s %s (empty answer keeps the value in brackets)\n", s.Mode, s.Kind)

	values, err := GetFormValues(a.reader, k.Fields(), s.Form, a.out)
	if err != nil {
		return err
	}

	err = k.Submit(ctx, values)
	var verr *resource.ValidationError
	if errors.As(err, &verr) {
		for _, f := range verr.Fields {
			fmt.Fprintln(a.out, "  "+f.Error())
		}
		fmt.Fprintln(a.out, "Type 'save' to correct the form or 'cancel' to discard it.")
		return nil
	}
	if err != nil {
		if k.Snapshot().Mode.IsOpen() {
			fmt.Fprintln(a.out, "The form is still open. Type 'save' to retry or 'cancel' to discard it.")
		}
		return err
	}
	fmt.Fprintln(a.out, "Saved.")
	return a.List(ctx)
}

// Cancel discards the open form and reloads the list.
func (a *App) Cancel(ctx context.Context) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	if err := k.Cancel(ctx); err != nil {
		return err
	}
	return a.List(ctx)
}

// Delete asks for confirmation and deletes record id.
func (a *App) Delete(ctx context.Context, id int64) error {
	k, err := a.kind()
	if err != nil {
		return err
	}
	confirmed := false
	confirm := func(prompt string) bool {
		confirmed = GetConfirm(a.reader, prompt, a.out)
		return confirmed
	}
	if err := k.DeleteByID(ctx, id, confirm); err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(a.out, "Not deleted.")
		return nil
	}
	fmt.Fprintf(a.out, "Deleted %s %d.\n", k.Kind(), id)
	return a.List(ctx)
}

// Show fetches one record from the API by id.
func (a *App) Show(ctx context.Context, id int64) error {
	if a.current == nil {
		return errNoKind
	}
	row, err := a.current.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return render.Record(a.out, a.current.Columns(), row)
}

// Find fetches one record from the API by name.
func (a *App) Find(ctx context.Context, name string) error {
	if a.current == nil {
		return errNoKind
	}
	row, err := a.current.FindByName(ctx, name)
	if err != nil {
		return err
	}
	return render.Record(a.out, a.current.Columns(), row)
}
