package resource

import (
	"context"
	"errors"
	"fmt"
)

// Remote is the part of the resource API the controller needs.
type Remote[E any] interface {
	FindAll(ctx context.Context) ([]E, error)
	Save(ctx context.Context, item E) (E, error)
	Update(ctx context.Context, id int64, item E) (E, error)
	Delete(ctx context.Context, id int64) error
}

// Resource configures a Controller for one record type.
type Resource[E any] struct {
	Kind        string // short name used on the command line, e.g. "task"
	Title       string // plural display name, e.g. "Tasks"
	Path        string // API base path, e.g. "Tache"
	Fields      []Field
	SearchField string // name of the field the search filter matches

	// ID returns the record identifier, false before the server assigned one.
	ID func(E) (int64, bool)
	// Values copies the record fields into form values.
	Values func(E) Values
	// Build assembles a record from form values; id is nil for creation.
	Build func(id *int64, v Values) E
}

// Check reports configuration mistakes.
func (r Resource[E]) Check() error {
	var errs []error
	if r.Kind == "" {
		errs = append(errs, errors.New("kind is empty"))
	}
	if r.Path == "" {
		errs = append(errs, errors.New("path is empty"))
	}
	if len(r.Fields) == 0 {
		errs = append(errs, errors.New("no fields"))
	}
	if r.ID == nil || r.Values == nil || r.Build == nil {
		errs = append(errs, errors.New("ID, Values and Build are required"))
	}
	found := false
	for _, f := range r.Fields {
		if f.Name == r.SearchField {
			found = true
		}
	}
	if !found {
		errs = append(errs, fmt.Errorf("search field %q is not a field", r.SearchField))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("resource %q: %w", r.Kind, err)
	}
	return nil
}

// Columns returns the table header: "id" then the field names.
func (r Resource[E]) Columns() []string {
	cols := make([]string, 0, len(r.Fields)+1)
	cols = append(cols, "id")
	for _, f := range r.Fields {
		cols = append(cols, f.Name)
	}
	return cols
}

func (r Resource[E]) searchKey(item E) string {
	return r.Values(item)[r.SearchField]
}
