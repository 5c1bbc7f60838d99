// Package resources registers the resource kinds shipped with the console
// and binds each of them to the API.
package resources

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/backoffice/internal/client/client"
	"github.com/dmitrijs2005/backoffice/internal/client/resource"
	"github.com/dmitrijs2005/backoffice/internal/common"
	"github.com/dmitrijs2005/backoffice/internal/logging"
)

// Kind is one registered kind: its controller plus direct lookups that
// bypass the local collection.
type Kind interface {
	resource.Handle

	// Path is the API base path, e.g. "Tache".
	Path() string
	FindByID(ctx context.Context, id int64) (resource.Row, error)
	FindByName(ctx context.Context, name string) (resource.Row, error)
}

// Endpoint is the API surface a Kind is bound to. *client.Endpoint
// implements it.
type Endpoint[E any] interface {
	resource.Remote[E]
	Path() string
	FindByID(ctx context.Context, id int64) (E, error)
	FindByName(ctx context.Context, name string) (E, error)
}

type binding[E any] struct {
	*resource.Controller[E]
	endpoint Endpoint[E]
}

// Bind builds the controller of res over ep.
func Bind[E any](ep Endpoint[E], res resource.Resource[E], opts ...resource.Option) (Kind, error) {
	ctrl, err := resource.New(res, ep, opts...)
	if err != nil {
		return nil, err
	}
	return &binding[E]{Controller: ctrl, endpoint: ep}, nil
}

func bind[E any](c *client.HTTPClient, res resource.Resource[E], opts ...resource.Option) (Kind, error) {
	return Bind[E](client.NewEndpoint[E](c, res.Path), res, opts...)
}

func (b *binding[E]) Path() string {
	return b.endpoint.Path()
}

func (b *binding[E]) FindByID(ctx context.Context, id int64) (resource.Row, error) {
	item, err := b.endpoint.FindByID(ctx, id)
	if err != nil {
		return resource.Row{}, err
	}
	return b.RowOf(item), nil
}

func (b *binding[E]) FindByName(ctx context.Context, name string) (resource.Row, error) {
	item, err := b.endpoint.FindByName(ctx, name)
	if err != nil {
		return resource.Row{}, err
	}
	return b.RowOf(item), nil
}

// Catalog holds the registered kinds in display order.
type Catalog struct {
	kinds  []Kind
	byName map[string]Kind
}

// New binds every shipped kind to c. opts apply to every controller.
func New(c *client.HTTPClient, opts ...resource.Option) (*Catalog, error) {
	builders := []func() (Kind, error){
		func() (Kind, error) { return bind(c, TaskResource(), opts...) },
		func() (Kind, error) { return bind(c, EmployeeResource(), opts...) },
		func() (Kind, error) { return bind(c, MessageResource(), opts...) },
		func() (Kind, error) { return bind(c, ForumResource(), opts...) },
		func() (Kind, error) { return bind(c, FileResource(), opts...) },
		func() (Kind, error) { return bind(c, ChatRoomResource(), opts...) },
		func() (Kind, error) { return bind(c, ProjectResource(), opts...) },
	}

	kinds := make([]Kind, 0, len(builders))
	for _, build := range builders {
		k, err := build()
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return NewCatalog(kinds...)
}

// Dial builds the API client for baseURL and binds every shipped kind to it.
func Dial(baseURL string, timeout time.Duration, logger logging.Logger, opts ...resource.Option) (*Catalog, error) {
	c, err := client.NewHTTPClient(baseURL, timeout, logger)
	if err != nil {
		return nil, err
	}
	return New(c, opts...)
}

// NewCatalog registers kinds. Each is reachable by its kind name and by
// its API base path, case-insensitively.
func NewCatalog(kinds ...Kind) (*Catalog, error) {
	cat := &Catalog{byName: make(map[string]Kind, 2*len(kinds))}
	for _, k := range kinds {
		for _, name := range []string{k.Kind(), k.Path()} {
			key := strings.ToLower(name)
			if prev, ok := cat.byName[key]; ok && prev != k {
				return nil, fmt.Errorf("duplicate kind name %q", name)
			}
			cat.byName[key] = k
		}
		cat.kinds = append(cat.kinds, k)
	}
	return cat, nil
}

// Kinds returns the kinds in registration order.
func (c *Catalog) Kinds() []Kind {
	return append([]Kind(nil), c.kinds...)
}

// Lookup finds a kind by name ("task") or base path ("Tache").
func (c *Catalog) Lookup(name string) (Kind, error) {
	k, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w (known: %s)", name, common.ErrUnknownKind, strings.Join(c.Names(), ", "))
	}
	return k, nil
}

// Names returns the kind names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.kinds))
	for _, k := range c.kinds {
		out = append(out, k.Kind())
	}
	sort.Strings(out)
	return out
}
