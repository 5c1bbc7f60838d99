package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Endpoint is the typed surface of one resource kind.
type Endpoint[E any] struct {
	c    *HTTPClient
	path string
}

// NewEndpoint binds c to the resource served under path (e.g. "Tache").
func NewEndpoint[E any](c *HTTPClient, path string) *Endpoint[E] {
	return &Endpoint[E]{c: c, path: path}
}

// Path returns the resource base path.
func (e *Endpoint[E]) Path() string {
	return e.path
}

func (e *Endpoint[E]) url(parts ...string) string {
	p := e.path
	for _, part := range parts {
		p += "/" + part
	}
	return p
}

// FindAll returns the whole collection in server order.
func (e *Endpoint[E]) FindAll(ctx context.Context) ([]E, error) {
	var items []E
	if err := e.c.do(ctx, "findAll", http.MethodGet, e.url("findAll"), nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

// FindByID returns one record.
func (e *Endpoint[E]) FindByID(ctx context.Context, id int64) (E, error) {
	var item E
	err := e.c.do(ctx, "findById", http.MethodGet, e.url("findById", strconv.FormatInt(id, 10)), nil, &item)
	return item, err
}

// FindByName returns the record with the given name.
func (e *Endpoint[E]) FindByName(ctx context.Context, name string) (E, error) {
	var item E
	err := e.c.do(ctx, "findByName", http.MethodGet, e.url("findByName", url.PathEscape(name)), nil, &item)
	return item, err
}

// Save creates a record and returns it as stored by the server.
func (e *Endpoint[E]) Save(ctx context.Context, item E) (E, error) {
	var created E
	err := e.c.do(ctx, "save", http.MethodPost, e.url("save"), item, &created)
	return created, err
}

// Update replaces the record id and returns it as stored by the server.
func (e *Endpoint[E]) Update(ctx context.Context, id int64, item E) (E, error) {
	var updated E
	err := e.c.do(ctx, "update", http.MethodPut, e.url("update", strconv.FormatInt(id, 10)), item, &updated)
	return updated, err
}

// Delete removes the record id.
func (e *Endpoint[E]) Delete(ctx context.Context, id int64) error {
	return e.c.do(ctx, "delete", http.MethodDelete, e.url("delete", strconv.FormatInt(id, 10)), nil, nil)
}
