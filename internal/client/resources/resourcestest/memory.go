// Package resourcestest provides an in-memory resource API for front-end
// tests.
package resourcestest

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/backoffice/internal/client/models"
	"github.com/dmitrijs2005/backoffice/internal/common"
)

// Memory serves one kind from memory and records every call.
type Memory[E any] struct {
	mu    sync.Mutex
	path  string
	items []E
	next  int64
	calls []string
	fail  map[string]error

	id     func(E) (int64, bool)
	withID func(E, int64) E
	name   func(E) string
}

// NewMemory builds a store for path. id reads the identifier, withID sets
// it and name returns the value findByName matches.
func NewMemory[E any](path string, id func(E) (int64, bool), withID func(E, int64) E, name func(E) string, items ...E) *Memory[E] {
	m := &Memory[E]{path: path, id: id, withID: withID, name: name, fail: map[string]error{}}
	for _, it := range items {
		if v, ok := id(it); ok && v > m.next {
			m.next = v
		}
	}
	m.items = append(m.items, items...)
	return m
}

// Tasks is a Memory for models.Task under "Tache".
func Tasks(items ...models.Task) *Memory[models.Task] {
	return NewMemory("Tache",
		func(t models.Task) (int64, bool) { return models.IDOf(t.ID) },
		func(t models.Task, id int64) models.Task { t.ID = models.NewID(id); return t },
		func(t models.Task) string { return t.Name },
		items...)
}

// Fail makes every later call of op ("findAll", "save", ...) return err.
// A nil err clears it.
func (m *Memory[E]) Fail(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

// Calls returns the operations served so far.
func (m *Memory[E]) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// Items returns the stored records.
func (m *Memory[E]) Items() []E {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]E(nil), m.items...)
}

func (m *Memory[E]) enter(op string) error {
	m.calls = append(m.calls, op)
	return m.fail[op]
}

func (m *Memory[E]) Path() string {
	return m.path
}

func (m *Memory[E]) FindAll(ctx context.Context) ([]E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("findAll"); err != nil {
		return nil, err
	}
	return append([]E{}, m.items...), nil
}

func (m *Memory[E]) FindByID(ctx context.Context, id int64) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero E
	if err := m.enter("findById"); err != nil {
		return zero, err
	}
	if i := m.index(id); i >= 0 {
		return m.items[i], nil
	}
	return zero, fmt.Errorf("%s %d: %w", m.path, id, common.ErrorNotFound)
}

func (m *Memory[E]) FindByName(ctx context.Context, name string) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero E
	if err := m.enter("findByName"); err != nil {
		return zero, err
	}
	for _, it := range m.items {
		if m.name(it) == name {
			return it, nil
		}
	}
	return zero, fmt.Errorf("%s %q: %w", m.path, name, common.ErrorNotFound)
}

func (m *Memory[E]) Save(ctx context.Context, item E) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("save"); err != nil {
		var zero E
		return zero, err
	}
	m.next++
	item = m.withID(item, m.next)
	m.items = append(m.items, item)
	return item, nil
}

func (m *Memory[E]) Update(ctx context.Context, id int64, item E) (E, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var zero E
	if err := m.enter("update"); err != nil {
		return zero, err
	}
	i := m.index(id)
	if i < 0 {
		return zero, fmt.Errorf("%s %d: %w", m.path, id, common.ErrorNotFound)
	}
	item = m.withID(item, id)
	m.items[i] = item
	return item, nil
}

func (m *Memory[E]) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter("delete"); err != nil {
		return err
	}
	i := m.index(id)
	if i < 0 {
		return fmt.Errorf("%s %d: %w", m.path, id, common.ErrorNotFound)
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return nil
}

func (m *Memory[E]) index(id int64) int {
	for i, it := range m.items {
		if v, ok := m.id(it); ok && v == id {
			return i
		}
	}
	return -1
}
