package resource

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID   *int64
	Name string
	Body string
}

func id(v int64) *int64 { return &v }

func testResource() Resource[item] {
	return Resource[item]{
		Kind:  "item",
		Title: "Items",
		Path:  "Item",
		Fields: []Field{
			{Name: "name", Required: true, MinLength: 4},
			{Name: "body", Required: true, MinLength: 4},
		},
		SearchField: "name",
		ID: func(i item) (int64, bool) {
			if i.ID == nil {
				return 0, false
			}
			return *i.ID, true
		},
		Values: func(i item) Values {
			return Values{"name": i.Name, "body": i.Body}
		},
		Build: func(id *int64, v Values) item {
			return item{ID: id, Name: v["name"], Body: v["body"]}
		},
	}
}

// named builds records with ids 1..n named prefix0..prefix(n-1).
func named(prefix string, n int) []item {
	out := make([]item, n)
	for i := range out {
		out[i] = item{ID: id(int64(i + 1)), Name: fmt.Sprintf("%s%d", prefix, i), Body: "body"}
	}
	return out
}

type updateCall struct {
	id   int64
	item item
}

type fakeRemote struct {
	mu sync.Mutex

	items []item

	findAllErr error
	saveErr    error
	updateErr  error
	deleteErr  error

	// findAllHook, when set, replaces the canned FindAll answer.
	findAllHook func(call int) ([]item, error)
	// saveGate, when set, blocks Save until it is closed; saveStarted is
	// signalled first.
	saveGate    chan struct{}
	saveStarted chan struct{}

	calls   []string
	saved   []item
	updated []updateCall
	deleted []int64
}

func (f *fakeRemote) record(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeRemote) FindAll(ctx context.Context) ([]item, error) {
	n := f.record("findAll")
	if f.findAllHook != nil {
		return f.findAllHook(n)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findAllErr != nil {
		return nil, f.findAllErr
	}
	return append([]item(nil), f.items...), nil
}

func (f *fakeRemote) Save(ctx context.Context, it item) (item, error) {
	f.record("save")
	if f.saveStarted != nil {
		f.saveStarted <- struct{}{}
	}
	if f.saveGate != nil {
		<-f.saveGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = append(f.saved, it)
	if f.saveErr != nil {
		return item{}, f.saveErr
	}
	it.ID = id(int64(len(f.items) + 100))
	f.items = append(f.items, it)
	return it, nil
}

func (f *fakeRemote) Update(ctx context.Context, rid int64, it item) (item, error) {
	f.record("update")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updated = append(f.updated, updateCall{id: rid, item: it})
	if f.updateErr != nil {
		return item{}, f.updateErr
	}
	for i := range f.items {
		if f.items[i].ID != nil && *f.items[i].ID == rid {
			f.items[i] = it
		}
	}
	return it, nil
}

func (f *fakeRemote) Delete(ctx context.Context, rid int64) error {
	f.record("delete")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, rid)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.items[:0]
	for _, it := range f.items {
		if it.ID == nil || *it.ID != rid {
			kept = append(kept, it)
		}
	}
	f.items = kept
	return nil
}

func (f *fakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRemote) ResetCalls() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

// newLoaded returns a controller already refreshed from remote.
func newLoaded(t *testing.T, remote *fakeRemote, opts ...Option) *Controller[item] {
	t.Helper()
	c, err := New(testResource(), remote, opts...)
	require.NoError(t, err)
	require.NoError(t, c.Refresh(context.Background()))
	remote.ResetCalls()
	return c
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func yes(string) bool { return true }
func no(string) bool  { return false }
