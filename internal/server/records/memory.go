package records

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/backoffice/internal/common"
)

// MemoryRepository keeps records in process memory. Identifiers are
// assigned from one counter shared by all kinds.
type MemoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	kinds  map[string][]Record
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{kinds: map[string][]Record{}}
}

func copyRecord(r Record) Record {
	f := make(Fields, len(r.Fields))
	for k, v := range r.Fields {
		f[k] = v
	}
	r.Fields = f
	return r
}

func (m *MemoryRepository) FindAll(ctx context.Context, kind string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Record, 0, len(m.kinds[kind]))
	for _, r := range m.kinds[kind] {
		out = append(out, copyRecord(r))
	}
	return out, nil
}

func (m *MemoryRepository) FindByID(ctx context.Context, kind string, id int64) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.index(kind, id)
	if i < 0 {
		return Record{}, notFound(kind, id, common.ErrorNotFound)
	}
	return copyRecord(m.kinds[kind][i]), nil
}

// FindByName returns the first record, in identifier order, whose name
// equals name.
func (m *MemoryRepository) FindByName(ctx context.Context, kind, name string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.kinds[kind] {
		if r.Name() == name {
			return copyRecord(r), nil
		}
	}
	return Record{}, fmt.Errorf("%s %q: %w", kind, name, common.ErrorNotFound)
}

func (m *MemoryRepository) Create(ctx context.Context, kind string, fields Fields) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastID++
	r := copyRecord(Record{ID: m.lastID, Kind: kind, Fields: Clean(fields)})
	m.kinds[kind] = append(m.kinds[kind], r)
	return copyRecord(r), nil
}

func (m *MemoryRepository) Update(ctx context.Context, kind string, id int64, fields Fields) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(kind, id)
	if i < 0 {
		return Record{}, notFound(kind, id, common.ErrorNotFound)
	}
	r := Record{ID: id, Kind: kind, Fields: Clean(fields)}
	m.kinds[kind][i] = r
	return copyRecord(r), nil
}

func (m *MemoryRepository) Delete(ctx context.Context, kind string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(kind, id)
	if i < 0 {
		return notFound(kind, id, common.ErrorNotFound)
	}
	rs := m.kinds[kind]
	m.kinds[kind] = append(rs[:i:i], rs[i+1:]...)
	return nil
}

func (m *MemoryRepository) index(kind string, id int64) int {
	for i, r := range m.kinds[kind] {
		if r.ID == id {
			return i
		}
	}
	return -1
}
