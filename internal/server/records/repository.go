// Package records stores the resource records served by the development
// API. Every kind shares one store; records are schemaless JSON objects
// keyed by kind and identifier.
package records

import (
	"context"
	"encoding/json"
	"fmt"
)

// Fields is the JSON object of a record without its identifier.
type Fields map[string]any

// Record is one stored resource.
type Record struct {
	ID     int64
	Kind   string
	Fields Fields
}

// Name returns the "name" member, or "" when the kind has none.
func (r Record) Name() string {
	return nameOf(r.Fields)
}

// MarshalJSON flattens the record into its fields plus "id".
func (r Record) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r.Fields)+1)
	for k, v := range r.Fields {
		obj[k] = v
	}
	obj["id"] = r.ID
	return json.Marshal(obj)
}

func nameOf(f Fields) string {
	if s, ok := f["name"].(string); ok {
		return s
	}
	return ""
}

// Clean drops the identifier from a decoded request body; the store
// assigns identifiers.
func Clean(f Fields) Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}

// Repository persists records. Missing records are reported with
// common.ErrorNotFound.
type Repository interface {
	FindAll(ctx context.Context, kind string) ([]Record, error)
	FindByID(ctx context.Context, kind string, id int64) (Record, error)
	FindByName(ctx context.Context, kind, name string) (Record, error)
	Create(ctx context.Context, kind string, fields Fields) (Record, error)
	Update(ctx context.Context, kind string, id int64, fields Fields) (Record, error)
	Delete(ctx context.Context, kind string, id int64) error
}

func notFound(kind string, id int64, err error) error {
	return fmt.Errorf("%s %d: %w", kind, id, err)
}
