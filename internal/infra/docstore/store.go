// Package docstore is the persistence boundary for the site's loosely-typed
// records. Every backend exposes the same collection-scoped operations; each
// call is a single round trip with last-write-wins semantics.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id has the wrong shape for the backend.
	ErrInvalidID = errors.New("invalid document id")
)

// Filter is an equality match on top-level fields.
type Filter map[string]any

// Query describes a Find call. Zero Limit means no limit.
type Query struct {
	Filter   Filter
	SortDesc string
	Skip     int64
	Limit    int64
}

// Identified is implemented by models so backends can hand back the
// store-assigned id after decoding.
type Identified interface {
	SetID(id string)
}

type Collection interface {
	Find(ctx context.Context, q Query, out any) error
	FindOne(ctx context.Context, filter Filter, out any) error
	Count(ctx context.Context, filter Filter) (int64, error)
	Insert(ctx context.Context, doc any) (string, error)
	InsertMany(ctx context.Context, docs []any) ([]string, error)
	// Set merges fields into the document and returns the matched count.
	Set(ctx context.Context, id string, fields map[string]any) (int64, error)
	// Upsert merges fields into the first document matching filter, inserting it when absent.
	Upsert(ctx context.Context, filter Filter, fields map[string]any) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteMany(ctx context.Context, filter Filter) (int64, error)
}

type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var fieldName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func checkField(name string) error {
	if !fieldName.MatchString(name) {
		return fmt.Errorf("docstore: invalid field name %q", name)
	}
	return nil
}

// stripID drops caller-supplied identifiers from a field set.
func stripID(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" || k == "_id" {
			continue
		}
		out[k] = v
	}
	return out
}
