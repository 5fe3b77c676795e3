package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
)

// documentRepo holds the operations every collection-backed repository shares.
type documentRepo[T any] struct {
	c         docstore.Collection
	sortField string
}

func newDocumentRepo[T any](c docstore.Collection, sortField string) documentRepo[T] {
	return documentRepo[T]{c: c, sortField: sortField}
}

func (r *documentRepo[T]) find(ctx context.Context, filter docstore.Filter, skip, limit int64) ([]T, error) {
	items := make([]T, 0)
	err := r.c.Find(ctx, docstore.Query{
		Filter:   filter,
		SortDesc: r.sortField,
		Skip:     skip,
		Limit:    limit,
	}, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *documentRepo[T]) Create(ctx context.Context, doc *T) (string, error) {
	id, err := r.c.Insert(ctx, doc)
	if err != nil {
		return "", err
	}
	if d, ok := any(doc).(docstore.Identified); ok {
		d.SetID(id)
	}
	return id, nil
}

func (r *documentRepo[T]) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	return r.c.Set(ctx, id, fields)
}

func (r *documentRepo[T]) Delete(ctx context.Context, id string) (int64, error) {
	return r.c.Delete(ctx, id)
}

func (r *documentRepo[T]) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	return r.c.Count(ctx, filter)
}
