package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
)

type SettingsRepo interface {
	// Get returns docstore.ErrNotFound until the first Upsert.
	Get(ctx context.Context) (*model.Settings, error)
	Upsert(ctx context.Context, fields map[string]any) error
}

type settingsRepo struct {
	c docstore.Collection
}

func NewSettingsRepo(store docstore.Store) SettingsRepo {
	return &settingsRepo{c: store.Collection(model.CollectionSettings)}
}

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	if err := r.c.FindOne(ctx, docstore.Filter{}, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, fields map[string]any) error {
	return r.c.Upsert(ctx, docstore.Filter{}, fields)
}
