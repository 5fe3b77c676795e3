package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
)

type ApplicationRepo interface {
	List(ctx context.Context) ([]model.Application, error)
	Create(ctx context.Context, a *model.Application) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter docstore.Filter) (int64, error)
}

type applicationRepo struct {
	documentRepo[model.Application]
}

func NewApplicationRepo(store docstore.Store) ApplicationRepo {
	return &applicationRepo{newDocumentRepo[model.Application](store.Collection(model.CollectionApplications), "appliedAt")}
}

func (r *applicationRepo) List(ctx context.Context) ([]model.Application, error) {
	return r.find(ctx, nil, 0, 0)
}
