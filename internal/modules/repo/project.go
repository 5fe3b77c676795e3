package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
)

type ProjectRepo interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, p *model.Project) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter docstore.Filter) (int64, error)
	// ReplaceAll wipes the collection and inserts projects in order.
	ReplaceAll(ctx context.Context, projects []model.Project) (int, error)
}

type projectRepo struct {
	documentRepo[model.Project]
}

func NewProjectRepo(store docstore.Store) ProjectRepo {
	return &projectRepo{newDocumentRepo[model.Project](store.Collection(model.CollectionProjects), "createdAt")}
}

func (r *projectRepo) List(ctx context.Context) ([]model.Project, error) {
	return r.find(ctx, nil, 0, 0)
}

func (r *projectRepo) ReplaceAll(ctx context.Context, projects []model.Project) (int, error) {
	if _, err := r.c.DeleteMany(ctx, docstore.Filter{}); err != nil {
		return 0, err
	}
	if len(projects) == 0 {
		return 0, nil
	}
	docs := make([]any, 0, len(projects))
	for i := range projects {
		docs = append(docs, &projects[i])
	}
	ids, err := r.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	for i, id := range ids {
		projects[i].SetID(id)
	}
	return len(ids), nil
}
