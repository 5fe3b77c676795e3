package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
)

type TeamRepo interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Create(ctx context.Context, m *model.TeamMember) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter docstore.Filter) (int64, error)
}

type teamRepo struct {
	documentRepo[model.TeamMember]
}

func NewTeamRepo(store docstore.Store) TeamRepo {
	return &teamRepo{newDocumentRepo[model.TeamMember](store.Collection(model.CollectionTeam), "createdAt")}
}

func (r *teamRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	return r.find(ctx, nil, 0, 0)
}
