package service

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
)

type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Create(ctx context.Context, p *model.Project) (string, error)
	// Update merges fields into the project and reports how many documents matched.
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	// Delete reports how many documents were removed. Zero is not an error.
	Delete(ctx context.Context, id string) (int64, error)
}

type projectService struct {
	r repo.ProjectRepo
}

func NewProjectService(r repo.ProjectRepo) ProjectService {
	return &projectService{r: r}
}

func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	return s.r.List(ctx)
}

func (s *projectService) Create(ctx context.Context, p *model.Project) (string, error) {
	p.ID = ""
	p.CreatedAt = now()
	return s.r.Create(ctx, p)
}

func (s *projectService) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	patch, err := conform[model.Project](fields)
	if err != nil {
		return 0, err
	}
	return s.r.Update(ctx, id, patch)
}

func (s *projectService) Delete(ctx context.Context, id string) (int64, error) {
	return s.r.Delete(ctx, id)
}
