package service

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
)

// TeamService differs from the other resources in one way: updating or
// deleting a member that does not exist returns ErrTeamMemberNotFound.
type TeamService interface {
	List(ctx context.Context) ([]model.TeamMember, error)
	Create(ctx context.Context, m *model.TeamMember) (string, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
}

type teamService struct {
	r repo.TeamRepo
}

func NewTeamService(r repo.TeamRepo) TeamService {
	return &teamService{r: r}
}

func (s *teamService) List(ctx context.Context) ([]model.TeamMember, error) {
	return s.r.List(ctx)
}

func (s *teamService) Create(ctx context.Context, m *model.TeamMember) (string, error) {
	m.ID = ""
	m.CreatedAt = now()
	return s.r.Create(ctx, m)
}

func (s *teamService) Update(ctx context.Context, id string, fields map[string]any) error {
	patch, err := conform[model.TeamMember](fields)
	if err != nil {
		return err
	}
	matched, err := s.r.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	deleted, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
