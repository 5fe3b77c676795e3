package service

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"gopkg.in/yaml.v3"
)

//go:embed seeddata/projects.yaml
var seedProjectsYAML []byte

type SeedService interface {
	// ReseedProjects wipes the projects collection and loads the built-in portfolio.
	ReseedProjects(ctx context.Context) (int, error)
}

type seedService struct {
	r repo.ProjectRepo
}

func NewSeedService(r repo.ProjectRepo) SeedService {
	return &seedService{r: r}
}

// SeedProjects parses the built-in portfolio. Entries keep file order when listed newest first.
func SeedProjects() ([]model.Project, error) {
	var projects []model.Project
	if err := yaml.Unmarshal(seedProjectsYAML, &projects); err != nil {
		return nil, fmt.Errorf("parse seed projects: %w", err)
	}
	base := now()
	for i := range projects {
		projects[i].ID = ""
		projects[i].CreatedAt = base.Add(-time.Duration(i) * time.Second)
	}
	return projects, nil
}

func (s *seedService) ReseedProjects(ctx context.Context) (int, error) {
	projects, err := SeedProjects()
	if err != nil {
		return 0, err
	}
	return s.r.ReplaceAll(ctx, projects)
}
