package service

import (
	"context"
	"testing"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedProjects_Parses(t *testing.T) {
	projects, err := SeedProjects()
	require.NoError(t, err)
	require.NotEmpty(t, projects)

	slugs := map[string]bool{}
	for _, p := range projects {
		assert.NotEmpty(t, p.Slug)
		assert.NotEmpty(t, p.Title)
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, slugs[p.Slug], "duplicate slug %s", p.Slug)
		slugs[p.Slug] = true
	}
	assert.Equal(t, "lusail-marina-towers", projects[0].Slug)
	assert.Equal(t, []model.ProjectStat{{Label: "Floors Serviced", Value: "42"}, {Label: "On-site Staff", Value: "65"}}, projects[0].Stats)
}

func TestSeedService_ReseedReplaces(t *testing.T) {
	ctx := context.Background()
	projectRepo := repo.NewProjectRepo(docstore.NewMemory())
	_, _ = projectRepo.Create(ctx, &model.Project{Title: "manual"})

	svc := NewSeedService(projectRepo)
	n, err := svc.ReseedProjects(ctx)
	require.NoError(t, err)

	n2, err := svc.ReseedProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, n2)

	list, err := projectRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, n)
	assert.Equal(t, "lusail-marina-towers", list[0].Slug)
	for _, p := range list {
		assert.NotEqual(t, "manual", p.Title)
	}
}
