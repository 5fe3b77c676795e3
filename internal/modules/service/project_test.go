package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Create", ctx, mock.MatchedBy(func(p *model.Project) bool {
		return p.ID == "" && !p.CreatedAt.IsZero() && p.Title == "Tower"
	})).Return("abc", nil)

	id, err := NewProjectService(mockRepo).Create(ctx, &model.Project{Base: model.Base{ID: "client"}, Title: "Tower"})
	require.NoError(t, err)
	assert.Equal(t, "abc", id)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_UpdateStripsID(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Update", ctx, "abc", map[string]any{"title": "New"}).Return(int64(1), nil)

	matched, err := NewProjectService(mockRepo).Update(ctx, "abc", map[string]any{"_id": "x", "id": "y", "title": "New"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_DeleteErrors(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockProjectRepo{}
	mockRepo.On("Delete", ctx, "bad").Return(int64(0), docstore.ErrInvalidID)

	_, err := NewProjectService(mockRepo).Delete(ctx, "bad")
	assert.True(t, errors.Is(err, docstore.ErrInvalidID))
}

func TestProjectService_CreateThenListRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(repo.NewProjectRepo(docstore.NewMemory()))

	in := model.Project{
		Slug:        "msheireb",
		Title:       "Msheireb Arcade",
		Category:    "Pest Control",
		Stats:       []model.ProjectStat{{Label: "Outlets", Value: "120"}},
		Image:       "/a.jpg",
		Gallery:     []string{"/b.jpg", "/c.jpg"},
		Status:      model.ProjectStatusOngoing,
		Location:    "Doha",
		Description: "desc",
	}
	p := in
	id, err := svc.Create(ctx, &p)
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	got := list[0]
	assert.Equal(t, id, got.ID)
	got.ID = ""
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	got.CreatedAt = in.CreatedAt
	assert.Equal(t, in, got)
}

func TestTeamService_NotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockTeamRepo{}
	mockRepo.On("Update", ctx, "missing", map[string]any{"name": "X"}).Return(int64(0), nil)
	mockRepo.On("Delete", ctx, "missing").Return(int64(0), nil)
	mockRepo.On("Delete", ctx, "present").Return(int64(1), nil)
	svc := NewTeamService(mockRepo)

	assert.ErrorIs(t, svc.Update(ctx, "missing", map[string]any{"name": "X", "id": "missing"}), ErrTeamMemberNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), ErrTeamMemberNotFound)
	assert.NoError(t, svc.Delete(ctx, "present"))
}

func TestTeamService_StoreErrorIsNotNotFound(t *testing.T) {
	ctx := context.Background()
	mockRepo := &MockTeamRepo{}
	mockRepo.On("Delete", ctx, "x").Return(int64(0), errors.New("connection reset"))

	err := NewTeamService(mockRepo).Delete(ctx, "x")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTeamMemberNotFound))
}

func TestProjectService_UpdateRejectsMistypedField(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(repo.NewProjectRepo(docstore.NewMemory()))

	id, err := svc.Create(ctx, &model.Project{Title: "Tower", Gallery: []string{"/a.jpg"}})
	require.NoError(t, err)

	_, err = svc.Update(ctx, id, map[string]any{"gallery": "one.jpg"})
	assert.ErrorIs(t, err, ErrInvalidField)

	matched, err := svc.Update(ctx, id, map[string]any{"gallery": []any{"/b.jpg"}, "featured": true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"/b.jpg"}, list[0].Gallery)
	assert.Equal(t, "Tower", list[0].Title)
}

func TestTeamService_UpdateRejectsMistypedField(t *testing.T) {
	ctx := context.Background()
	svc := NewTeamService(repo.NewTeamRepo(docstore.NewMemory()))

	id, err := svc.Create(ctx, &model.TeamMember{Name: "Amina"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Update(ctx, id, map[string]any{"name": 42}), ErrInvalidField)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Amina", list[0].Name)
}

func TestConform_TypedAndPassthrough(t *testing.T) {
	at := "2024-05-01T10:00:00Z"
	out, err := conform[model.Project](map[string]any{
		"id":        "drop",
		"createdAt": at,
		"stats":     []any{map[string]any{"label": "Sites", "value": "12"}},
		"extra":     float64(3),
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "id")
	created, ok := out["createdAt"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, at, created.Format(time.RFC3339))
	assert.Equal(t, []model.ProjectStat{{Label: "Sites", Value: "12"}}, out["stats"])
	assert.Equal(t, float64(3), out["extra"])
}
