package service

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/infra/mail"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepo) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectRepo) ReplaceAll(ctx context.Context, projects []model.Project) (int, error) {
	args := m.Called(ctx, projects)
	return args.Int(0), args.Error(1)
}

// MockTeamRepo is a mock implementation of TeamRepo
type MockTeamRepo struct {
	mock.Mock
}

func (m *MockTeamRepo) List(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockTeamRepo) Create(ctx context.Context, tm *model.TeamMember) (string, error) {
	args := m.Called(ctx, tm)
	return args.String(0), args.Error(1)
}

func (m *MockTeamRepo) Update(ctx context.Context, id string, fields map[string]any) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamRepo) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockApplicationRepo is a mock implementation of ApplicationRepo
type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) List(ctx context.Context) ([]model.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

func (m *MockApplicationRepo) Create(ctx context.Context, a *model.Application) (string, error) {
	args := m.Called(ctx, a)
	return args.String(0), args.Error(1)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockApplicationRepo) Count(ctx context.Context, filter docstore.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotifier records notification calls.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NewInquiry(ctx context.Context, in *model.Inquiry) {
	m.Called(ctx, in)
}

func (m *MockNotifier) NewApplication(ctx context.Context, a *model.Application) {
	m.Called(ctx, a)
}

func (m *MockNotifier) Drain(ctx context.Context) error { return nil }

// MockSender is a mock implementation of mail.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
