package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
)

type CareerService interface {
	List(ctx context.Context) ([]model.Application, error)
	Submit(ctx context.Context, in SubmitApplicationInput) (*model.Application, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type careerService struct {
	r        repo.ApplicationRepo
	notifier Notifier
}

func NewCareerService(r repo.ApplicationRepo, notifier Notifier) CareerService {
	return &careerService{r: r, notifier: notifier}
}

type SubmitApplicationInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Position string `json:"position" binding:"required"`
	Message  string `json:"message"`
}

func (in SubmitApplicationInput) missing() []string {
	var out []string
	if strings.TrimSpace(in.Name) == "" {
		out = append(out, "name")
	}
	if strings.TrimSpace(in.Email) == "" {
		out = append(out, "email")
	}
	if strings.TrimSpace(in.Position) == "" {
		out = append(out, "position")
	}
	return out
}

func (s *careerService) List(ctx context.Context) ([]model.Application, error) {
	return s.r.List(ctx)
}

func (s *careerService) Submit(ctx context.Context, in SubmitApplicationInput) (*model.Application, error) {
	if m := in.missing(); len(m) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(m, ", "))
	}
	a := &model.Application{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Position:  in.Position,
		Message:   in.Message,
		Status:    model.ApplicationStatusPending,
		AppliedAt: now(),
	}
	if _, err := s.r.Create(ctx, a); err != nil {
		return nil, err
	}
	telemetry.RecordSubmission(ctx, "application")
	s.notifier.NewApplication(ctx, a)
	return a, nil
}

func (s *careerService) Delete(ctx context.Context, id string) (int64, error) {
	return s.r.Delete(ctx, id)
}
