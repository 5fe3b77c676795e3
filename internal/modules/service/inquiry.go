package service

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
)

type InquiryService interface {
	List(ctx context.Context) ([]model.Inquiry, error)
	Submit(ctx context.Context, in SubmitInquiryInput) (*model.Inquiry, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type inquiryService struct {
	r        repo.InquiryRepo
	notifier Notifier
}

func NewInquiryService(r repo.InquiryRepo, notifier Notifier) InquiryService {
	return &inquiryService{r: r, notifier: notifier}
}

type SubmitInquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Sector  string `json:"sector"`
	Message string `json:"message"`
}

func (s *inquiryService) List(ctx context.Context) ([]model.Inquiry, error) {
	return s.r.List(ctx)
}

func (s *inquiryService) Submit(ctx context.Context, in SubmitInquiryInput) (*model.Inquiry, error) {
	i := &model.Inquiry{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Sector:    in.Sector,
		Message:   in.Message,
		Status:    model.InquiryStatusUnread,
		CreatedAt: now(),
	}
	if _, err := s.r.Create(ctx, i); err != nil {
		return nil, err
	}
	telemetry.RecordSubmission(ctx, "inquiry")
	s.notifier.NewInquiry(ctx, i)
	return i, nil
}

func (s *inquiryService) Delete(ctx context.Context, id string) (int64, error) {
	return s.r.Delete(ctx, id)
}
