package service

import (
	"context"
	"math"
	"net/url"

	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

type TestimonialService interface {
	List(ctx context.Context, in ListTestimonialsInput) (*ListTestimonialsOutput, error)
	Create(ctx context.Context, in CreateTestimonialInput) (*model.Testimonial, error)
	// SetStatus accepts any status string.
	SetStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type testimonialService struct {
	r repo.TestimonialRepo
}

func NewTestimonialService(r repo.TestimonialRepo) TestimonialService {
	return &testimonialService{r: r}
}

type ListTestimonialsInput struct {
	Status string `form:"status" json:"status"`
	Page   int    `form:"page" json:"page"`
	Limit  int    `form:"limit" json:"limit"`
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type ListTestimonialsOutput struct {
	Items      []model.Testimonial `json:"items"`
	Pagination Pagination          `json:"pagination"`
}

// TotalPages is ceil(total/limit).
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	if total <= 0 {
		return 0
	}
	return (total-1)/int64(limit) + 1
}

func (s *testimonialService) List(ctx context.Context, in ListTestimonialsInput) (*ListTestimonialsOutput, error) {
	if in.Page < 1 {
		in.Page = DefaultPage
	}
	if in.Limit < 1 {
		in.Limit = DefaultLimit
	}
	// A page past the representable offset is simply past the end.
	skip := int64(math.MaxInt64)
	if p := int64(in.Page - 1); p <= math.MaxInt64/int64(in.Limit) {
		skip = p * int64(in.Limit)
	}

	items, total, err := s.r.Page(ctx, in.Status, skip, int64(in.Limit))
	if err != nil {
		return nil, err
	}
	return &ListTestimonialsOutput{
		Items: items,
		Pagination: Pagination{
			Total:      total,
			Page:       in.Page,
			Limit:      in.Limit,
			TotalPages: TotalPages(total, in.Limit),
		},
	}, nil
}

type CreateTestimonialInput struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
}

// AvatarURL is the generated avatar used when a submission carries none.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=0D8ABC&color=fff"
}

func (s *testimonialService) Create(ctx context.Context, in CreateTestimonialInput) (*model.Testimonial, error) {
	t := &model.Testimonial{
		Name:      in.Name,
		Role:      in.Role,
		Content:   in.Content,
		Rating:    in.Rating,
		Avatar:    in.Avatar,
		Status:    model.TestimonialStatusPending,
		CreatedAt: now(),
	}
	if t.Rating == 0 {
		t.Rating = model.DefaultTestimonialRating
	}
	if t.Avatar == "" {
		t.Avatar = AvatarURL(in.Name)
	}
	if _, err := s.r.Create(ctx, t); err != nil {
		return nil, err
	}
	telemetry.RecordSubmission(ctx, "testimonial")
	return t, nil
}

func (s *testimonialService) SetStatus(ctx context.Context, id, status string) (int64, error) {
	return s.r.SetStatus(ctx, id, status)
}

func (s *testimonialService) Delete(ctx context.Context, id string) (int64, error) {
	return s.r.Delete(ctx, id)
}
