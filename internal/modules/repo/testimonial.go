package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
)

type TestimonialRepo interface {
	// Page returns one page of testimonials, newest first, plus the total matching the filter.
	// An empty status matches every testimonial.
	Page(ctx context.Context, status string, skip, limit int64) ([]model.Testimonial, int64, error)
	Create(ctx context.Context, t *model.Testimonial) (string, error)
	SetStatus(ctx context.Context, id, status string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter docstore.Filter) (int64, error)
}

type testimonialRepo struct {
	documentRepo[model.Testimonial]
}

func NewTestimonialRepo(store docstore.Store) TestimonialRepo {
	return &testimonialRepo{newDocumentRepo[model.Testimonial](store.Collection(model.CollectionTestimonials), "createdAt")}
}

func (r *testimonialRepo) Page(ctx context.Context, status string, skip, limit int64) ([]model.Testimonial, int64, error) {
	var filter docstore.Filter
	if status != "" {
		filter = docstore.Filter{"status": status}
	}
	total, err := r.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	items, err := r.find(ctx, filter, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *testimonialRepo) SetStatus(ctx context.Context, id, status string) (int64, error) {
	return r.Update(ctx, id, map[string]any{"status": status})
}
