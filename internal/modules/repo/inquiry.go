package repo

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
)

type InquiryRepo interface {
	List(ctx context.Context) ([]model.Inquiry, error)
	Create(ctx context.Context, i *model.Inquiry) (string, error)
	Delete(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context, filter docstore.Filter) (int64, error)
}

type inquiryRepo struct {
	documentRepo[model.Inquiry]
}

func NewInquiryRepo(store docstore.Store) InquiryRepo {
	return &inquiryRepo{newDocumentRepo[model.Inquiry](store.Collection(model.CollectionInquiries), "createdAt")}
}

func (r *inquiryRepo) List(ctx context.Context) ([]model.Inquiry, error) {
	return r.find(ctx, nil, 0, 0)
}
