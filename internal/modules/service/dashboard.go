package service

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"golang.org/x/sync/errgroup"
)

type DashboardSummary struct {
	Projects            int64 `json:"projects"`
	TeamMembers         int64 `json:"teamMembers"`
	PendingTestimonials int64 `json:"pendingTestimonials"`
	Applications        int64 `json:"applications"`
	UnreadInquiries     int64 `json:"unreadInquiries"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}

type dashboardService struct {
	projects     repo.ProjectRepo
	team         repo.TeamRepo
	testimonials repo.TestimonialRepo
	applications repo.ApplicationRepo
	inquiries    repo.InquiryRepo
}

func NewDashboardService(
	projects repo.ProjectRepo,
	team repo.TeamRepo,
	testimonials repo.TestimonialRepo,
	applications repo.ApplicationRepo,
	inquiries repo.InquiryRepo,
) DashboardService {
	return &dashboardService{
		projects:     projects,
		team:         team,
		testimonials: testimonials,
		applications: applications,
		inquiries:    inquiries,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	var out DashboardSummary
	g, ctx := errgroup.WithContext(ctx)
	count := func(dst *int64, fn func(context.Context, docstore.Filter) (int64, error), f docstore.Filter) {
		g.Go(func() error {
			n, err := fn(ctx, f)
			*dst = n
			return err
		})
	}
	count(&out.Projects, s.projects.Count, nil)
	count(&out.TeamMembers, s.team.Count, nil)
	count(&out.PendingTestimonials, s.testimonials.Count, docstore.Filter{"status": model.TestimonialStatusPending})
	count(&out.Applications, s.applications.Count, nil)
	count(&out.UnreadInquiries, s.inquiries.Count, docstore.Filter{"status": model.InquiryStatusUnread})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}
