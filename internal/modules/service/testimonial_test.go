package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		want  int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 5, 5},
		{5, 0, 0},
		{3, math.MaxInt64, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestAvatarURL(t *testing.T) {
	assert.Equal(t, "https://ui-avatars.com/api/?name=Ahmed+Al+Thani&background=0D8ABC&color=fff", AvatarURL("Ahmed Al Thani"))
	assert.Equal(t, AvatarURL("Sara & Co"), AvatarURL("Sara & Co"))
	assert.Contains(t, AvatarURL("Sara & Co"), "Sara+%26+Co")
}

func TestTestimonialService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewTestimonialService(repo.NewTestimonialRepo(docstore.NewMemory()))

	created, err := svc.Create(ctx, CreateTestimonialInput{Name: "Layla", Role: "Manager", Content: "Great"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 5, created.Rating)
	assert.Equal(t, AvatarURL("Layla"), created.Avatar)
	assert.Equal(t, model.TestimonialStatusPending, created.Status)

	custom, err := svc.Create(ctx, CreateTestimonialInput{Name: "Omar", Rating: 3, Avatar: "https://x/y.png"})
	require.NoError(t, err)
	assert.Equal(t, 3, custom.Rating)
	assert.Equal(t, "https://x/y.png", custom.Avatar)

	out, err := svc.List(ctx, ListTestimonialsInput{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	for _, it := range out.Items {
		assert.Equal(t, model.TestimonialStatusPending, it.Status)
		if it.Name == "Layla" {
			assert.Equal(t, 5, it.Rating)
			assert.Equal(t, AvatarURL("Layla"), it.Avatar)
		}
	}
}

func TestTestimonialService_PaginationSlices(t *testing.T) {
	ctx := context.Background()
	r := repo.NewTestimonialRepo(docstore.NewMemory())
	svc := NewTestimonialService(r)

	base := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	var approved []string
	for i := 0; i < 23; i++ {
		status := model.TestimonialStatusApproved
		if i%4 == 0 {
			status = model.TestimonialStatusPending
		}
		name := fmt.Sprintf("t%02d", i)
		_, err := r.Create(ctx, &model.Testimonial{Name: name, Status: status, CreatedAt: base.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
		if status == model.TestimonialStatusApproved {
			approved = append([]string{name}, approved...)
		}
	}
	require.Len(t, approved, 17)

	for _, limit := range []int{1, 4, 5, 17, 30} {
		pages := (len(approved) + limit - 1) / limit
		for p := 1; p <= pages+1; p++ {
			out, err := svc.List(ctx, ListTestimonialsInput{Status: model.TestimonialStatusApproved, Page: p, Limit: limit})
			require.NoError(t, err)
			assert.Equal(t, int64(17), out.Pagination.Total)
			assert.Equal(t, int64(pages), out.Pagination.TotalPages)

			lo := (p - 1) * limit
			hi := min(p*limit, len(approved))
			var want []string
			if lo < len(approved) {
				want = approved[lo:hi]
			}
			var got []string
			for _, it := range out.Items {
				got = append(got, it.Name)
			}
			assert.Equal(t, want, got, "page=%d limit=%d", p, limit)
		}
	}
}

func TestTestimonialService_ListDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewTestimonialService(repo.NewTestimonialRepo(docstore.NewMemory()))

	out, err := svc.List(ctx, ListTestimonialsInput{Page: -2, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Pagination.Page)
	assert.Equal(t, 10, out.Pagination.Limit)
	assert.Equal(t, int64(0), out.Pagination.TotalPages)
	assert.NotNil(t, out.Items)
}

func TestTestimonialService_SetStatusAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewTestimonialService(repo.NewTestimonialRepo(docstore.NewMemory()))

	created, err := svc.Create(ctx, CreateTestimonialInput{Name: "Noor"})
	require.NoError(t, err)

	matched, err := svc.SetStatus(ctx, created.ID, "featured")
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	out, _ := svc.List(ctx, ListTestimonialsInput{Status: "featured"})
	assert.Len(t, out.Items, 1)

	for _, want := range []int64{1, 0, 0} {
		n, err := svc.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}

func TestTestimonialService_PageBeyondOffsetRange(t *testing.T) {
	ctx := context.Background()
	r := repo.NewTestimonialRepo(docstore.NewMemory())
	svc := NewTestimonialService(r)
	for _, name := range []string{"a", "b", "c"} {
		_, err := r.Create(ctx, &model.Testimonial{Name: name, Status: model.TestimonialStatusApproved, CreatedAt: time.Now()})
		require.NoError(t, err)
	}

	for _, in := range []ListTestimonialsInput{
		{Page: 922337203685477590, Limit: 10},
		{Page: math.MaxInt, Limit: math.MaxInt},
	} {
		out, err := svc.List(ctx, in)
		require.NoError(t, err)
		assert.Empty(t, out.Items, "page=%d limit=%d", in.Page, in.Limit)
		assert.Equal(t, int64(3), out.Pagination.Total)
		assert.Equal(t, int64(1), out.Pagination.TotalPages)
	}
}
