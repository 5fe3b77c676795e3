package docstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d *testDoc) SetID(id string) { d.ID = id }

func TestMemory_InsertFindSorted(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().Collection("things")

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c"} {
		_, err := c.Insert(ctx, testDoc{ID: "client-id", Name: name, Status: "pending", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}

	var out []testDoc
	require.NoError(t, c.Find(ctx, Query{SortDesc: "createdAt"}, &out))
	require.Len(t, out, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{out[0].Name, out[1].Name, out[2].Name})
	for _, d := range out {
		assert.NotEqual(t, "client-id", d.ID)
		assert.NotEmpty(t, d.ID)
	}

	out = nil
	require.NoError(t, c.Find(ctx, Query{SortDesc: "createdAt", Skip: 1, Limit: 1}, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "b", out[0].Name)
}

func TestMemory_FilterAndCount(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().Collection("things")

	_, _ = c.Insert(ctx, testDoc{Name: "a", Status: "pending"})
	_, _ = c.Insert(ctx, testDoc{Name: "b", Status: "approved"})
	_, _ = c.Insert(ctx, testDoc{Name: "c", Status: "approved"})

	n, err := c.Count(ctx, Filter{"status": "approved"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	var one testDoc
	require.NoError(t, c.FindOne(ctx, Filter{"name": "a"}, &one))
	assert.Equal(t, "pending", one.Status)

	err = c.FindOne(ctx, Filter{"name": "zzz"}, &one)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestMemory_SetMerges(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().Collection("things")

	id, err := c.Insert(ctx, testDoc{Name: "a", Status: "pending", Tags: []string{"x"}})
	require.NoError(t, err)

	matched, err := c.Set(ctx, id, map[string]any{"status": "approved", "id": "ignored"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var got testDoc
	require.NoError(t, c.FindOne(ctx, Filter{"name": "a"}, &got))
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "approved", got.Status)
	assert.Equal(t, []string{"x"}, got.Tags)

	matched, err = c.Set(ctx, "7b1b0c58-8c55-4d7e-9a43-000000000000", map[string]any{"status": "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)

	_, err = c.Set(ctx, "not-an-id", map[string]any{"status": "x"})
	assert.True(t, errors.Is(err, ErrInvalidID))
}

func TestMemory_UpsertSingleton(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().Collection("settings")

	require.NoError(t, c.Upsert(ctx, Filter{}, map[string]any{"siteName": "A", "phone": "1"}))
	require.NoError(t, c.Upsert(ctx, Filter{}, map[string]any{"siteName": "B"}))

	n, _ := c.Count(ctx, nil)
	assert.Equal(t, int64(1), n)

	var got map[string]any
	require.NoError(t, c.FindOne(ctx, Filter{}, &got))
	assert.Equal(t, "B", got["siteName"])
	assert.Equal(t, "1", got["phone"])
}

func TestMemory_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().Collection("things")

	id, _ := c.Insert(ctx, testDoc{Name: "a"})
	n, err := c.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	for i := 0; i < 2; i++ {
		n, err = c.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	}
}

func TestMemory_DeleteMany(t *testing.T) {
	ctx := context.Background()
	c := NewMemory().Collection("things")

	ids, err := c.InsertMany(ctx, []any{testDoc{Name: "a"}, testDoc{Name: "b"}})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	n, err := c.DeleteMany(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMemory_FindRejectsBadInput(t *testing.T) {
	c := NewMemory().Collection("things")
	var single testDoc
	assert.Error(t, c.Find(context.Background(), Query{}, &single))

	var out []testDoc
	assert.Error(t, c.Find(context.Background(), Query{SortDesc: "x; drop"}, &out))
}
