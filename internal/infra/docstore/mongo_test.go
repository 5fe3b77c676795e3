package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMongoTestStore connects to a local MongoDB; tests skip when none is reachable.
func setupMongoTestStore(t *testing.T) Store {
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	store, err := NewMongo(ctx, uri, "dohapopular_test_"+uuid.NewString()[:8], 2*time.Second)
	if err != nil {
		t.Skip("Test MongoDB not available, skipping integration tests")
		return nil
	}
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestMongo_RoundTrip(t *testing.T) {
	store := setupMongoTestStore(t)
	if store == nil {
		return
	}
	ctx := context.Background()
	c := store.Collection("things")
	t.Cleanup(func() { _, _ = c.DeleteMany(ctx, Filter{}) })

	id, err := c.Insert(ctx, &mongoDoc{Name: "a", Status: "pending", CreatedAt: time.Now().UTC()})
	require.NoError(t, err)

	var out []mongoDoc
	require.NoError(t, c.Find(ctx, Query{SortDesc: "createdAt"}, &out))
	require.Len(t, out, 1)
	assert.Equal(t, id, out[0].ID)

	matched, err := c.Set(ctx, id, map[string]any{"status": "approved"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	n, err := c.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = c.Delete(ctx, "not-hex")
	assert.ErrorIs(t, err, ErrInvalidID)
}

type mongoDoc struct {
	ID        string    `bson:"-" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

func (d *mongoDoc) SetID(id string) { d.ID = id }
