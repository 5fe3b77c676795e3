package docstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newPostgresWithMock(t *testing.T) (Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewPostgresFromDB(db), mock
}

func TestPostgres_FindFiltersAndSorts(t *testing.T) {
	store, mock := newPostgresWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "collection", "data", "created_at", "updated_at"}).
		AddRow("5f8c1d2e-0000-4000-8000-000000000001", "testimonials", []byte(`{"name":"a","status":"approved"}`), now, now)

	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE collection = \$1 AND data @> \$2 ORDER BY \(data->>'createdAt'\)::timestamptz DESC NULLS LAST LIMIT \$3 OFFSET \$4`).
		WithArgs("testimonials", `{"status":"approved"}`, 10, 10).
		WillReturnRows(rows)

	var out []testDoc
	err := store.Collection("testimonials").Find(context.Background(), Query{
		Filter:   Filter{"status": "approved"},
		SortDesc: "createdAt",
		Skip:     10,
		Limit:    10,
	}, &out)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "5f8c1d2e-0000-4000-8000-000000000001", out[0].ID)
	assert.Equal(t, "a", out[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_Count(t *testing.T) {
	store, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "documents" WHERE collection = \$1`).
		WithArgs("inquiries").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := store.Collection("inquiries").Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetMergesJSON(t *testing.T) {
	store, mock := newPostgresWithMock(t)
	id := "5f8c1d2e-0000-4000-8000-000000000002"

	mock.ExpectExec(`UPDATE "documents" SET "data"=data \|\| \$1::jsonb`).
		WithArgs(`{"status":"approved"}`, sqlmock.AnyArg(), "testimonials", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	matched, err := store.Collection("testimonials").Set(context.Background(), id, map[string]any{"status": "approved", "id": id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_SetRejectsMalformedID(t *testing.T) {
	store, mock := newPostgresWithMock(t)

	_, err := store.Collection("projects").Set(context.Background(), "abc", map[string]any{"title": "x"})
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_DeleteReturnsAffected(t *testing.T) {
	store, mock := newPostgresWithMock(t)
	id := "5f8c1d2e-0000-4000-8000-000000000003"

	mock.ExpectExec(`DELETE FROM "documents" WHERE collection = \$1 AND id = \$2`).
		WithArgs("inquiries", id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := store.Collection("inquiries").Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_FindOneNotFound(t *testing.T) {
	store, mock := newPostgresWithMock(t)

	mock.ExpectQuery(`SELECT \* FROM "documents" WHERE collection = \$1`).
		WithArgs("settings", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "collection", "data", "created_at", "updated_at"}))

	var out map[string]any
	err := store.Collection("settings").FindOne(context.Background(), nil, &out)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
