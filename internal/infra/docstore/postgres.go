package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"
)

// documentRow stores every collection in one jsonb table.
type documentRow struct {
	ID         string            `gorm:"type:uuid;primaryKey"`
	Collection string            `gorm:"type:text;not null;index"`
	Data       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time         `gorm:"autoCreateTime"`
	UpdatedAt  time.Time         `gorm:"autoUpdateTime"`
}

func (documentRow) TableName() string { return "documents" }

type PostgresOptions struct {
	DSN         string
	EnableTLS   bool
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
	Tracing     bool
}

type postgresStore struct {
	db *gorm.DB
}

var sslmodeRegex = regexp.MustCompile(`(?i)\bsslmode\s*=\s*\w+`)

// NewPostgres opens a gorm connection and prepares the documents table.
func NewPostgres(opts PostgresOptions) (Store, error) {
	dsn := opts.DSN
	if opts.EnableTLS {
		if sslmodeRegex.MatchString(dsn) {
			dsn = sslmodeRegex.ReplaceAllString(dsn, "sslmode=require")
		} else {
			if !strings.HasSuffix(dsn, " ") {
				dsn += " "
			}
			dsn += "sslmode=require"
		}
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if opts.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpen)
	}
	if opts.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdle)
	}
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin()); err != nil {
			return nil, err
		}
	}
	if opts.AutoMigrate {
		if err := db.AutoMigrate(&documentRow{}); err != nil {
			return nil, fmt.Errorf("migrate documents: %w", err)
		}
	}
	return &postgresStore{db: db}, nil
}

// NewPostgresFromDB wraps an existing gorm handle.
func NewPostgresFromDB(db *gorm.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Collection(name string) Collection {
	return &pgCollection{db: s.db, name: name}
}

func (s *postgresStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *postgresStore) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type pgCollection struct {
	db   *gorm.DB
	name string
}

func (c *pgCollection) scoped(ctx context.Context, filter Filter) (*gorm.DB, error) {
	q := c.db.WithContext(ctx).Model(&documentRow{}).Where("collection = ?", c.name)
	if len(filter) > 0 {
		b, err := sonic.Marshal(filter)
		if err != nil {
			return nil, err
		}
		q = q.Where("data @> ?", string(b))
	}
	return q, nil
}

func rowsToJSON(rows []documentRow) []map[string]any {
	docs := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		docs = append(docs, withID(r.Data, r.ID))
	}
	return docs
}

func (c *pgCollection) Find(ctx context.Context, q Query, out any) error {
	if _, err := sliceElem(out); err != nil {
		return err
	}
	tx, err := c.scoped(ctx, q.Filter)
	if err != nil {
		return err
	}
	if q.SortDesc != "" {
		if err := checkField(q.SortDesc); err != nil {
			return err
		}
		tx = tx.Order("(data->>'" + q.SortDesc + "')::timestamptz DESC NULLS LAST")
	}
	if q.Skip > 0 {
		tx = tx.Offset(int(q.Skip))
	}
	if q.Limit > 0 {
		tx = tx.Limit(int(q.Limit))
	}

	var rows []documentRow
	if err := tx.Find(&rows).Error; err != nil {
		return err
	}
	return decodeJSONDocs(rowsToJSON(rows), out)
}

func (c *pgCollection) FindOne(ctx context.Context, filter Filter, out any) error {
	tx, err := c.scoped(ctx, filter)
	if err != nil {
		return err
	}
	var row documentRow
	if err := tx.Order("created_at ASC").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return decodeJSONDocs(withID(row.Data, row.ID), out)
}

func (c *pgCollection) Count(ctx context.Context, filter Filter) (int64, error) {
	tx, err := c.scoped(ctx, filter)
	if err != nil {
		return 0, err
	}
	var n int64
	return n, tx.Count(&n).Error
}

func (c *pgCollection) newRow(doc any) (*documentRow, error) {
	data, err := toJSONMap(doc)
	if err != nil {
		return nil, err
	}
	return &documentRow{ID: uuid.NewString(), Collection: c.name, Data: datatypes.JSONMap(data)}, nil
}

func (c *pgCollection) Insert(ctx context.Context, doc any) (string, error) {
	row, err := c.newRow(doc)
	if err != nil {
		return "", err
	}
	if err := c.db.WithContext(ctx).Create(row).Error; err != nil {
		return "", err
	}
	return row.ID, nil
}

func (c *pgCollection) InsertMany(ctx context.Context, docs []any) ([]string, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	rows := make([]*documentRow, 0, len(docs))
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		row, err := c.newRow(d)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
		ids = append(ids, row.ID)
	}
	if err := c.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *pgCollection) Set(ctx context.Context, id string, fields map[string]any) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	patch, err := toJSONMap(fields)
	if err != nil {
		return 0, err
	}
	if len(patch) == 0 {
		var n int64
		err := c.db.WithContext(ctx).Model(&documentRow{}).
			Where("collection = ? AND id = ?", c.name, id).Count(&n).Error
		return n, err
	}
	b, err := sonic.Marshal(patch)
	if err != nil {
		return 0, err
	}
	res := c.db.WithContext(ctx).Model(&documentRow{}).
		Where("collection = ? AND id = ?", c.name, id).
		Update("data", gorm.Expr("data || ?::jsonb", string(b)))
	return res.RowsAffected, res.Error
}

// Upsert is read-then-write; concurrent writers resolve last-write-wins.
func (c *pgCollection) Upsert(ctx context.Context, filter Filter, fields map[string]any) error {
	patch, err := toJSONMap(fields)
	if err != nil {
		return err
	}
	if len(patch) == 0 {
		return nil
	}

	tx, err := c.scoped(ctx, filter)
	if err != nil {
		return err
	}
	var row documentRow
	err = tx.Order("created_at ASC").First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		for k, v := range filter {
			if _, ok := patch[k]; !ok {
				patch[k] = v
			}
		}
		return c.db.WithContext(ctx).Create(&documentRow{
			ID:         uuid.NewString(),
			Collection: c.name,
			Data:       datatypes.JSONMap(patch),
		}).Error
	case err != nil:
		return err
	}
	_, err = c.Set(ctx, row.ID, patch)
	return err
}

func (c *pgCollection) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	res := c.db.WithContext(ctx).
		Where("collection = ? AND id = ?", c.name, id).
		Delete(&documentRow{})
	return res.RowsAffected, res.Error
}

func (c *pgCollection) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	q := c.db.WithContext(ctx).Where("collection = ?", c.name)
	if len(filter) > 0 {
		b, err := sonic.Marshal(filter)
		if err != nil {
			return 0, err
		}
		q = q.Where("data @> ?", string(b))
	}
	res := q.Delete(&documentRow{})
	return res.RowsAffected, res.Error
}
