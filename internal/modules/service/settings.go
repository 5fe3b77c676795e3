package service

import (
	"context"
	"errors"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/infra/cache"
	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	settingsCacheKey = "site:settings"
	// settingsGenKey is bumped on every save so a read that raced a save
	// never repopulates the cache with what it loaded before the save.
	settingsGenKey = "site:settings:gen"
)

type SettingsService interface {
	// Get returns the saved settings, or the built-in defaults when none were saved.
	// Defaults are never written to the store.
	Get(ctx context.Context) (*model.Settings, error)
	// Save merges fields into the singleton, creating it on first save.
	Save(ctx context.Context, fields map[string]any) error
}

type settingsService struct {
	r   repo.SettingsRepo
	rdb redis.UniversalClient
	ttl time.Duration
	log *zap.Logger
}

// NewSettingsService caches reads in rdb for ttl. A nil rdb or zero ttl disables the cache.
func NewSettingsService(r repo.SettingsRepo, rdb redis.UniversalClient, ttl time.Duration, log *zap.Logger) SettingsService {
	return &settingsService{r: r, rdb: rdb, ttl: ttl, log: log.Named("settings")}
}

func (s *settingsService) cached() bool { return s.rdb != nil && s.ttl > 0 }

func (s *settingsService) Get(ctx context.Context) (*model.Settings, error) {
	var gen string
	if s.cached() {
		var hit model.Settings
		ok, err := cache.GetJSON(ctx, s.rdb, settingsCacheKey, &hit)
		if err != nil {
			s.log.Warn("settings cache read failed", zap.Error(err))
		} else if ok {
			return &hit, nil
		}
		gen, _ = s.rdb.Get(ctx, settingsGenKey).Result()
	}

	st, err := s.r.Get(ctx)
	if errors.Is(err, docstore.ErrNotFound) {
		d := model.DefaultSettings()
		st, err = &d, nil
	}
	if err != nil {
		return nil, err
	}

	if s.cached() {
		if err := s.fill(ctx, gen, st); err != nil && !errors.Is(err, redis.TxFailedErr) {
			s.log.Warn("settings cache write failed", zap.Error(err))
		}
	}
	return st, nil
}

// fill caches st only if no save has happened since gen was read.
func (s *settingsService) fill(ctx context.Context, gen string, st *model.Settings) error {
	return s.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, settingsGenKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			return cache.SetJSON(ctx, p, settingsCacheKey, st, s.ttl)
		})
		return err
	}, settingsGenKey)
}

func (s *settingsService) Save(ctx context.Context, fields map[string]any) error {
	patch, err := conform[model.Settings](fields)
	if err != nil {
		return err
	}
	patch["updatedAt"] = now()
	if err := s.r.Upsert(ctx, patch); err != nil {
		return err
	}
	if s.rdb != nil {
		if err := s.rdb.Incr(ctx, settingsGenKey).Err(); err != nil {
			s.log.Warn("settings cache generation bump failed", zap.Error(err))
		}
		if err := s.rdb.Del(ctx, settingsCacheKey).Err(); err != nil {
			s.log.Warn("settings cache invalidation failed", zap.Error(err))
		}
	}
	return nil
}
