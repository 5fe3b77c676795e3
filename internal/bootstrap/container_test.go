package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/infra/mail"
	"github.com/rakib-hossain32/doha-popular/internal/modules/handler"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
	"github.com/samber/do"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	mr := miniredis.RunT(t)
	return &config.Config{
		App:      config.AppCfg{Name: "dohapopular-test", Env: "test"},
		Store:    config.StoreCfg{Driver: "memory", Timeout: time.Second},
		Redis:    config.RedisCfg{Addr: mr.Addr(), PoolSize: 2},
		Admin:    config.AdminCfg{CookieName: "dp_admin", SessionTTL: time.Hour},
		Settings: config.SettingsCfg{CacheTTL: time.Minute},
	}
}

func TestBuildContainer_ResolvesHandlers(t *testing.T) {
	inj := BuildContainer()
	do.OverrideValue(inj, testConfig(t))
	do.OverrideValue(inj, zap.NewNop())

	_, err := do.Invoke[*handler.CareerHandler](inj)
	require.NoError(t, err)
	_, err = do.Invoke[*handler.AdminPageHandler](inj)
	require.NoError(t, err)
	_, err = do.Invoke[*handler.HealthHandler](inj)
	require.NoError(t, err)

	sender := do.MustInvoke[mail.Sender](inj)
	assert.IsType(t, mail.NopSender{}, sender)
}

func TestEnsureProjectsSeeded(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	projects := repo.NewProjectRepo(docstore.NewMemory())
	seed := service.NewSeedService(projects)

	require.NoError(t, EnsureProjectsSeeded(ctx, projects, seed, cfg, zap.NewNop()))
	n, err := projects.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "disabled by default")

	cfg.Store.SeedOnEmpty = true
	require.NoError(t, EnsureProjectsSeeded(ctx, projects, seed, cfg, zap.NewNop()))
	seeded, err := projects.Count(ctx, nil)
	require.NoError(t, err)
	assert.Positive(t, seeded)

	_, err = projects.Create(ctx, &model.Project{Slug: "extra", Title: "Extra"})
	require.NoError(t, err)
	require.NoError(t, EnsureProjectsSeeded(ctx, projects, seed, cfg, zap.NewNop()))
	n, err = projects.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, seeded+1, n, "non-empty collection left alone")
}
