package bootstrap

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
	"go.uber.org/zap"
)

// EnsureProjectsSeeded loads the built-in portfolio when the store holds no projects.
// Existing projects are never touched.
func EnsureProjectsSeeded(ctx context.Context, projects repo.ProjectRepo, seed service.SeedService, cfg *config.Config, log *zap.Logger) error {
	if !cfg.Store.SeedOnEmpty {
		return nil
	}

	n, err := projects.Count(ctx, nil)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Sugar().Debugw("projects present, skipping seed", "count", n)
		return nil
	}

	inserted, err := seed.ReseedProjects(ctx)
	if err != nil {
		return err
	}
	log.Sugar().Infow("seeded empty project collection", "inserted", inserted)
	return nil
}
