package docstore

import (
	"context"
	"fmt"

	"github.com/rakib-hossain32/doha-popular/internal/config"
)

// Open builds the backend selected by store.driver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case "", "mongo", "mongodb":
		return NewMongo(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase, cfg.Store.Timeout)
	case "postgres":
		return NewPostgres(PostgresOptions{
			DSN:         cfg.Store.PostgresDSN,
			EnableTLS:   cfg.Store.EnableTLS,
			MaxOpen:     cfg.Store.MaxOpen,
			MaxIdle:     cfg.Store.MaxIdle,
			AutoMigrate: cfg.Store.AutoMigrate,
			Tracing:     cfg.Telemetry.Enabled && cfg.Telemetry.OtlpEndpoint != "",
		})
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
