package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rakib-hossain32/doha-popular/internal/bootstrap"
	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/rakib-hossain32/doha-popular/internal/infra/cache"
	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	mq "github.com/rakib-hossain32/doha-popular/internal/infra/queue"
	"github.com/rakib-hossain32/doha-popular/internal/middleware"
	"github.com/rakib-hossain32/doha-popular/internal/modules/handler"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
	"github.com/rakib-hossain32/doha-popular/internal/router"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and admin pages",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inj := bootstrap.BuildContainer()
	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Sugar().Infow("starting", "version", version, "config", cfg.Redacted())

	if telemetry.Enabled(cfg) {
		if _, err := telemetry.SetupTracing(ctx, cfg, version); err != nil {
			log.Warn("tracing disabled", zap.Error(err))
		} else {
			defer func() {
				if err := telemetry.Shutdown(context.Background()); err != nil {
					log.Warn("tracing shutdown", zap.Error(err))
				}
			}()
			if err := cache.RegisterOpenTelemetryPlugin(do.MustInvoke[*redis.Client](inj)); err != nil {
				log.Warn("redis tracing", zap.Error(err))
			}
		}
		if _, err := telemetry.SetupMetrics(ctx, cfg, version); err != nil {
			log.Warn("otlp metrics disabled", zap.Error(err))
		} else {
			defer func() { _ = telemetry.ShutdownMetrics(context.Background()) }()
		}
	}

	store, err := do.Invoke[docstore.Store](inj)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()

	rdb, err := do.Invoke[*redis.Client](inj)
	if err != nil {
		return err
	}
	defer func() { _ = cache.Close(rdb) }()

	if err := bootstrap.EnsureProjectsSeeded(ctx,
		do.MustInvoke[repo.ProjectRepo](inj),
		do.MustInvoke[service.SeedService](inj),
		cfg, log,
	); err != nil {
		return err
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:             cfg,
		Log:                log,
		Metrics:            do.MustInvoke[*middleware.HTTPMetrics](inj),
		RateLimiter:        do.MustInvoke[*middleware.IPRateLimiter](inj),
		Auth:               do.MustInvoke[service.AuthService](inj),
		HealthHandler:      do.MustInvoke[*handler.HealthHandler](inj),
		ProjectHandler:     do.MustInvoke[*handler.ProjectHandler](inj),
		TeamHandler:        do.MustInvoke[*handler.TeamHandler](inj),
		TestimonialHandler: do.MustInvoke[*handler.TestimonialHandler](inj),
		CareerHandler:      do.MustInvoke[*handler.CareerHandler](inj),
		ContactHandler:     do.MustInvoke[*handler.ContactHandler](inj),
		SettingsHandler:    do.MustInvoke[*handler.SettingsHandler](inj),
		SeedHandler:        do.MustInvoke[*handler.SeedHandler](inj),
		AuthHandler:        do.MustInvoke[*handler.AuthHandler](inj),
		AdminPageHandler:   do.MustInvoke[*handler.AdminPageHandler](inj),
	})

	if cfg.MailEnabled() && cfg.Mail.Transport == "queue" {
		defer func() {
			_ = do.MustInvoke[*mq.Publisher](inj).Close()
			_ = do.MustInvoke[*amqp.Connection](inj).Close()
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	err = g.Wait()

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if derr := do.MustInvoke[service.Notifier](inj).Drain(drainCtx); derr != nil {
		log.Warn("pending notifications abandoned", zap.Error(derr))
	}
	return err
}
