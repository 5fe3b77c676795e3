package bootstrap

import (
	"context"

	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/rakib-hossain32/doha-popular/internal/infra/cache"
	"github.com/rakib-hossain32/doha-popular/internal/infra/docstore"
	"github.com/rakib-hossain32/doha-popular/internal/infra/logger"
	"github.com/rakib-hossain32/doha-popular/internal/infra/mail"
	mq "github.com/rakib-hossain32/doha-popular/internal/infra/queue"
	"github.com/rakib-hossain32/doha-popular/internal/middleware"
	"github.com/rakib-hossain32/doha-popular/internal/modules/handler"
	"github.com/rakib-hossain32/doha-popular/internal/modules/repo"
	"github.com/rakib-hossain32/doha-popular/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.App.Env, cfg.Log.Level)
	})

	// document store
	do.Provide(inj, func(i *do.Injector) (docstore.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Store.Timeout)
		defer cancel()
		return docstore.Open(ctx, cfg)
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(context.Background(), cfg)
	})

	// RabbitMQ is only dialed when something asks for it: queue mail transport or the worker.
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		return mq.Dial(do.MustInvoke[*config.Config](i))
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return mq.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*zap.Logger](i),
			cfg,
			cfg.RabbitMQ.MailQueue,
		)
	})

	// SMTP delivery, used directly or by the mail worker.
	do.Provide(inj, func(i *do.Injector) (*mail.SMTPSender, error) {
		return mail.NewSMTPSender(do.MustInvoke[*config.Config](i), do.MustInvoke[*zap.Logger](i))
	})

	// Sender used by the API process for admin notifications.
	do.Provide(inj, func(i *do.Injector) (mail.Sender, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if !cfg.MailEnabled() {
			log.Info("mail credentials absent, notifications disabled")
			return mail.NopSender{}, nil
		}
		if cfg.Mail.Transport == "queue" {
			pub, err := do.Invoke[*mq.Publisher](i)
			if err != nil {
				return nil, err
			}
			return mail.NewQueueSender(pub, cfg.RabbitMQ.MailQueue), nil
		}
		smtp, err := do.Invoke[*mail.SMTPSender](i)
		if err != nil {
			return nil, err
		}
		return smtp, nil
	})

	do.Provide(inj, func(i *do.Injector) (service.Notifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		to := cfg.Mail.NotifyTo
		if !cfg.MailEnabled() {
			to = ""
		}
		return service.NewNotifier(do.MustInvoke[mail.Sender](i), to, do.MustInvoke[*zap.Logger](i)), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[docstore.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TeamRepo, error) {
		return repo.NewTeamRepo(do.MustInvoke[docstore.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TestimonialRepo, error) {
		return repo.NewTestimonialRepo(do.MustInvoke[docstore.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ApplicationRepo, error) {
		return repo.NewApplicationRepo(do.MustInvoke[docstore.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.InquiryRepo, error) {
		return repo.NewInquiryRepo(do.MustInvoke[docstore.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.SettingsRepo, error) {
		return repo.NewSettingsRepo(do.MustInvoke[docstore.Store](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TeamService, error) {
		return service.NewTeamService(do.MustInvoke[repo.TeamRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TestimonialService, error) {
		return service.NewTestimonialService(do.MustInvoke[repo.TestimonialRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CareerService, error) {
		return service.NewCareerService(
			do.MustInvoke[repo.ApplicationRepo](i),
			do.MustInvoke[service.Notifier](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.InquiryService, error) {
		return service.NewInquiryService(
			do.MustInvoke[repo.InquiryRepo](i),
			do.MustInvoke[service.Notifier](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SettingsService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewSettingsService(
			do.MustInvoke[repo.SettingsRepo](i),
			do.MustInvoke[*redis.Client](i),
			cfg.Settings.CacheTTL,
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.AdminConfigured() {
			do.MustInvoke[*zap.Logger](i).Warn("admin credentials absent, every sign-in will be denied")
		}
		return service.NewAuthService(service.AuthConfig{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
			Secret:   cfg.Admin.SessionSecret,
			TTL:      cfg.Admin.SessionTTL,
		}, do.MustInvoke[*redis.Client](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.SeedService, error) {
		return service.NewSeedService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DashboardService, error) {
		return service.NewDashboardService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.TeamRepo](i),
			do.MustInvoke[repo.TestimonialRepo](i),
			do.MustInvoke[repo.ApplicationRepo](i),
			do.MustInvoke[repo.InquiryRepo](i),
		), nil
	})

	// Middleware state
	do.Provide(inj, func(i *do.Injector) (*middleware.HTTPMetrics, error) {
		return middleware.NewHTTPMetrics(do.MustInvoke[*config.Config](i).App.Name), nil
	})
	do.Provide(inj, func(i *do.Injector) (*middleware.IPRateLimiter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (handler.CookieConfig, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return handler.CookieConfig{
			Name:   cfg.Admin.CookieName,
			Secure: cfg.Admin.CookieSecure,
			TTL:    cfg.Admin.SessionTTL,
		}, nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.HealthHandler, error) {
		return handler.NewHealthHandler(do.MustInvoke[docstore.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TeamHandler, error) {
		return handler.NewTeamHandler(do.MustInvoke[service.TeamService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TestimonialHandler, error) {
		return handler.NewTestimonialHandler(do.MustInvoke[service.TestimonialService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CareerHandler, error) {
		return handler.NewCareerHandler(do.MustInvoke[service.CareerService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContactHandler, error) {
		return handler.NewContactHandler(do.MustInvoke[service.InquiryService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SettingsHandler, error) {
		return handler.NewSettingsHandler(do.MustInvoke[service.SettingsService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.SeedHandler, error) {
		return handler.NewSeedHandler(do.MustInvoke[service.SeedService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[handler.CookieConfig](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AdminPageHandler, error) {
		return handler.NewAdminPageHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[service.DashboardService](i),
			do.MustInvoke[service.SettingsService](i),
			do.MustInvoke[handler.CookieConfig](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	return inj
}
