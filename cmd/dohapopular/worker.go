package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rakib-hossain32/doha-popular/internal/bootstrap"
	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/rakib-hossain32/doha-popular/internal/infra/mail"
	mq "github.com/rakib-hossain32/doha-popular/internal/infra/queue"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Deliver queued notification mail over SMTP",
	RunE:  runWorker,
}

// deliverQueued decodes one queued message and sends it.
func deliverQueued(sender mail.Sender) func(context.Context, []byte) error {
	return func(ctx context.Context, body []byte) error {
		var msg mail.Message
		if err := sonic.Unmarshal(body, &msg); err != nil {
			return fmt.Errorf("decode mail message: %w", err)
		}
		if msg.To == "" {
			return errors.New("queued mail has no recipient")
		}
		return sender.Send(ctx, msg)
	}
}

func runWorker(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inj := bootstrap.BuildContainer()
	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	if !cfg.MailEnabled() {
		return errors.New("mail worker needs mail.user and mail.password")
	}
	if telemetry.Enabled(cfg) {
		if _, err := telemetry.SetupTracing(ctx, cfg, version); err != nil {
			log.Warn("tracing disabled", zap.Error(err))
		} else {
			defer func() { _ = telemetry.Shutdown(context.Background()) }()
		}
	}

	smtp, err := do.Invoke[*mail.SMTPSender](inj)
	if err != nil {
		return err
	}
	conn, err := do.Invoke[*amqp.Connection](inj)
	if err != nil {
		return err
	}
	defer conn.Close()

	consumer, err := mq.NewConsumer(conn, cfg.RabbitMQ.MailQueue, cfg.RabbitMQ.Prefetch, log, cfg)
	if err != nil {
		return err
	}
	defer consumer.Close()

	log.Info("mail worker consuming", zap.String("queue", cfg.RabbitMQ.MailQueue))
	if err := consumer.Handle(ctx, deliverQueued(smtp)); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
