package mq

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rakib-hossain32/doha-popular/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tableCarrier adapts amqp.Table to TextMapCarrier for OpenTelemetry propagation
type tableCarrier struct {
	table amqp.Table
}

func (c tableCarrier) Get(key string) string {
	if val, ok := c.table[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
		return fmt.Sprintf("%v", val)
	}
	return ""
}

func (c tableCarrier) Set(key, value string) {
	c.table[key] = value
}

func (c tableCarrier) Keys() []string {
	keys := make([]string, 0, len(c.table))
	for k := range c.table {
		keys = append(keys, k)
	}
	return keys
}

// Dial opens the broker connection described by cfg.RabbitMQ.
func Dial(cfg *config.Config) (*amqp.Connection, error) {
	if cfg.RabbitMQ.EnableTLS {
		return amqp.DialTLS(cfg.RabbitMQ.URL, &tls.Config{MinVersion: tls.VersionTLS12})
	}
	return amqp.Dial(cfg.RabbitMQ.URL)
}

// Publisher sends JSON messages to durable queues through the default exchange.
type Publisher struct {
	ch      *amqp.Channel
	log     *zap.Logger
	appName string
}

type Consumer struct {
	ch      *amqp.Channel
	q       amqp.Queue
	log     *zap.Logger
	appName string
}

// NewPublisher opens a channel and declares queues so messages published
// before any worker starts are kept.
func NewPublisher(conn *amqp.Connection, log *zap.Logger, cfg *config.Config, queues ...string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	for _, q := range queues {
		if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			return nil, fmt.Errorf("declare queue %s: %w", q, err)
		}
	}
	return &Publisher{ch: ch, log: log, appName: cfg.App.Name}, nil
}

func (p *Publisher) Close() error { return p.ch.Close() }

// PublishJSON routes body to queue via the default exchange.
func (p *Publisher) PublishJSON(ctx context.Context, queue string, body any) error {
	b, err := sonic.Marshal(body)
	if err != nil {
		return err
	}

	ctx, span := otel.Tracer(p.appName).Start(ctx, "rabbitmq.publish",
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination", queue),
			attribute.String("messaging.destination_kind", "queue"),
		))
	defer span.End()

	headers := make(amqp.Table)
	otel.GetTextMapPropagator().Inject(ctx, tableCarrier{table: headers})

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         b,
		Headers:      headers,
	}

	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, publishing); err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttributes(attribute.Int("messaging.message.body.size", len(b)))
	return nil
}

func NewConsumer(conn *amqp.Connection, queueName string, prefetch int, log *zap.Logger, cfg *config.Config) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	if prefetch <= 0 {
		prefetch = 10
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}
	q, err := ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	return &Consumer{ch: ch, q: q, log: log, appName: cfg.App.Name}, nil
}

func (c *Consumer) Close() error { return c.ch.Close() }

// Handle delivers each message to handler until ctx is done.
// A failed message is logged and dropped; nothing is requeued.
func (c *Consumer) Handle(ctx context.Context, handler func(context.Context, []byte) error) error {
	msgs, err := c.ch.Consume(c.q.Name, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	tracer := otel.Tracer(c.appName)
	propagator := otel.GetTextMapPropagator()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-msgs:
			if !ok {
				return errors.New("consumer channel closed")
			}
			c.process(propagator.Extract(ctx, tableCarrier{table: headersOf(m)}), tracer, m, handler)
		}
	}
}

func headersOf(m amqp.Delivery) amqp.Table {
	if m.Headers == nil {
		return amqp.Table{}
	}
	return m.Headers
}

func (c *Consumer) process(msgCtx context.Context, tracer trace.Tracer, m amqp.Delivery, handler func(context.Context, []byte) error) {
	msgCtx, span := tracer.Start(msgCtx, "rabbitmq.consume",
		trace.WithAttributes(
			attribute.String("messaging.system", "rabbitmq"),
			attribute.String("messaging.destination", c.q.Name),
			attribute.String("messaging.destination_kind", "queue"),
			attribute.String("messaging.operation", "receive"),
			attribute.Int("messaging.message.body.size", len(m.Body)),
		))
	defer span.End()

	if err := handler(msgCtx, m.Body); err != nil {
		span.RecordError(err)
		_ = m.Nack(false, false)
		c.log.Error("consume error, message dropped", zap.String("queue", c.q.Name), zap.Error(err))
		return
	}
	_ = m.Ack(false)
}
