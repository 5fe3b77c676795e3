package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/config"
	"github.com/sony/gobreaker/v2"
	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

type deliverFunc func(ctx context.Context, msg *gomail.Msg) error

// SMTPSender sends through an authenticated SMTP relay behind a circuit breaker,
// so an unreachable relay stops costing a dial timeout on every submission.
type SMTPSender struct {
	from    string
	timeout time.Duration
	deliver deliverFunc
	breaker *gobreaker.CircuitBreaker[any]
	log     *zap.Logger
}

func NewSMTPSender(cfg *config.Config, log *zap.Logger) (*SMTPSender, error) {
	client, err := gomail.NewClient(cfg.Mail.Host,
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Mail.User),
		gomail.WithPassword(cfg.Mail.Password),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(cfg.Mail.SendTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	deliver := func(ctx context.Context, m *gomail.Msg) error {
		return client.DialAndSendWithContext(ctx, m)
	}
	return newSMTPSender(cfg.Mail.From, cfg.Mail.SendTimeout, deliver, log), nil
}

func newSMTPSender(from string, timeout time.Duration, deliver deliverFunc, log *zap.Logger) *SMTPSender {
	log = log.Named("mail")
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "smtp",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("smtp circuit state changed", zap.String("from", from.String()), zap.String("to", to.String()))
		},
	})
	return &SMTPSender{from: from, timeout: timeout, deliver: deliver, breaker: breaker, log: log}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	_, err := s.breaker.Execute(func() (any, error) {
		return nil, s.deliver(ctx, m)
	})
	return err
}
