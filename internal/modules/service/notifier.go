package service

import (
	"bytes"
	"context"
	"html/template"
	"sync"
	"time"

	"github.com/rakib-hossain32/doha-popular/internal/infra/mail"
	"github.com/rakib-hossain32/doha-popular/internal/modules/model"
	"github.com/rakib-hossain32/doha-popular/internal/telemetry"
	"go.uber.org/zap"
)

// Notifier tells the admin mailbox about new public submissions.
// Delivery is best effort and runs in the background: failures are logged, never returned.
type Notifier interface {
	NewInquiry(ctx context.Context, in *model.Inquiry)
	NewApplication(ctx context.Context, a *model.Application)
	// Drain waits for in-flight deliveries, or until ctx is done.
	Drain(ctx context.Context) error
}

var (
	inquiryMailTmpl = template.Must(template.New("inquiry").Parse(`<h2>New Contact Inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{if .Email}}{{.Email}}{{else}}N/A{{end}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Sector:</strong> {{if .Sector}}{{.Sector}}{{else}}N/A{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

	applicationMailTmpl = template.Must(template.New("application").Parse(`<h2>New Job Application</h2>
<p><strong>Position:</strong> {{.Position}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}N/A{{end}}</p>
<p><strong>Message:</strong></p>
<p>{{if .Message}}{{.Message}}{{else}}N/A{{end}}</p>
`))
)

type mailNotifier struct {
	sender mail.Sender
	to     string
	log    *zap.Logger
	wg     sync.WaitGroup
}

// NewNotifier returns a Notifier that mails `to`. An empty `to` disables notification.
func NewNotifier(sender mail.Sender, to string, log *zap.Logger) Notifier {
	return &mailNotifier{sender: sender, to: to, log: log.Named("notifier")}
}

func (n *mailNotifier) NewInquiry(ctx context.Context, in *model.Inquiry) {
	n.send(ctx, "inquiry", "New Contact Inquiry from "+in.Name, inquiryMailTmpl, in)
}

func (n *mailNotifier) NewApplication(ctx context.Context, a *model.Application) {
	n.send(ctx, "application", "New Job Application: "+a.Position, applicationMailTmpl, a)
}

func (n *mailNotifier) send(ctx context.Context, kind, subject string, tmpl *template.Template, data any) {
	if n.to == "" || n.sender == nil {
		return
	}
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		n.log.Error("render notification", zap.String("subject", subject), zap.Error(err))
		return
	}
	// The submission is already stored; the response must not wait on the
	// mail transport, and a finished request must not abort the send.
	ctx = context.WithoutCancel(ctx)
	msg := mail.Message{To: n.to, Subject: subject, HTML: body.String()}
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		start := time.Now()
		err := n.sender.Send(ctx, msg)
		telemetry.RecordNotification(ctx, kind, time.Since(start), err)
		if err != nil {
			n.log.Warn("notification not delivered", zap.String("subject", subject), zap.Error(err))
		}
	}()
}

func (n *mailNotifier) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
