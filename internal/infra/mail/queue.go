package mail

import "context"

// Publisher is the subset of the broker client QueueSender needs.
type Publisher interface {
	PublishJSON(ctx context.Context, queue string, body any) error
}

// QueueSender hands messages to the mail worker instead of dialing SMTP inline.
type QueueSender struct {
	pub   Publisher
	queue string
}

func NewQueueSender(pub Publisher, queue string) *QueueSender {
	return &QueueSender{pub: pub, queue: queue}
}

func (s *QueueSender) Send(ctx context.Context, msg Message) error {
	return s.pub.PublishJSON(ctx, s.queue, msg)
}
