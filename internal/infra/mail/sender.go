package mail

import "context"

// Message is one outbound HTML email.
type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Sender delivers a message. Callers treat delivery as best effort.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NopSender drops every message. Used when mail credentials are absent.
type NopSender struct{}

func (NopSender) Send(context.Context, Message) error { return nil }
