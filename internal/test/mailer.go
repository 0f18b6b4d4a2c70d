package test

import (
	"context"
	"sync"
)

// SentMail captures a single Send invocation.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MailerStub records outgoing mail for tests.
type MailerStub struct {
	SendFn func(context.Context, string, string, string) error

	Sent []SentMail
	Err  error

	mu sync.Mutex
}

// Send records the message or delegates to the override.
func (s *MailerStub) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, to, subject, htmlBody)
	}
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, SentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}
