package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mail "github.com/wneessen/go-mail"
)

// Mailer exposes operations to deliver rendered email messages.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer implements Mailer over SMTP.
type SMTPMailer struct {
	client *mail.Client
	from   string
	logger *slog.Logger

	// send is swappable in tests; defaults to client.DialAndSendWithContext.
	send func(ctx context.Context, msgs ...*mail.Msg) error
}

// Options configures the SMTP transport.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// NewSMTPMailer creates SMTP mailer with a bounded per-send timeout.
// Authentication is enabled only when a username is configured, so local
// relays without auth keep working.
func NewSMTPMailer(opts Options, logger *slog.Logger) (*SMTPMailer, error) {
	if opts.From == "" {
		return nil, fmt.Errorf("sender address must be provided")
	}

	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
		mail.WithTimeout(opts.Timeout),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.Username),
			mail.WithPassword(opts.Password),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	m := &SMTPMailer{client: client, from: opts.From, logger: logger}
	m.send = client.DialAndSendWithContext
	return m, nil
}

// Send delivers a single HTML email to the given recipient.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := m.send(ctx, msg); err != nil {
		m.logger.Error("smtp send failed", slog.String("to", to), slog.String("error", err.Error()))
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
