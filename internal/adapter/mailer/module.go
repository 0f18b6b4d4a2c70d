package mailer

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/comrade-org/membership/internal/config"
)

// Module exposes mail transport implementation to fx graph.
var Module = fx.Provide(newMailer)

type mailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newMailer(p mailerParams) (Mailer, error) {
	return NewSMTPMailer(Options{
		Host:     p.Config.SMTPHost,
		Port:     p.Config.SMTPPort,
		Username: p.Config.SMTPUsername,
		Password: p.Config.SMTPPassword,
		From:     p.Config.FromAddress,
		Timeout:  p.Config.SendTimeout,
	}, p.Logger)
}
