package mailer

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/comrade-org/membership/internal/config"
)

func TestNewMailerUsesConfig(t *testing.T) {
	cfg := &config.Config{
		SMTPHost:    "smtp.example.com",
		SMTPPort:    587,
		FromAddress: "noreply@example.com",
		SendTimeout: 10 * time.Second,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m, err := newMailer(mailerParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected mailer instance")
	}
}
