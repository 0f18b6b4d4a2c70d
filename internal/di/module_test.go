package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/comrade-org/membership/internal/adapter/mailer"
	"github.com/comrade-org/membership/internal/app"
	"github.com/comrade-org/membership/internal/config"
	"github.com/comrade-org/membership/internal/domain/repository"
	"github.com/comrade-org/membership/internal/storage/postgres"
	"github.com/comrade-org/membership/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		SMTPHost:            "localhost",
		SMTPPort:            1025,
		AdminEmail:          "admin@example.com",
		NotifyPollInterval:  time.Millisecond,
		WorkerPoolSize:      1,
		DeliveryBatchSize:   1,
		MaxDeliveryAttempts: 1,
		RetryBackoffBase:    time.Millisecond,
		DeliveryLease:       time.Millisecond,
		SendTimeout:         time.Millisecond,
		ShutdownTimeout:     time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	memberRepo := test.NewMemberRepositoryStub()
	outboxRepo := &test.NotificationRepositoryStub{}
	mailerStub := &test.MailerStub{}

	var facade *app.MembershipFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(repository.MemberRepository(memberRepo)),
			fx.Replace(repository.NotificationRepository(outboxRepo)),
			fx.Replace(mailer.Mailer(mailerStub)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected membership facade instance")
	}
}
