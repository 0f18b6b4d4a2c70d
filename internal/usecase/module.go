package usecase

import (
	"go.uber.org/fx"

	"github.com/comrade-org/membership/internal/config"
	"github.com/comrade-org/membership/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewRegistrationUseCase,
	NewMemberUseCase,
	newComposer,
	newNotificationUseCase,
)

func newComposer(cfg *config.Config) *NotificationComposer {
	return NewNotificationComposer(cfg.AdminEmail)
}

func newNotificationUseCase(outbox repository.NotificationRepository, cfg *config.Config) *NotificationUseCase {
	return NewNotificationUseCase(outbox, RetryPolicy{
		BackoffBase: cfg.RetryBackoffBase,
		MaxAttempts: cfg.MaxDeliveryAttempts,
		Lease:       cfg.DeliveryLease,
	})
}
