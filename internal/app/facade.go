package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/adapter/mailer"
	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/usecase"
)

// HealthChecker reports storage availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// MembershipFacade aggregates the application use cases behind one surface
// consumed by the HTTP handlers and the delivery worker.
type MembershipFacade struct {
	registration  *usecase.RegistrationUseCase
	members       *usecase.MemberUseCase
	notifications *usecase.NotificationUseCase
	mailer        mailer.Mailer
	health        HealthChecker
}

// NewMembershipFacade constructs MembershipFacade.
func NewMembershipFacade(
	registration *usecase.RegistrationUseCase,
	members *usecase.MemberUseCase,
	notifications *usecase.NotificationUseCase,
	mailer mailer.Mailer,
	health HealthChecker,
) *MembershipFacade {
	return &MembershipFacade{
		registration:  registration,
		members:       members,
		notifications: notifications,
		mailer:        mailer,
		health:        health,
	}
}

// RegisterMember runs the full registration workflow.
func (f *MembershipFacade) RegisterMember(ctx context.Context, in model.RegistrationInput) (*model.Member, error) {
	return f.registration.Register(ctx, in)
}

// MemberByID fetches a stored member profile.
func (f *MembershipFacade) MemberByID(ctx context.Context, memberID string) (*model.Member, error) {
	return f.members.ByMemberID(ctx, memberID)
}

// Ping verifies the database connection.
func (f *MembershipFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}

// NotificationsForDelivery leases a batch of queued notifications.
func (f *MembershipFacade) NotificationsForDelivery(ctx context.Context, limit int) ([]model.Notification, error) {
	return f.notifications.ClaimBatch(ctx, limit)
}

// SendNotification delivers one email over SMTP.
func (f *MembershipFacade) SendNotification(ctx context.Context, n model.Notification) error {
	return f.mailer.Send(ctx, n.Recipient, n.Subject, n.Body)
}

// CompleteNotification marks an outbox entry as delivered.
func (f *MembershipFacade) CompleteNotification(ctx context.Context, id uuid.UUID) error {
	return f.notifications.Complete(ctx, id)
}

// FailNotification reschedules or retires an outbox entry after a failed send.
func (f *MembershipFacade) FailNotification(ctx context.Context, n model.Notification, cause error) error {
	return f.notifications.Fail(ctx, n, cause)
}
