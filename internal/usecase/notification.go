package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/domain/repository"
)

// RetryPolicy bounds asynchronous notification delivery.
type RetryPolicy struct {
	// BackoffBase is the delay before the first retry; it doubles on every
	// subsequent failure.
	BackoffBase time.Duration
	MaxAttempts int
	// Lease is how long a claimed entry stays invisible to other workers.
	Lease time.Duration
}

// NotificationUseCase drives outbox delivery state transitions.
type NotificationUseCase struct {
	outbox repository.NotificationRepository
	policy RetryPolicy
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(outbox repository.NotificationRepository, policy RetryPolicy) *NotificationUseCase {
	if policy.BackoffBase <= 0 {
		policy.BackoffBase = 30 * time.Second
	}
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 5
	}
	if policy.Lease <= 0 {
		policy.Lease = 5 * time.Minute
	}
	return &NotificationUseCase{outbox: outbox, policy: policy}
}

// ClaimBatch leases up to limit deliverable notifications.
func (u *NotificationUseCase) ClaimBatch(ctx context.Context, limit int) ([]model.Notification, error) {
	return u.outbox.ClaimBatch(ctx, limit, u.policy.Lease)
}

// Complete marks a notification as delivered.
func (u *NotificationUseCase) Complete(ctx context.Context, id uuid.UUID) error {
	return u.outbox.MarkDelivered(ctx, id)
}

// maxBackoffShift caps the doubling so the delay never overflows a Duration,
// whatever the configured attempt budget.
const maxBackoffShift = 16

// Fail records a delivery failure: the entry is rescheduled with exponential
// backoff until the attempt budget is exhausted, then retired as dead.
func (u *NotificationUseCase) Fail(ctx context.Context, n model.Notification, cause error) error {
	attempts := n.Attempts + 1
	if attempts >= u.policy.MaxAttempts {
		return u.outbox.MarkDead(ctx, n.ID, attempts, cause.Error())
	}

	shift := attempts - 1
	if shift > maxBackoffShift {
		shift = maxBackoffShift
	}
	delay := u.policy.BackoffBase << shift
	return u.outbox.Reschedule(ctx, n.ID, attempts, cause.Error(), time.Now().Add(delay))
}
