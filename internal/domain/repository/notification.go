package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/domain/model"
)

// NotificationRepository describes outbox operations for queued emails.
type NotificationRepository interface {
	// ClaimBatch atomically claims up to limit deliverable entries for the
	// given lease duration. A claimed entry becomes reclaimable once its
	// lease expires, so deliveries lost to a crashed worker self-heal.
	ClaimBatch(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) error
	// Reschedule records a failed attempt and makes the entry deliverable
	// again at nextAttemptAt.
	Reschedule(ctx context.Context, id uuid.UUID, attempts int, lastError string, nextAttemptAt time.Time) error
	// MarkDead retires an entry that exhausted its delivery attempts.
	MarkDead(ctx context.Context, id uuid.UUID, attempts int, lastError string) error
}
