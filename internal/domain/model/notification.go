package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind distinguishes the two messages sent per registration.
type NotificationKind string

const (
	NotificationKindApplicantConfirmation NotificationKind = "applicant_confirmation"
	NotificationKindAdminAlert            NotificationKind = "admin_alert"
)

// NotificationStatus describes delivery lifecycle of an outbox entry.
type NotificationStatus string

const (
	NotificationStatusPending   NotificationStatus = "pending"
	NotificationStatusSending   NotificationStatus = "sending"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusDead      NotificationStatus = "dead"
)

// Notification is a durably queued email awaiting delivery. Rows are inserted
// in the same transaction as the member record and dispatched asynchronously.
type Notification struct {
	ID            uuid.UUID
	MemberRef     int64
	Kind          NotificationKind
	Recipient     string
	Subject       string
	Body          string
	Status        NotificationStatus
	Attempts      int
	NextAttemptAt time.Time
	LastError     *string
	CreatedAt     time.Time
	DeliveredAt   *time.Time
}
