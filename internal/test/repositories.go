package test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/domain/model"
)

// MemberRepositoryStub stores members in-memory for tests, enforcing the same
// uniqueness rules as the real storage.
type MemberRepositoryStub struct {
	CreateFn func(context.Context, *model.Member, []model.Notification) (*model.Member, error)
	GetFn    func(context.Context, string) (*model.Member, error)

	ByEmail    map[string]*model.Member
	ByMemberID map[string]*model.Member
	Outbox     []model.Notification
	Next       int64
	Err        error

	mu sync.Mutex
}

// NewMemberRepositoryStub constructs stub repository with initialized maps.
func NewMemberRepositoryStub() *MemberRepositoryStub {
	return &MemberRepositoryStub{
		ByEmail:    make(map[string]*model.Member),
		ByMemberID: make(map[string]*model.Member),
		Next:       1,
	}
}

// Create stores member and outbox entries unless a uniqueness rule is violated.
func (s *MemberRepositoryStub) Create(ctx context.Context, member *model.Member, outbox []model.Notification) (*model.Member, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, member, outbox)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ByEmail[member.Email]; exists {
		return nil, domainErrors.ErrEmailTaken
	}
	if _, exists := s.ByMemberID[member.MemberID]; exists {
		return nil, domainErrors.ErrMemberIDTaken
	}

	stored := *member
	stored.ID = s.Next
	stored.RegisteredAt = time.Now()
	s.Next++
	s.ByEmail[stored.Email] = &stored
	s.ByMemberID[stored.MemberID] = &stored
	s.Outbox = append(s.Outbox, outbox...)
	return &stored, nil
}

// GetByMemberID fetches member by identifier or returns not found.
func (s *MemberRepositoryStub) GetByMemberID(ctx context.Context, memberID string) (*model.Member, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, memberID)
	}
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if member, ok := s.ByMemberID[memberID]; ok {
		return member, nil
	}
	return nil, domainErrors.ErrNotFound
}

// RescheduleCall records a Reschedule invocation.
type RescheduleCall struct {
	ID            uuid.UUID
	Attempts      int
	LastError     string
	NextAttemptAt time.Time
}

// DeadCall records a MarkDead invocation.
type DeadCall struct {
	ID        uuid.UUID
	Attempts  int
	LastError string
}

// NotificationRepositoryStub lets tests control outbox behaviour.
type NotificationRepositoryStub struct {
	ClaimFn         func(context.Context, int, time.Duration) ([]model.Notification, error)
	MarkDeliveredFn func(context.Context, uuid.UUID) error
	RescheduleFn    func(context.Context, uuid.UUID, int, string, time.Time) error
	MarkDeadFn      func(context.Context, uuid.UUID, int, string) error

	Pending     []model.Notification
	Delivered   []uuid.UUID
	Rescheduled []RescheduleCall
	Dead        []DeadCall

	mu sync.Mutex
}

// ClaimBatch returns configured pending notifications.
func (s *NotificationRepositoryStub) ClaimBatch(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	if s.ClaimFn != nil {
		return s.ClaimFn(ctx, limit, lease)
	}
	if limit < len(s.Pending) {
		return s.Pending[:limit], nil
	}
	return s.Pending, nil
}

// MarkDelivered records delivered identifiers.
func (s *NotificationRepositoryStub) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	if s.MarkDeliveredFn != nil {
		return s.MarkDeliveredFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Delivered = append(s.Delivered, id)
	return nil
}

// Reschedule records retry invocations.
func (s *NotificationRepositoryStub) Reschedule(ctx context.Context, id uuid.UUID, attempts int, lastError string, nextAttemptAt time.Time) error {
	if s.RescheduleFn != nil {
		return s.RescheduleFn(ctx, id, attempts, lastError, nextAttemptAt)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Rescheduled = append(s.Rescheduled, RescheduleCall{ID: id, Attempts: attempts, LastError: lastError, NextAttemptAt: nextAttemptAt})
	return nil
}

// MarkDead records retired notifications.
func (s *NotificationRepositoryStub) MarkDead(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	if s.MarkDeadFn != nil {
		return s.MarkDeadFn(ctx, id, attempts, lastError)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dead = append(s.Dead, DeadCall{ID: id, Attempts: attempts, LastError: lastError})
	return nil
}
