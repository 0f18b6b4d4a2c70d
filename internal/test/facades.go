package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/domain/model"
)

// RegistrationFacadeStub provides controllable behaviour for the register endpoint.
type RegistrationFacadeStub struct {
	RegisterFn func(context.Context, model.RegistrationInput) (*model.Member, error)
}

// RegisterMember delegates to provided function or returns a stored member.
func (s RegistrationFacadeStub) RegisterMember(ctx context.Context, in model.RegistrationInput) (*model.Member, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, in)
	}
	return &model.Member{
		ID:             1,
		MemberID:       "COM-123456-789",
		FullName:       in.FullName,
		Email:          in.Email,
		MembershipType: in.MembershipType,
		RegisteredAt:   time.Now(),
	}, nil
}

// MemberFacadeStub simulates profile lookups.
type MemberFacadeStub struct {
	MemberFn func(context.Context, string) (*model.Member, error)
}

// MemberByID returns configured member or a default record.
func (s MemberFacadeStub) MemberByID(ctx context.Context, memberID string) (*model.Member, error) {
	if s.MemberFn != nil {
		return s.MemberFn(ctx, memberID)
	}
	return &model.Member{ID: 1, MemberID: memberID, FullName: "Jane Doe", Email: "jane@example.com", RegisteredAt: time.Unix(0, 0)}, nil
}

// HealthFacadeStub reports configurable storage health.
type HealthFacadeStub struct {
	PingFn func(context.Context) error
}

// Ping returns configured health status.
func (s HealthFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}

// MembershipFacadeStub aggregates facade dependencies for HTTP layer tests.
type MembershipFacadeStub struct {
	RegistrationFacadeStub
	MemberFacadeStub
	HealthFacadeStub
}

// DeliveryCall stores information about a completed or failed delivery.
type DeliveryCall struct {
	ID    uuid.UUID
	Cause error
}

// WorkerFacadeStub mimics worker interactions with the membership facade.
type WorkerFacadeStub struct {
	Batches    [][]model.Notification
	BatchesFn  func(context.Context, int) ([]model.Notification, error)
	SendFn     func(context.Context, model.Notification) error
	CompleteFn func(context.Context, uuid.UUID) error
	FailFn     func(context.Context, model.Notification, error) error

	Sent      []model.Notification
	Completed []uuid.UUID
	Failed    []DeliveryCall

	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// NotificationsForDelivery returns batches from configured queue.
func (s *WorkerFacadeStub) NotificationsForDelivery(ctx context.Context, limit int) ([]model.Notification, error) {
	if s.BatchesFn != nil {
		return s.BatchesFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// SendNotification records send attempts.
func (s *WorkerFacadeStub) SendNotification(ctx context.Context, n model.Notification) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, n)
	return nil
}

// CompleteNotification records completed deliveries.
func (s *WorkerFacadeStub) CompleteNotification(ctx context.Context, id uuid.UUID) error {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Completed = append(s.Completed, id)
	return nil
}

// FailNotification records failed deliveries.
func (s *WorkerFacadeStub) FailNotification(ctx context.Context, n model.Notification, cause error) error {
	if s.FailFn != nil {
		return s.FailFn(ctx, n, cause)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed = append(s.Failed, DeliveryCall{ID: n.ID, Cause: cause})
	return nil
}
