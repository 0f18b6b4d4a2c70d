package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/domain/model"
	testhelpers "github.com/comrade-org/membership/internal/test"
)

func TestNewNotificationDispatcherDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	disp := NewNotificationDispatcher(&testhelpers.WorkerFacadeStub{}, time.Second, 0, 0, time.Second, logger)
	if disp.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", disp.batchSize)
	}
	if disp.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", disp.workers)
	}
}

func TestNotificationDispatcherDeliversBatch(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	first := model.Notification{ID: uuid.New(), Kind: model.NotificationKindApplicantConfirmation, Recipient: "jane@example.com"}
	second := model.Notification{ID: uuid.New(), Kind: model.NotificationKindAdminAlert, Recipient: "admin@example.com"}
	facade := &testhelpers.WorkerFacadeStub{Batches: [][]model.Notification{{first, second}}}

	disp := NewNotificationDispatcher(facade, 10*time.Millisecond, 2, 2, time.Second, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		done := len(facade.Completed) == 2
		facade.Unlock()
		if done {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for delivery")
		case <-time.After(10 * time.Millisecond):
		}
	}

	disp.Stop()
	facade.Lock()
	defer facade.Unlock()
	if len(facade.Sent) != 2 {
		t.Fatalf("expected 2 sent notifications, got %d", len(facade.Sent))
	}
	seen := map[uuid.UUID]bool{}
	for _, id := range facade.Completed {
		seen[id] = true
	}
	if !seen[first.ID] || !seen[second.ID] {
		t.Fatalf("expected both notifications completed, got %v", facade.Completed)
	}
	if len(facade.Failed) != 0 {
		t.Fatalf("expected no failures, got %v", facade.Failed)
	}
}

func TestNotificationDispatcherRecordsFailures(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	n := model.Notification{ID: uuid.New(), Kind: model.NotificationKindApplicantConfirmation}
	sendErr := errors.New("smtp unavailable")
	attempts := int32(0)
	facade := &testhelpers.WorkerFacadeStub{
		Batches: [][]model.Notification{{n}},
		SendFn: func(ctx context.Context, got model.Notification) error {
			atomic.AddInt32(&attempts, 1)
			return sendErr
		},
	}

	disp := NewNotificationDispatcher(facade, 10*time.Millisecond, 1, 1, time.Second, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	disp.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for {
		facade.Lock()
		failed := len(facade.Failed) > 0
		facade.Unlock()
		if failed {
			break
		}
		select {
		case <-deadline:
			t.Fatal("timeout waiting for failure handling")
		case <-time.After(10 * time.Millisecond):
		}
	}

	disp.Stop()
	facade.Lock()
	defer facade.Unlock()
	if facade.Failed[0].ID != n.ID {
		t.Fatalf("expected failure for %s, got %v", n.ID, facade.Failed)
	}
	if !errors.Is(facade.Failed[0].Cause, sendErr) {
		t.Fatalf("unexpected failure cause %v", facade.Failed[0].Cause)
	}
	if len(facade.Completed) != 0 {
		t.Fatalf("failed delivery must not be completed, got %v", facade.Completed)
	}
}

func TestNotificationDispatcherStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	disp := NewNotificationDispatcher(&testhelpers.WorkerFacadeStub{}, 10*time.Millisecond, 1, 1, time.Second, logger)

	disp.Start(context.Background())
	disp.Stop()
	disp.Stop()
}
