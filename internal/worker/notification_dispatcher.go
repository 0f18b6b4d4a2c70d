package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comrade-org/membership/internal/domain/model"
)

// MembershipFacade exposes the subset of application functionality required by the dispatcher.
type MembershipFacade interface {
	NotificationsForDelivery(ctx context.Context, limit int) ([]model.Notification, error)
	SendNotification(ctx context.Context, n model.Notification) error
	CompleteNotification(ctx context.Context, id uuid.UUID) error
	FailNotification(ctx context.Context, n model.Notification, cause error) error
}

// NotificationDispatcher drains the outbox and delivers emails concurrently.
type NotificationDispatcher struct {
	facade       MembershipFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	sendTimeout  time.Duration
	logger       *slog.Logger

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the delivery worker pool.
func NewNotificationDispatcher(facade MembershipFacade, pollInterval time.Duration, batchSize, workers int, sendTimeout time.Duration, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &NotificationDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		sendTimeout:  sendTimeout,
		logger:       logger,
		jobs:         make(chan model.Notification, batchSize*workers),
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish. In-flight deliveries complete; claimed
// but unsent entries reappear once their lease expires.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NotificationDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *NotificationDispatcher) fetchAndDispatch(ctx context.Context) {
	notifications, err := d.facade.NotificationsForDelivery(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("claim notifications for delivery failed", slog.String("error", err.Error()))
		return
	}
	for _, n := range notifications {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- n:
		}
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleNotification(ctx, n)
		}
	}
}

func (d *NotificationDispatcher) handleNotification(ctx context.Context, n model.Notification) {
	sendCtx := ctx
	cancel := func() {}
	if d.sendTimeout > 0 {
		sendCtx, cancel = context.WithTimeout(ctx, d.sendTimeout)
	}
	err := d.facade.SendNotification(sendCtx, n)
	cancel()

	if err != nil {
		d.logger.Warn("notification delivery failed",
			slog.String("id", n.ID.String()),
			slog.String("kind", string(n.Kind)),
			slog.Int("attempts", n.Attempts+1),
			slog.String("error", err.Error()),
		)
		if failErr := d.facade.FailNotification(ctx, n, err); failErr != nil {
			d.logger.Error("record delivery failure failed", slog.String("id", n.ID.String()), slog.String("error", failErr.Error()))
		}
		return
	}

	if err := d.facade.CompleteNotification(ctx, n.ID); err != nil {
		d.logger.Error("mark notification delivered failed", slog.String("id", n.ID.String()), slog.String("error", err.Error()))
		return
	}
	d.logger.Info("notification delivered",
		slog.String("id", n.ID.String()),
		slog.String("kind", string(n.Kind)),
	)
}
