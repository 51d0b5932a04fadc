package usecase

import (
	"context"
	"sync"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"
)

// NotificationDispatcher runs contact notifications off the request path.
// Failures are logged and never reach the caller.
type NotificationDispatcher struct {
	notifier domain.ContactNotifier
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewNotificationDispatcher(notifier domain.ContactNotifier, timeout time.Duration) *NotificationDispatcher {
	return &NotificationDispatcher{notifier: notifier, timeout: timeout}
}

// Dispatch starts the notification in its own goroutine with a detached deadline.
func (d *NotificationDispatcher) Dispatch(sub domain.ContactSubmission) {
	if d == nil || d.notifier == nil {
		return
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("Email notification panicked", "submission_id", sub.ID, "panic", r)
			}
		}()

		ctx := context.Background()
		if d.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, d.timeout)
			defer cancel()
		}

		if err := d.notifier.NotifyContactSubmission(ctx, &sub); err != nil {
			logger.Log.Error("Email sending failed", "submission_id", sub.ID, "error", err)
		}
	}()
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (d *NotificationDispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
