package service

import (
	"context"
	"log/slog"
	"time"

	"safewalk/internal/domain"
)

// QueuedDispatcher hands messages to the outbound queue; the sender worker
// drains it asynchronously. Send reports enqueue success only, not delivery.
type QueuedDispatcher struct {
	logger *slog.Logger
	queue  NotificationQueue
}

func NewQueuedDispatcher(logger *slog.Logger, queue NotificationQueue) *QueuedDispatcher {
	return &QueuedDispatcher{logger: logger, queue: queue}
}

func (d *QueuedDispatcher) Send(ctx context.Context, phone, message string) bool {
	n := domain.Notification{
		Phone:      phone,
		Message:    message,
		EnqueuedAt: time.Now().UTC(),
	}
	if err := d.queue.Enqueue(ctx, n); err != nil {
		d.logger.Error("notification enqueue failed",
			slog.String("phone", phone),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}
