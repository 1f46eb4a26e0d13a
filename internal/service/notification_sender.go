package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

// MessageDeliverer pushes one message to a phone over an external channel.
type MessageDeliverer interface {
	Deliver(ctx context.Context, phone, message string) error
}

// MessageQueue is the consuming side of the outbound queue.
type MessageQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error)
}

// NotificationSender drains the outbound queue and delivers each message
// with a bounded retry. Run blocks until the context is cancelled.
type NotificationSender struct {
	logger    *slog.Logger
	queue     MessageQueue
	deliverer MessageDeliverer
}

func NewNotificationSender(logger *slog.Logger, queue MessageQueue, deliverer MessageDeliverer) *NotificationSender {
	return &NotificationSender{
		logger:    logger,
		queue:     queue,
		deliverer: deliverer,
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notificationSender STARTED")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notificationSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		n, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending notification", slog.String("phone", n.Phone))
		s.sendWithRetry(ctx, n)
	}
}

func (s *NotificationSender) sendWithRetry(ctx context.Context, n domain.Notification) {
	const maxRetries = 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}

		err := s.deliverer.Deliver(ctx, n.Phone, n.Message)
		if err == nil {
			return
		}

		s.logger.Warn("notification delivery failed",
			slog.Int("attempt", attempt),
			slog.String("phone", n.Phone),
			slog.String("reason", err.Error()),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
