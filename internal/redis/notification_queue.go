package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"safewalk/internal/domain"
	"safewalk/pkg/e"
)

// NotificationQueue is the outbound message queue. Producers LPush, the
// sender worker BRPops, so messages are delivered oldest first.
type NotificationQueue struct {
	client *goredis.Client
	key    string
}

func NewNotificationQueue(r *Redis) *NotificationQueue {
	return &NotificationQueue{
		client: r.Client,
		key:    "notifications:outbound",
	}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.Notification, error) {
	var n domain.Notification

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return n, e.ErrQueueEmpty
		}
		return n, err
	}
	if len(res) < 2 {
		return n, goredis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &n); err != nil {
		return n, err
	}
	return n, nil
}
