package domain

import "time"

// Notification is one outbound message on its way through the queue.
type Notification struct {
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
