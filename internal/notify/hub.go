// Package notify implements the root-scoped notification hub: any part of
// the application publishes transient messages, and a single consumer (the
// console root) displays them in one consistent location.
package notify

import (
	"sync"
	"time"
)

// Level classifies a notification for display.
type Level int

// Notification levels.
const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// Notification is a transient user-facing message.
type Notification struct {
	Level   Level
	Message string
	Time    time.Time
}

// queueSize bounds the pending queue; on overflow the oldest entry is
// dropped, never the publisher blocked.
const queueSize = 32

// Hub is the process-wide notification queue. Created at root mount, closed
// at root unmount.
type Hub struct {
	mu     sync.Mutex
	queue  chan Notification
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{queue: make(chan Notification, queueSize)}
}

// Publish enqueues a notification. It never blocks: when the queue is full
// the oldest pending notification is discarded. Publishing to a closed hub
// is a no-op.
func (h *Hub) Publish(level Level, message string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	n := Notification{Level: level, Message: message, Time: time.Now()}
	for {
		select {
		case h.queue <- n:
			return
		default:
			// Full: drop the oldest and retry.
			select {
			case <-h.queue:
			default:
			}
		}
	}
}

// Consume returns the channel the single consumer drains. The channel is
// closed when the hub closes.
func (h *Hub) Consume() <-chan Notification {
	return h.queue
}

// Close shuts the hub down. Pending notifications remain readable until
// drained.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	close(h.queue)
}
