// Package status tracks the liveness of the local agent daemon as a single
// observable boolean: has the agent finished initializing and is it answering
// on its well-known discovery endpoint.
package status

import "sync"

// Signal is a concurrency-safe observable boolean. Its zero value reads
// false, so a signal that was never set renders as "not initialized".
//
// Subscribers receive the new value on every change. Delivery is
// latest-wins: a slow subscriber sees the most recent value, not every
// intermediate flip.
type Signal struct {
	mu          sync.Mutex
	value       bool
	nextID      int
	subscribers map[int]chan bool
}

// NewSignal returns a signal initialized to false.
func NewSignal() *Signal {
	return &Signal{subscribers: make(map[int]chan bool)}
}

// Value returns the current value.
func (s *Signal) Value() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set updates the value and notifies subscribers if it changed.
func (s *Signal) Set(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.value == v {
		return
	}
	s.value = v

	for _, ch := range s.subscribers {
		// Replace a pending stale value rather than blocking.
		select {
		case <-ch:
		default:
		}
		ch <- v
	}
}

// Subscribe registers an observer. The returned channel carries each changed
// value; cancel releases the subscription and must be called when the
// observer goes away.
func (s *Signal) Subscribe() (<-chan bool, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan bool, 1)
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
	return ch, cancel
}
