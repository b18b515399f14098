package platform

import (
	"sync"

	"github.com/go-drift/ui/pkg/view"
)

// Queue carries work from other goroutines to the goroutine that owns the
// view tree. Producers call Post or Dispatch; the owner calls Drain once per
// loop iteration and runs what it gets.
type Queue struct {
	mu        sync.Mutex
	callbacks []func()
	messages  []view.Message
	closed    bool
}

// Dispatch schedules a callback to run on the UI goroutine.
// Returns false if the callback is nil or the queue is closed.
func (q *Queue) Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.callbacks = append(q.callbacks, callback)
	return true
}

// Post schedules a message for delivery through Window.Message.
// Returns false if the queue is closed.
func (q *Queue) Post(m view.Message) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	q.messages = append(q.messages, m)
	return true
}

// Drain removes and returns everything queued so far.
func (q *Queue) Drain() (callbacks []func(), messages []view.Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	callbacks, messages = q.callbacks, q.messages
	q.callbacks, q.messages = nil, nil
	return callbacks, messages
}

// Close rejects further work. Queued items can still be drained.
func (q *Queue) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
}
