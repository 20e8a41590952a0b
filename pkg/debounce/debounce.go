// Package debounce collapses a rapid sequence of submitted values into a
// single delivery of the most recent one after a quiescence window.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Debouncer delivers the last submitted value to fn once no new value has
// arrived for the configured window. Intermediate values are never delivered.
type Debouncer[T any] struct {
	mu       sync.Mutex
	window   time.Duration
	fn       func(T)
	timer    *time.Timer
	pending  T
	deadline time.Time
	armed    bool
	stopped  bool
}

// New creates a debouncer delivering values to fn. A non-positive window
// falls back to DefaultWindow.
func New[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{window: window, fn: fn}
}

// Submit replaces the pending value and resets the delivery timer.
func (d *Debouncer[T]) Submit(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending = v
	d.deadline = time.Now().Add(d.window)
	d.armed = true

	if d.timer == nil {
		d.timer = time.AfterFunc(d.window, d.fire)
		return
	}
	d.timer.Reset(d.window)
}

// Flush delivers the pending value immediately, if any.
func (d *Debouncer[T]) Flush() {
	d.mu.Lock()
	if !d.armed || d.stopped {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()

	d.fn(v)
}

// Stop discards any pending value and prevents further deliveries.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.armed = false
	if d.timer != nil {
		d.timer.Stop()
	}
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	if !d.armed || d.stopped {
		d.mu.Unlock()
		return
	}
	// A Submit may have slipped in after this timer popped but before it
	// got the lock. Its value keeps the full window: re-arm instead of
	// delivering early.
	if remaining := time.Until(d.deadline); remaining > 0 {
		d.timer.Reset(remaining)
		d.mu.Unlock()
		return
	}
	v := d.pending
	d.armed = false
	d.mu.Unlock()

	d.fn(v)
}
