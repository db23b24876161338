package debounce

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of triggers into a single trailing call.
type Debouncer struct {
	mu     sync.Mutex
	window time.Duration
	fn     func()
	timer  *time.Timer
}

// New wraps fn so that repeated Trigger calls within window execute fn once,
// after the last trigger's window elapses.
func New(window time.Duration, fn func()) *Debouncer {
	return &Debouncer{window: window, fn: fn}
}

// Trigger schedules (or reschedules) the trailing call.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fn)
}

// Stop drops any pending call. A later Trigger arms it again.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
