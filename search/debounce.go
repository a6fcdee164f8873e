package search

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of calls into one: every Do resets the pending timer and replaces the
// pending function, so only the last call of a burst runs once the delay elapses without a new one.
type Debouncer struct {
	mutex   sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Do(fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending = fn
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer) fire() {
	d.mutex.Lock()
	fn := d.pending
	d.pending = nil
	d.timer = nil
	d.mutex.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop drops the pending call, if any. It reports whether a call was dropped.
func (d *Debouncer) Stop() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	d.timer = nil
	d.pending = nil
	return stopped
}

func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
