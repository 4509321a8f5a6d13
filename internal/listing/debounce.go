package listing

import (
	"sync"
	"time"
)

// SearchDebounce is how long search input must be idle before a fetch fires.
const SearchDebounce = 500 * time.Millisecond

// Debouncer delays delivery of a search string until input has been idle
// for the configured window, then invokes the callback with the final value.
// Values that fail SearchReady are swallowed entirely.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func(string)
}

func NewDebouncer(delay time.Duration, fn func(string)) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Input records a new value, restarting the idle window.
func (d *Debouncer) Input(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.delay, func() {
		if !SearchReady(s) {
			return
		}

		d.fn(s)
	})
}

// Stop cancels any pending delivery.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
}
