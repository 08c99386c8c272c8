// Package debounce coalesces bursts of calls into one trailing invocation.
package debounce

import (
	"errors"
	"sync"
	"time"
)

var (
	// ErrSuperseded is returned to a pending call replaced by a later call.
	ErrSuperseded = errors.New("debounce: call superseded by a newer call")
	// ErrCancelled is returned to a pending call discarded by Cancel.
	ErrCancelled = errors.New("debounce: call cancelled")
)

// Func delays fn until no call has been made for the configured delay.
// Only the arguments of the last call in a burst reach fn.
type Func[A any] struct {
	fn    func(A)
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	arg     A
	pending bool
	gen     uint64
}

// New wraps fn with trailing-edge debouncing.
func New[A any](fn func(A), delay time.Duration) *Func[A] {
	return &Func[A]{fn: fn, delay: delay}
}

// Call records arg and restarts the delay window.
func (d *Func[A]) Call(arg A) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.arg = arg
	d.pending = true
	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel discards a pending invocation.
func (d *Func[A]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
}

// Flush runs a pending invocation immediately, on the calling goroutine.
// It reports whether anything was pending.
func (d *Func[A]) Flush() bool {
	d.mu.Lock()
	if !d.pending {
		d.mu.Unlock()
		return false
	}
	arg := d.arg
	d.resetLocked()
	d.mu.Unlock()

	d.fn(arg)
	return true
}

// Pending reports whether an invocation is waiting for its window to elapse.
func (d *Func[A]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}

func (d *Func[A]) fire(gen uint64) {
	d.mu.Lock()
	// A timer that lost the race with Call, Cancel or Flush must not run.
	if !d.pending || gen != d.gen {
		d.mu.Unlock()
		return
	}
	arg := d.arg
	d.resetLocked()
	d.mu.Unlock()

	d.fn(arg)
}

func (d *Func[A]) resetLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	var zero A
	d.arg = zero
	d.pending = false
	d.gen++
}
