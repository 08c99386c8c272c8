package debounce

import (
	"context"
	"sync"
	"time"
)

// Future is the eventual outcome of one AsyncFunc call.
type Future[R any] struct {
	done chan struct{}
	once sync.Once
	val  R
	err  error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

func (f *Future[R]) settle(val R, err error) {
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Done is closed once the call has a result.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the call settles or ctx ends. A ctx ending here only
// stops the wait; the call itself keeps its place in the debounce window.
func (f *Future[R]) Wait(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// AsyncFunc is the debounced form of a fallible, context-aware function.
// Every call gets a Future; only the last call of a burst runs fn, and
// every earlier call fails with ErrSuperseded.
type AsyncFunc[A, R any] struct {
	fn    func(context.Context, A) (R, error)
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *asyncCall[A, R]
	gen     uint64
}

type asyncCall[A, R any] struct {
	ctx    context.Context
	arg    A
	future *Future[R]
	stop   func() bool
}

// NewAsync wraps fn with trailing-edge debouncing.
func NewAsync[A, R any](fn func(context.Context, A) (R, error), delay time.Duration) *AsyncFunc[A, R] {
	return &AsyncFunc[A, R]{fn: fn, delay: delay}
}

// Call schedules fn(ctx, arg) after the delay, superseding any pending call.
// If ctx ends before the call runs, the Future fails with ctx.Err().
func (d *AsyncFunc[A, R]) Call(ctx context.Context, arg A) *Future[R] {
	future := newFuture[R]()

	d.mu.Lock()
	defer d.mu.Unlock()

	d.rejectLocked(ErrSuperseded)

	d.gen++
	gen := d.gen
	call := &asyncCall[A, R]{ctx: ctx, arg: arg, future: future}
	call.stop = context.AfterFunc(ctx, func() { d.abandon(gen, ctx.Err()) })
	d.pending = call
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })

	return future
}

// Cancel fails a pending call with ErrCancelled without running fn.
func (d *AsyncFunc[A, R]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rejectLocked(ErrCancelled)
}

// Pending reports whether a call is waiting for its window to elapse.
func (d *AsyncFunc[A, R]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *AsyncFunc[A, R]) fire(gen uint64) {
	d.mu.Lock()
	call := d.pending
	if call == nil || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.timer = nil
	call.stop()
	d.mu.Unlock()

	val, err := d.fn(call.ctx, call.arg)
	call.future.settle(val, err)
}

func (d *AsyncFunc[A, R]) abandon(gen uint64, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending == nil || gen != d.gen {
		return
	}
	d.rejectLocked(err)
}

// rejectLocked settles the pending call, if any, with err.
func (d *AsyncFunc[A, R]) rejectLocked(err error) {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.pending == nil {
		return
	}
	call := d.pending
	d.pending = nil
	call.stop()

	var zero R
	call.future.settle(zero, err)
}
