// Package dispatch runs work items one at a time, in submission order, on a
// dedicated goroutine.
package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Do when the queue no longer accepts work.
var ErrClosed = errors.New("dispatch: queue closed")

// Queue is a single-worker FIFO work queue. Work items never run
// concurrently with each other, which makes a Queue suitable for
// serializing access to state that is not safe for concurrent use.
//
// Thread safety: Queue is safe for concurrent use.
type Queue struct {
	// work holds pending items in submission order.
	work chan func()

	// done signals the worker to stop.
	done chan struct{}

	// wg waits for the worker to finish.
	wg sync.WaitGroup

	// running indicates whether the queue is accepting work.
	running atomic.Bool

	// closeMu keeps Close from racing with senders on work.
	closeMu sync.RWMutex
}

// New creates a queue whose pending-work buffer holds size items.
// If size is less than 1, a buffer of 16 is used.
// The worker starts immediately.
func New(size int) *Queue {
	if size < 1 {
		size = 16
	}
	q := &Queue{
		work: make(chan func(), size),
		done: make(chan struct{}),
	}
	q.running.Store(true)

	q.wg.Add(1)
	go q.worker()
	return q
}

// worker is the main loop of the worker goroutine.
func (q *Queue) worker() {
	defer q.wg.Done()
	for {
		select {
		case <-q.done:
			q.drain()
			return
		case fn := <-q.work:
			fn()
		}
	}
}

// drain executes all remaining work.
func (q *Queue) drain() {
	for {
		select {
		case fn := <-q.work:
			fn()
		default:
			return
		}
	}
}

// Submit queues fn without waiting for it to run. It may block while the
// buffer is full. If the queue is closed or fn is nil, Submit is a no-op.
func (q *Queue) Submit(fn func()) {
	if fn == nil {
		return
	}
	q.closeMu.RLock()
	defer q.closeMu.RUnlock()
	if !q.running.Load() {
		return
	}
	q.work <- fn
}

// Do queues fn and waits until it has run.
//
// If ctx ends before fn starts, fn is skipped and ctx.Err() is returned.
// Once fn has started, Do waits for it regardless of ctx. Do must not be
// called from inside a work item; that would deadlock.
func (q *Queue) Do(ctx context.Context, fn func()) error {
	var started atomic.Bool
	finished := make(chan struct{})

	wrapped := func() {
		defer close(finished)
		if ctx.Err() != nil || !started.CompareAndSwap(false, true) {
			return
		}
		fn()
	}

	if err := q.enqueue(ctx, wrapped); err != nil {
		return err
	}

	select {
	case <-finished:
		if !started.Load() {
			return ctx.Err()
		}
		return nil
	case <-ctx.Done():
		if started.CompareAndSwap(false, true) {
			// The worker will skip fn when it gets there.
			return ctx.Err()
		}
		<-finished
		return nil
	}
}

func (q *Queue) enqueue(ctx context.Context, fn func()) error {
	q.closeMu.RLock()
	defer q.closeMu.RUnlock()
	if !q.running.Load() {
		return ErrClosed
	}
	select {
	case q.work <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting new work, runs everything already queued and
// stops the worker. Close is safe to call multiple times.
func (q *Queue) Close() {
	q.closeMu.Lock()
	if !q.running.CompareAndSwap(true, false) {
		q.closeMu.Unlock()
		return
	}
	close(q.done)
	q.closeMu.Unlock()

	q.wg.Wait()
}

// IsRunning returns true if the queue is still accepting work.
func (q *Queue) IsRunning() bool {
	return q.running.Load()
}

// Pending returns the number of queued work items not yet started.
// This is an approximation as the queue can change concurrently.
func (q *Queue) Pending() int {
	return len(q.work)
}
