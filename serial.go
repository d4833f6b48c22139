package imageview

import (
	"context"
	"fmt"

	"github.com/gogpu/imageview/internal/dispatch"
)

// ErrQueueClosed is returned by Serial.Do after Close.
var ErrQueueClosed = dispatch.ErrClosed

// Serial serializes access to a View from several goroutines. Every
// operation runs to completion on a single dispatch goroutine before the
// next one starts, so the View's invariants hold between operations.
//
// The View's redraw function and adjustment handlers run on the dispatch
// goroutine too.
type Serial struct {
	view  *View
	queue *dispatch.Queue
}

// NewSerial wraps v. The caller must not use v directly afterwards.
func NewSerial(v *View) *Serial {
	return &Serial{
		view:  v,
		queue: dispatch.New(0),
	}
}

// Do runs fn with the View on the dispatch goroutine and waits for it.
// If ctx ends before fn starts, fn is skipped and the context error is
// returned. fn must not call Do itself.
func (s *Serial) Do(ctx context.Context, fn func(*View)) error {
	if err := s.queue.Do(ctx, func() { fn(s.view) }); err != nil {
		return fmt.Errorf("imageview: serial dispatch: %w", err)
	}
	return nil
}

// Post queues fn without waiting, as a layout host posting an allocation.
func (s *Serial) Post(fn func(*View)) {
	s.queue.Submit(func() { fn(s.view) })
}

// Close runs queued operations, stops the dispatch goroutine and closes
// the View.
func (s *Serial) Close() {
	s.queue.Close()
	s.view.Close()
}
