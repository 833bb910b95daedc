// Package booking holds the state of the "Book Your Spot" sign-up widget.
//
// A widget collects an e-mail address and, once submitted, accepts the
// submission after a fixed delay. Acceptance cannot fail and the address is
// not sent anywhere. The pending acceptance is owned by the widget: Close
// stops it, so a disposed widget never changes state.
package booking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultSubmitDelay = time.Second
	ThankYouMessage    = "Thank You for Signing Up!"
)

type State struct {
	Email     string
	Submitted bool
}

type Widget struct {
	ID string

	mu     sync.Mutex
	state  State
	delay  time.Duration
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// NewWidget mounts a widget. A non-positive delay means DefaultSubmitDelay.
func NewWidget(delay time.Duration) *Widget {
	if delay <= 0 {
		delay = DefaultSubmitDelay
	}

	return &Widget{
		ID:    uuid.NewString(),
		delay: delay,
		done:  make(chan struct{}),
	}
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// SetEmail replaces the address as typed. It has no effect after acceptance
// or Close.
func (w *Widget) SetEmail(email string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.state.Submitted {
		return
	}

	w.state.Email = email
}

// Submit schedules acceptance after the widget delay. It reports whether a
// new acceptance was scheduled.
func (w *Widget) Submit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || w.state.Submitted || w.timer != nil {
		return false
	}

	w.timer = time.AfterFunc(w.delay, w.accept)

	return true
}

func (w *Widget) accept() {
	w.mu.Lock()
	defer w.mu.Unlock()

	// Stop may lose the race with a timer that already fired.
	if w.closed {
		return
	}

	w.state.Submitted = true
	close(w.done)
}

// Done is closed once the submission has been accepted.
func (w *Widget) Done() <-chan struct{} {
	return w.done
}

// Wait blocks until the submission is accepted or ctx ends. When ctx ends
// first the widget is closed and ctx's error returned.
func (w *Widget) Wait(ctx context.Context) error {
	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.Close()

		// acceptance may have landed while ctx was ending
		if w.State().Submitted {
			return nil
		}
		return ctx.Err()
	}
}

func (w *Widget) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
}
