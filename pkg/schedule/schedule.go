// Package schedule keeps deferred widget work on the UI loop. Timers never
// run callbacks on their own goroutine; they post back into a Loop so every
// state change still happens run-to-completion.
package schedule

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultDelay is the live-typing debounce used by text inputs.
const DefaultDelay = 250 * time.Millisecond

// Timer is a pending callback.
type Timer interface {
	// Stop cancels the callback and reports whether it was still pending.
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Realtime runs callbacks from the runtime timer goroutine. It is the
// fallback for widgets built without a host loop; hosts that dispatch UI
// events from one goroutine should pass their Loop instead.
type Realtime struct{}

// AfterFunc implements Scheduler.
func (Realtime) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Loop is a single-consumer queue of callbacks.
type Loop struct {
	queue chan func()
}

// NewLoop returns a loop with room for buffer queued callbacks.
func NewLoop(buffer int) *Loop {
	if buffer <= 0 {
		buffer = 64
	}
	return &Loop{queue: make(chan func(), buffer)}
}

// Post queues fn. It blocks while the queue is full.
func (l *Loop) Post(fn func()) {
	l.queue <- fn
}

// Queue exposes the pending callbacks to hosts that run their own loop.
func (l *Loop) Queue() <-chan func() { return l.queue }

// Run executes callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Drain runs every callback queued right now and returns how many ran.
func (l *Loop) Drain() int {
	n := 0
	for {
		select {
		case fn := <-l.queue:
			fn()
			n++
		default:
			return n
		}
	}
}

type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
	fired   atomic.Bool
}

func (t *loopTimer) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.t.Stop()
	return !t.fired.Load()
}

// AfterFunc implements Scheduler. A timer stopped after it fired but before
// the loop picked the callback up still does not run.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		l.Post(func() {
			if lt.stopped.Load() {
				return
			}
			lt.fired.Store(true)
			fn()
		})
	})
	return lt
}

// Manual is a Scheduler driven by Advance; tests use it instead of the
// wall clock.
type Manual struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	m    *Manual
	due  time.Duration
	seq  int
	fn   func()
	done bool
}

func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, due: m.now + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d and runs every timer that came due, in
// due order.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	now := m.now
	m.mu.Unlock()
	for {
		t := m.nextDue(now)
		if t == nil {
			return
		}
		t.fn()
	}
}

func (m *Manual) nextDue(now time.Duration) *manualTimer {
	m.mu.Lock()
	defer m.mu.Unlock()
	var next *manualTimer
	for _, t := range m.timers {
		if t.done || t.due > now {
			continue
		}
		if next == nil || t.due < next.due || (t.due == next.due && t.seq < next.seq) {
			next = t
		}
	}
	if next != nil {
		next.done = true
	}
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	m.timers = live
	return next
}

// Pending counts timers that have not fired or been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// Debouncer runs the most recent callback once input has been quiet for
// the delay. Every Trigger cancels the pending one.
type Debouncer struct {
	s       Scheduler
	delay   time.Duration
	timer   Timer
	pending bool
}

// NewDebouncer returns a debouncer on s. A non-positive delay falls back to
// DefaultDelay.
func NewDebouncer(s Scheduler, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{s: s, delay: delay}
}

// Trigger restarts the quiet period with fn as the callback.
func (d *Debouncer) Trigger(fn func()) {
	d.Stop()
	d.pending = true
	d.timer = d.s.AfterFunc(d.delay, func() {
		d.pending = false
		d.timer = nil
		fn()
	})
}

// Stop cancels the pending callback, if any.
func (d *Debouncer) Stop() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
}

// Pending reports whether a callback is waiting.
func (d *Debouncer) Pending() bool { return d.pending }

// Delay returns the quiet period.
func (d *Debouncer) Delay() time.Duration { return d.delay }
