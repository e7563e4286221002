// ABOUTME: Scheduler capability for deferred callbacks with cancellable handles
// ABOUTME: Timers runs on wall-clock time.AfterFunc; Manual is a deterministic test fake

package sched

import (
	"sync"
	"time"
)

// Scheduler schedules a callback to run once after a delay.
// Implementations must return a Handle that can cancel the callback
// before it fires.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) Handle
}

// Handle cancels a scheduled callback. Stop reports whether the callback
// was prevented from running; stopping an already-fired or already-stopped
// handle returns false.
type Handle interface {
	Stop() bool
}

// Timers is the wall-clock Scheduler backed by time.AfterFunc.
// Callbacks run on their own goroutine.
type Timers struct{}

func (Timers) Schedule(d time.Duration, fn func()) Handle {
	return timerHandle{t: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	t *time.Timer
}

func (h timerHandle) Stop() bool {
	return h.t.Stop()
}

// Manual is a Scheduler for tests: callbacks accumulate until the clock is
// advanced explicitly. Safe for concurrent use.
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	entries []*manualEntry
}

type manualEntry struct {
	sched   *Manual
	due     time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (e *manualEntry) Stop() bool {
	e.sched.mu.Lock()
	defer e.sched.mu.Unlock()
	if e.fired || e.stopped {
		return false
	}
	e.stopped = true
	return true
}

// NewManual creates an empty manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(d time.Duration, fn func()) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := &manualEntry{sched: m, due: m.now + d, fn: fn}
	m.entries = append(m.entries, e)
	return e
}

// Advance moves the fake clock forward, firing due callbacks in scheduling
// order. Callbacks run without the scheduler lock held, so they may schedule
// or cancel further work.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	now := m.now
	m.mu.Unlock()

	for {
		m.mu.Lock()
		var next *manualEntry
		for _, e := range m.entries {
			if !e.fired && !e.stopped && e.due <= now {
				next = e
				break
			}
		}
		if next != nil {
			next.fired = true
		}
		m.mu.Unlock()
		if next == nil {
			return
		}
		next.fn()
	}
}

// Pending returns the number of scheduled callbacks that have neither fired
// nor been stopped.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.entries {
		if !e.fired && !e.stopped {
			n++
		}
	}
	return n
}
