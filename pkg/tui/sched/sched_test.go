// ABOUTME: Tests for the Manual scheduler fake and timer handles
// ABOUTME: Verifies firing order, cancellation, and pending accounting

package sched

import (
	"testing"
	"time"
)

func TestManual_FiresAfterAdvance(t *testing.T) {
	t.Parallel()

	m := NewManual()
	fired := 0
	m.Schedule(3*time.Second, func() { fired++ })

	m.Advance(2 * time.Second)
	if fired != 0 {
		t.Fatalf("callback fired early: %d", fired)
	}
	m.Advance(time.Second)
	if fired != 1 {
		t.Fatalf("expected 1 firing, got %d", fired)
	}
	m.Advance(10 * time.Second)
	if fired != 1 {
		t.Errorf("callback fired again: %d", fired)
	}
}

func TestManual_StopPreventsFiring(t *testing.T) {
	t.Parallel()

	m := NewManual()
	fired := false
	h := m.Schedule(time.Second, func() { fired = true })

	if !h.Stop() {
		t.Error("expected Stop to report cancellation")
	}
	if h.Stop() {
		t.Error("second Stop should report false")
	}
	m.Advance(5 * time.Second)
	if fired {
		t.Error("stopped callback fired")
	}
	if m.Pending() != 0 {
		t.Errorf("expected 0 pending, got %d", m.Pending())
	}
}

func TestManual_CallbackMaySchedule(t *testing.T) {
	t.Parallel()

	m := NewManual()
	second := false
	m.Schedule(time.Second, func() {
		m.Schedule(time.Hour, func() { second = true })
	})

	m.Advance(time.Second)
	if second {
		t.Error("nested callback fired immediately")
	}
	if m.Pending() != 1 {
		t.Errorf("expected nested callback pending, got %d", m.Pending())
	}
}

func TestTimers_StopBeforeFire(t *testing.T) {
	t.Parallel()

	h := Timers{}.Schedule(time.Hour, func() {
		t.Error("callback fired despite Stop")
	})
	if !h.Stop() {
		t.Error("expected Stop to succeed for a distant timer")
	}
}
