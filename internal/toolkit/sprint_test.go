package toolkit

import (
	"testing"
	"time"
)

func TestSprintStartsStoppedAtFullDuration(t *testing.T) {
	sched := &fakeScheduler{}
	s := newSprint(sched, 300*time.Second, nil, nil)

	if s.Running() {
		t.Errorf("Running() = true on open, want false")
	}
	if got := s.Remaining(); got != 300*time.Second {
		t.Errorf("Remaining() = %v, want 5m0s", got)
	}
	if got := sched.pendingCount(); got != 0 {
		t.Errorf("pending timers before start = %d, want 0", got)
	}
}

func TestSprintToggleAndTick(t *testing.T) {
	sched := &fakeScheduler{}
	s := newSprint(sched, 3*time.Second, nil, nil)

	s.Toggle()
	if !s.Running() {
		t.Fatalf("Running() = false after Toggle, want true")
	}

	sched.fire()
	if got := s.Remaining(); got != 2*time.Second {
		t.Errorf("Remaining() after one tick = %v, want 2s", got)
	}

	s.Toggle()
	if s.Running() {
		t.Errorf("Running() = true after pause, want false")
	}
	if got := sched.pendingCount(); got != 0 {
		t.Errorf("pending timers while paused = %d, want 0", got)
	}
	if got := s.Remaining(); got != 2*time.Second {
		t.Errorf("Remaining() while paused = %v, want 2s", got)
	}
}

func TestSprintCompletesAtZero(t *testing.T) {
	sched := &fakeScheduler{}
	var completions int
	s := newSprint(sched, 3*time.Second, nil, func() { completions++ })

	s.Toggle()
	for sched.fire() {
	}

	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining() at end = %v, want 0", got)
	}
	if s.Running() {
		t.Errorf("Running() = true at zero, want false")
	}
	if completions != 1 {
		t.Errorf("completion callback fired %d times, want 1", completions)
	}

	// Toggling a finished sprint must not restart it.
	s.Toggle()
	if s.Running() {
		t.Errorf("Toggle at zero restarted the sprint")
	}
}

func TestSprintNeverGoesNegative(t *testing.T) {
	sched := &fakeScheduler{}
	s := newSprint(sched, 2*time.Second, nil, nil)

	s.Toggle()
	for sched.fire() {
	}
	if got := s.Remaining(); got < 0 {
		t.Errorf("Remaining() = %v, want >= 0", got)
	}
}

func TestSprintReset(t *testing.T) {
	sched := &fakeScheduler{}
	s := newSprint(sched, 10*time.Second, nil, nil)

	s.Toggle()
	sched.fire()
	sched.fire()
	s.Reset()

	if s.Running() {
		t.Errorf("Running() = true after Reset, want false")
	}
	if got := s.Remaining(); got != 10*time.Second {
		t.Errorf("Remaining() after Reset = %v, want 10s", got)
	}
	if got := sched.pendingCount(); got != 0 {
		t.Errorf("pending timers after Reset = %d, want 0", got)
	}
}

func TestSprintProgress(t *testing.T) {
	sched := &fakeScheduler{}
	s := newSprint(sched, 4*time.Second, nil, nil)

	if got := s.Progress(); got != 0 {
		t.Errorf("Progress() at start = %v, want 0", got)
	}
	s.Toggle()
	sched.fire()
	if got := s.Progress(); got != 0.25 {
		t.Errorf("Progress() after one tick = %v, want 0.25", got)
	}
}
