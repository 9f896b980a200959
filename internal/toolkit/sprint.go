package toolkit

import (
	"sync"
	"time"

	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// Sprint is the focus sprint countdown. It starts stopped at the full
// duration, toggles between running and paused, decrements once per
// elapsed second while running, and stops by itself at zero.
type Sprint struct {
	mu        sync.Mutex
	scheduler ports.Scheduler
	duration  time.Duration

	remaining time.Duration
	running   bool
	handle    ports.TimerHandle

	onChange   func()
	onComplete func()
}

func newSprint(scheduler ports.Scheduler, duration time.Duration, onChange, onComplete func()) *Sprint {
	return &Sprint{
		scheduler:  scheduler,
		duration:   duration,
		remaining:  duration,
		onChange:   onChange,
		onComplete: onComplete,
	}
}

// Tool identifies the session.
func (s *Sprint) Tool() domain.Tool { return domain.ToolFocusSprint }

// Remaining returns the time left on the countdown.
func (s *Sprint) Remaining() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remaining
}

// Duration returns the configured full sprint length.
func (s *Sprint) Duration() time.Duration { return s.duration }

// Running reports whether the countdown is ticking.
func (s *Sprint) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Progress returns completion from 0.0 to 1.0.
func (s *Sprint) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.duration == 0 {
		return 0
	}
	return float64(s.duration-s.remaining) / float64(s.duration)
}

// Toggle starts a stopped countdown or pauses a running one. Toggling at
// zero is a no-op; Reset is the only way back up.
func (s *Sprint) Toggle() {
	s.mu.Lock()
	switch {
	case s.running:
		s.running = false
		if s.handle != nil {
			s.handle.Cancel()
			s.handle = nil
		}
	case s.remaining > 0:
		s.running = true
		s.handle = s.scheduler.AfterFunc(time.Second, s.tick)
	default:
		s.mu.Unlock()
		return
	}
	onChange := s.onChange
	s.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Reset returns the countdown to the full duration, stopped.
func (s *Sprint) Reset() {
	s.mu.Lock()
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	s.running = false
	s.remaining = s.duration
	onChange := s.onChange
	s.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Close cancels the pending tick.
func (s *Sprint) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	s.running = false
}

func (s *Sprint) tick() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.remaining -= time.Second
	var completed bool
	if s.remaining <= 0 {
		s.remaining = 0
		s.running = false
		s.handle = nil
		completed = true
	} else {
		s.handle = s.scheduler.AfterFunc(time.Second, s.tick)
	}
	onChange := s.onChange
	onComplete := s.onComplete
	s.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	if completed && onComplete != nil {
		onComplete()
	}
}
