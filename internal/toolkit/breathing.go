package toolkit

import (
	"sync"
	"time"

	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// BreathPhase is one step of the breathing cycle.
type BreathPhase int

const (
	PhaseInhale BreathPhase = iota
	PhaseHold
	PhaseExhale
)

// Label returns the instruction shown for the phase.
func (p BreathPhase) Label() string {
	switch p {
	case PhaseInhale:
		return "Inhale"
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Exhale"
	default:
		return "Unknown"
	}
}

// Breathing cycles Inhale → Hold → Exhale on a repeating timer. After the
// configured number of completed cycles it freezes on Exhale and stops
// advancing until restarted.
type Breathing struct {
	mu        sync.Mutex
	scheduler ports.Scheduler
	durations [3]time.Duration
	maxCycles int

	phase  BreathPhase
	cycles int
	frozen bool
	handle ports.TimerHandle

	onChange   func()
	onComplete func()
}

func newBreathing(scheduler ports.Scheduler, cfg Config, onChange, onComplete func()) *Breathing {
	b := &Breathing{
		scheduler:  scheduler,
		durations:  [3]time.Duration{cfg.Inhale, cfg.Hold, cfg.Exhale},
		maxCycles:  cfg.BreathingCycles,
		onChange:   onChange,
		onComplete: onComplete,
	}
	b.mu.Lock()
	b.scheduleLocked()
	b.mu.Unlock()
	return b
}

// Tool identifies the session.
func (b *Breathing) Tool() domain.Tool { return domain.ToolBreathing }

// Phase returns the current breathing phase.
func (b *Breathing) Phase() BreathPhase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// Cycles returns the number of completed cycles.
func (b *Breathing) Cycles() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cycles
}

// MaxCycles returns the configured cycle count.
func (b *Breathing) MaxCycles() int { return b.maxCycles }

// Frozen reports whether the session has finished and stopped advancing.
func (b *Breathing) Frozen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frozen
}

// PhaseDuration returns how long the current phase lasts.
func (b *Breathing) PhaseDuration() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.durations[b.phase]
}

// Restart resets the phase and cycle counter and resumes advancing.
func (b *Breathing) Restart() {
	b.mu.Lock()
	if b.handle != nil {
		b.handle.Cancel()
		b.handle = nil
	}
	b.phase = PhaseInhale
	b.cycles = 0
	b.frozen = false
	b.scheduleLocked()
	onChange := b.onChange
	b.mu.Unlock()
	if onChange != nil {
		onChange()
	}
}

// Close cancels the pending phase timer.
func (b *Breathing) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handle != nil {
		b.handle.Cancel()
		b.handle = nil
	}
	b.frozen = true
}

func (b *Breathing) scheduleLocked() {
	b.handle = b.scheduler.AfterFunc(b.durations[b.phase], b.advance)
}

// advance moves to the next phase. Completing an exhale counts a cycle;
// the final cycle leaves the session frozen on Exhale.
func (b *Breathing) advance() {
	b.mu.Lock()
	if b.frozen {
		b.mu.Unlock()
		return
	}

	var completed bool
	switch b.phase {
	case PhaseInhale:
		b.phase = PhaseHold
	case PhaseHold:
		b.phase = PhaseExhale
	case PhaseExhale:
		b.cycles++
		if b.cycles >= b.maxCycles {
			b.frozen = true
			b.handle = nil
			completed = true
		} else {
			b.phase = PhaseInhale
		}
	}
	if !b.frozen {
		b.scheduleLocked()
	}
	onChange := b.onChange
	onComplete := b.onComplete
	b.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	if completed && onComplete != nil {
		onComplete()
	}
}
