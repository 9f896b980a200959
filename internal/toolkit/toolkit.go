// Package toolkit implements the self-help tool sessions. Each session is
// an independent micro state machine created fresh on open and discarded
// on close; any scheduled callbacks it owns are cancelled with it.
package toolkit

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xvela/reframe/internal/classify"
	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// Config holds the timing knobs for the timed tools. Defaults reproduce
// the canonical exercise timings.
type Config struct {
	Inhale          time.Duration
	Hold            time.Duration
	Exhale          time.Duration
	BreathingCycles int
	SprintDuration  time.Duration
	BuddyReplyDelay time.Duration
}

// DefaultConfig returns the standard tool timings.
func DefaultConfig() Config {
	return Config{
		Inhale:          4 * time.Second,
		Hold:            2 * time.Second,
		Exhale:          6 * time.Second,
		BreathingCycles: 4,
		SprintDuration:  300 * time.Second,
		BuddyReplyDelay: 550 * time.Millisecond,
	}
}

// Session is one open tool overlay. Closing a session cancels its pending
// callbacks; its state is never reused.
type Session interface {
	Tool() domain.Tool
	Close()
}

// Manager owns the active tool session. Opening a tool closes any
// previous session first, so at most one session exists and no state
// leaks between openings.
type Manager struct {
	mu              sync.Mutex
	scheduler       ports.Scheduler
	cfg             Config
	reply           func(string) string
	active          Session
	observers       []func()
	onBreathingDone func()
	onSprintDone    func()
	logger          *zap.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithReply overrides the buddy reply function.
func WithReply(fn func(string) string) ManagerOption {
	return func(m *Manager) { m.reply = fn }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) ManagerOption {
	return func(m *Manager) { m.logger = l }
}

// WithBreathingDone sets a callback fired when a breathing session
// finishes its final cycle.
func WithBreathingDone(fn func()) ManagerOption {
	return func(m *Manager) { m.onBreathingDone = fn }
}

// WithSprintDone sets a callback fired when the focus sprint reaches zero.
func WithSprintDone(fn func()) ManagerOption {
	return func(m *Manager) { m.onSprintDone = fn }
}

// NewManager creates a tool session manager.
func NewManager(scheduler ports.Scheduler, cfg Config, opts ...ManagerOption) *Manager {
	m := &Manager{
		scheduler: scheduler,
		cfg:       cfg,
		reply:     classify.Reply,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Subscribe registers an observer called after every session change.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	m.observers = append(m.observers, fn)
	m.mu.Unlock()
}

// Active returns the open session, or nil.
func (m *Manager) Active() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Open starts a fresh session for the given tool, closing any session
// already open. Unknown tools are a silent no-op.
func (m *Manager) Open(t domain.Tool) Session {
	m.mu.Lock()
	if m.active != nil {
		m.active.Close()
		m.active = nil
	}

	var s Session
	switch t {
	case domain.ToolBreathing:
		s = newBreathing(m.scheduler, m.cfg, m.notify, m.onBreathingDone)
	case domain.ToolGrounding:
		s = newChecklist(domain.ToolGrounding, GroundingSteps())
	case domain.ToolJournal:
		s = newFieldSession(domain.ToolJournal, JournalPrompts())
	case domain.ToolReset:
		s = newResetSequence(ResetSteps())
	case domain.ToolFocusSprint:
		s = newSprint(m.scheduler, m.cfg.SprintDuration, m.notify, m.onSprintDone)
	case domain.ToolThoughtChallenger:
		s = newFieldSession(domain.ToolThoughtChallenger, ChallengerPrompts())
	case domain.ToolCopingCards:
		s = newChecklist(domain.ToolCopingCards, CopingCards())
	case domain.ToolBuddy:
		s = newBuddy(m.scheduler, m.cfg.BuddyReplyDelay, m.reply, m.notify)
	default:
		m.mu.Unlock()
		return nil
	}

	m.active = s
	m.logger.Debug("tool session opened", zap.String("tool", string(t)))
	m.mu.Unlock()
	m.notify()
	return s
}

// Close discards the active session and cancels its timers.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.active == nil {
		m.mu.Unlock()
		return
	}
	tool := m.active.Tool()
	m.active.Close()
	m.active = nil
	m.logger.Debug("tool session closed", zap.String("tool", string(tool)))
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) notify() {
	m.mu.Lock()
	obs := append([]func(){}, m.observers...)
	m.mu.Unlock()
	for _, o := range obs {
		o()
	}
}
