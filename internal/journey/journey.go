// Package journey holds the screen-flow state machine. A Journey is the
// single state container for the current screen, mood, and input draft;
// all mutation goes through its methods, and registered observers are
// notified after every visible change so the view layer can re-render.
package journey

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/xvela/reframe/internal/classify"
	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// DefaultTranslateDelay models the perceived thinking time between
// submitting a thought and seeing its translation.
const DefaultTranslateDelay = 1050 * time.Millisecond

// MinThoughtLength is the minimum trimmed input length accepted by Submit.
const MinThoughtLength = 2

// Classifier is the translation function invoked after the delay.
type Classifier func(text string, mood domain.Mood) domain.TranslationResult

// Journey drives the story → input → translating → result → landing →
// ending loop. It is safe for use from timer callbacks: all state is
// guarded by a mutex and observers are invoked outside of it.
type Journey struct {
	mu        sync.Mutex
	screen    domain.Screen
	mood      domain.Mood
	draft     string
	seq       int
	pending   ports.TimerHandle
	delay     time.Duration
	scheduler ports.Scheduler
	classify  Classifier
	observers []func()
	logger    *zap.Logger
}

// Option configures a Journey.
type Option func(*Journey)

// WithDelay overrides the translating delay.
func WithDelay(d time.Duration) Option {
	return func(j *Journey) { j.delay = d }
}

// WithMood sets the initially selected mood.
func WithMood(m domain.Mood) Option {
	return func(j *Journey) { j.mood = m }
}

// WithClassifier overrides the classification function.
func WithClassifier(c Classifier) Option {
	return func(j *Journey) { j.classify = c }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(j *Journey) { j.logger = l }
}

// New creates a journey on the story screen with the calm mood selected.
func New(scheduler ports.Scheduler, opts ...Option) *Journey {
	j := &Journey{
		screen:    domain.StoryScreen{},
		mood:      domain.MoodCalm,
		delay:     DefaultTranslateDelay,
		scheduler: scheduler,
		classify:  classify.Classify,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Subscribe registers an observer called after every state change.
func (j *Journey) Subscribe(fn func()) {
	j.mu.Lock()
	j.observers = append(j.observers, fn)
	j.mu.Unlock()
}

// Screen returns the active screen.
func (j *Journey) Screen() domain.Screen {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.screen
}

// Mood returns the currently selected mood.
func (j *Journey) Mood() domain.Mood {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.mood
}

// Draft returns the current input buffer.
func (j *Journey) Draft() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.draft
}

// Start moves from the story screen to input.
func (j *Journey) Start() {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.StoryScreen); !ok {
			return false
		}
		j.screen = domain.InputScreen{}
		return true
	})
}

// SelectMood sets the mood for the next translation. Only permitted while
// on the input screen; an existing result is never retroactively retoned.
func (j *Journey) SelectMood(m domain.Mood) {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.InputScreen); !ok {
			return false
		}
		if j.mood == m {
			return false
		}
		j.mood = m
		return true
	})
}

// SetDraft replaces the input buffer. Only meaningful on the input screen.
func (j *Journey) SetDraft(s string) {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.InputScreen); !ok {
			return false
		}
		j.draft = s
		return true
	})
}

// Submit validates the draft and, when it holds at least two trimmed
// characters, enters the translating screen and schedules the one-shot
// classification. Too-short input is rejected silently.
func (j *Journey) Submit() {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.InputScreen); !ok {
			return false
		}
		text := strings.TrimSpace(j.draft)
		if utf8.RuneCountInString(text) < MinThoughtLength {
			return false
		}
		j.draft = ""
		j.screen = domain.TranslatingScreen{OriginalText: text}
		j.seq++
		seq := j.seq
		mood := j.mood
		j.logger.Debug("translation scheduled", zap.Int("seq", seq), zap.String("mood", string(mood)))
		j.pending = j.scheduler.AfterFunc(j.delay, func() {
			j.completeTranslation(seq, text, mood)
		})
		return true
	})
}

// completeTranslation is the delayed classify-then-transition callback. A
// stale sequence number means the journey has moved on since the callback
// was scheduled; the result is dropped.
func (j *Journey) completeTranslation(seq int, text string, mood domain.Mood) {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.TranslatingScreen); !ok {
			return false
		}
		if seq != j.seq {
			j.logger.Debug("stale translation dropped", zap.Int("seq", seq))
			return false
		}
		res := j.classify(text, mood)
		j.logger.Info("thought translated", zap.String("pattern", res.PatternTag))
		j.screen = domain.ResultScreen{Result: res}
		return true
	})
}

// StartOver discards the result and returns to input.
func (j *Journey) StartOver() {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.ResultScreen); !ok {
			return false
		}
		j.screen = domain.InputScreen{}
		return true
	})
}

// TakeStep moves from the result to the landing screen, carrying the same
// translation result.
func (j *Journey) TakeStep() {
	j.transition(func() bool {
		res, ok := j.screen.(domain.ResultScreen)
		if !ok {
			return false
		}
		j.screen = domain.LandingScreen{Result: res.Result}
		return true
	})
}

// Back returns from landing to the result screen.
func (j *Journey) Back() {
	j.transition(func() bool {
		landing, ok := j.screen.(domain.LandingScreen)
		if !ok {
			return false
		}
		j.screen = domain.ResultScreen{Result: landing.Result}
		return true
	})
}

// Finish moves from landing to the ending screen.
func (j *Journey) Finish() {
	j.transition(func() bool {
		if _, ok := j.screen.(domain.LandingScreen); !ok {
			return false
		}
		j.screen = domain.EndingScreen{}
		return true
	})
}

// TranslateAnother loops from the landing or ending screen back to a
// cleared input screen.
func (j *Journey) TranslateAnother() {
	j.transition(func() bool {
		switch j.screen.(type) {
		case domain.LandingScreen, domain.EndingScreen:
		default:
			return false
		}
		j.draft = ""
		j.screen = domain.InputScreen{}
		return true
	})
}

// transition runs fn under the lock and notifies observers when it
// reports a change. Observers run outside the lock.
func (j *Journey) transition(fn func() bool) {
	j.mu.Lock()
	changed := fn()
	var obs []func()
	if changed {
		obs = append(obs, j.observers...)
	}
	j.mu.Unlock()

	for _, o := range obs {
		o()
	}
}
