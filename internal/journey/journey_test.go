package journey

import (
	"sync"
	"testing"
	"time"

	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// fakeScheduler captures scheduled callbacks so tests can fire them
// manually, simulating elapsed time.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

type fakeTask struct {
	d         time.Duration
	fn        func()
	fired     bool
	cancelled bool
}

func (t *fakeTask) Cancel() { t.cancelled = true }

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	task := &fakeTask{d: d, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// fire runs every pending callback once.
func (s *fakeScheduler) fire() {
	s.mu.Lock()
	pending := make([]*fakeTask, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			t.fired = true
			pending = append(pending, t)
		}
	}
	s.mu.Unlock()
	for _, t := range pending {
		t.fn()
	}
}

func (s *fakeScheduler) pendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

func newTestJourney() (*Journey, *fakeScheduler) {
	sched := &fakeScheduler{}
	return New(sched), sched
}

func TestNew_InitialState(t *testing.T) {
	j, _ := newTestJourney()

	if _, ok := j.Screen().(domain.StoryScreen); !ok {
		t.Errorf("initial screen = %v, want story", j.Screen().Name())
	}
	if j.Mood() != domain.MoodCalm {
		t.Errorf("initial mood = %v, want calm", j.Mood())
	}
}

func TestJourney_StartMovesToInput(t *testing.T) {
	j, _ := newTestJourney()

	j.Start()
	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input", j.Screen().Name())
	}

	// Start from anywhere but story is a no-op.
	j.Start()
	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input after repeated Start", j.Screen().Name())
	}
}

func TestJourney_SubmitValid(t *testing.T) {
	j, sched := newTestJourney()
	j.Start()
	j.SetDraft("ok")

	j.Submit()

	translating, ok := j.Screen().(domain.TranslatingScreen)
	if !ok {
		t.Fatalf("screen = %v, want translating", j.Screen().Name())
	}
	if translating.OriginalText != "ok" {
		t.Errorf("OriginalText = %q, want %q", translating.OriginalText, "ok")
	}
	if j.Draft() != "" {
		t.Errorf("draft = %q, want cleared", j.Draft())
	}
	if sched.pendingCount() != 1 {
		t.Errorf("pending timers = %d, want 1", sched.pendingCount())
	}

	sched.fire()

	result, ok := j.Screen().(domain.ResultScreen)
	if !ok {
		t.Fatalf("screen = %v, want result after delay", j.Screen().Name())
	}
	if result.Result.OriginalText != "ok" {
		t.Errorf("Result.OriginalText = %q, want %q", result.Result.OriginalText, "ok")
	}
}

func TestJourney_SubmitWhitespaceRejected(t *testing.T) {
	j, sched := newTestJourney()
	j.Start()
	j.SetDraft("   ")

	j.Submit()

	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input after rejected submit", j.Screen().Name())
	}
	if sched.pendingCount() != 0 {
		t.Errorf("pending timers = %d, want 0", sched.pendingCount())
	}
}

func TestJourney_SubmitTooShortRejected(t *testing.T) {
	j, _ := newTestJourney()
	j.Start()
	j.SetDraft(" a ")

	j.Submit()

	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input for single-character draft", j.Screen().Name())
	}
}

func TestJourney_MoodOnlyInInput(t *testing.T) {
	j, sched := newTestJourney()

	// On story: rejected.
	j.SelectMood(domain.MoodFocus)
	if j.Mood() != domain.MoodCalm {
		t.Errorf("mood = %v, want calm while on story", j.Mood())
	}

	j.Start()
	j.SelectMood(domain.MoodFocus)
	if j.Mood() != domain.MoodFocus {
		t.Errorf("mood = %v, want focus", j.Mood())
	}

	// Mood captured at submit; changing afterwards cannot retone.
	j.SetDraft("what if I fail")
	j.Submit()
	j.SelectMood(domain.MoodCalm) // no-op: not on input
	sched.fire()

	result := j.Screen().(domain.ResultScreen)
	if result.Result.PatternTag != "Catastrophizing · Focus" {
		t.Errorf("PatternTag = %q, want %q", result.Result.PatternTag, "Catastrophizing · Focus")
	}
}

func TestJourney_ResultLandingLoop(t *testing.T) {
	j, sched := newTestJourney()
	j.Start()
	j.SetDraft("everyone will laugh")
	j.Submit()
	sched.fire()

	j.TakeStep()
	landing, ok := j.Screen().(domain.LandingScreen)
	if !ok {
		t.Fatalf("screen = %v, want landing", j.Screen().Name())
	}

	j.Back()
	result, ok := j.Screen().(domain.ResultScreen)
	if !ok {
		t.Fatalf("screen = %v, want result after back", j.Screen().Name())
	}
	if result.Result.ID != landing.Result.ID {
		t.Error("result changed across landing round-trip")
	}

	j.TakeStep()
	j.Finish()
	if _, ok := j.Screen().(domain.EndingScreen); !ok {
		t.Fatalf("screen = %v, want ending", j.Screen().Name())
	}

	j.TranslateAnother()
	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input after translate-another", j.Screen().Name())
	}
	if j.Draft() != "" {
		t.Errorf("draft = %q, want cleared", j.Draft())
	}
}

func TestJourney_TranslateAnotherFromLanding(t *testing.T) {
	j, sched := newTestJourney()
	j.Start()
	j.SetDraft("this will be a disaster")
	j.Submit()
	sched.fire()
	j.TakeStep()

	j.TranslateAnother()
	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input after translate-another from landing", j.Screen().Name())
	}
}

func TestJourney_WithMood(t *testing.T) {
	sched := &fakeScheduler{}
	j := New(sched, WithMood(domain.MoodConfidence))
	if j.Mood() != domain.MoodConfidence {
		t.Errorf("mood = %v, want confidence", j.Mood())
	}
}

func TestJourney_StartOver(t *testing.T) {
	j, sched := newTestJourney()
	j.Start()
	j.SetDraft("stuck on everything")
	j.Submit()
	sched.fire()

	j.StartOver()
	if _, ok := j.Screen().(domain.InputScreen); !ok {
		t.Errorf("screen = %v, want input after start over", j.Screen().Name())
	}
}

// The delayed callback executes exactly once; replaying it after the
// transition has happened is a no-op.
func TestJourney_TranslationExactlyOnce(t *testing.T) {
	j, sched := newTestJourney()
	j.Start()
	j.SetDraft("what if")
	j.Submit()

	sched.fire()
	first := j.Screen().(domain.ResultScreen)

	sched.mu.Lock()
	task := sched.tasks[0]
	sched.mu.Unlock()
	task.fn() // stale replay

	second, ok := j.Screen().(domain.ResultScreen)
	if !ok {
		t.Fatalf("screen = %v, want result", j.Screen().Name())
	}
	if second.Result.ID != first.Result.ID {
		t.Error("stale callback replaced the result")
	}
}

func TestJourney_StaleSequenceDropped(t *testing.T) {
	j, _ := newTestJourney()
	j.Start()
	j.SetDraft("what if it breaks")
	j.Submit()

	// A callback carrying an outdated sequence number must be ignored.
	j.completeTranslation(0, "what if it breaks", domain.MoodCalm)

	if _, ok := j.Screen().(domain.TranslatingScreen); !ok {
		t.Errorf("screen = %v, want translating after stale callback", j.Screen().Name())
	}
}

func TestJourney_ObserverNotification(t *testing.T) {
	j, _ := newTestJourney()
	var calls int
	j.Subscribe(func() { calls++ })

	j.Start()
	if calls != 1 {
		t.Errorf("observer calls = %d, want 1", calls)
	}

	// Rejected transitions do not notify.
	j.Start()
	if calls != 1 {
		t.Errorf("observer calls = %d after no-op, want 1", calls)
	}

	j.SetDraft("hi")
	if calls != 2 {
		t.Errorf("observer calls = %d after draft edit, want 2", calls)
	}
}
