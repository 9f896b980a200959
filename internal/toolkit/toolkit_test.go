package toolkit

import (
	"sync"
	"testing"
	"time"

	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// fakeScheduler records scheduled callbacks so tests can fire them by
// hand instead of waiting on the wall clock.
type fakeScheduler struct {
	mu    sync.Mutex
	tasks []*fakeTask
}

type fakeTask struct {
	d         time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

func (t *fakeTask) Cancel() { t.cancelled = true }

func (f *fakeScheduler) AfterFunc(d time.Duration, fn func()) ports.TimerHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	task := &fakeTask{d: d, fn: fn}
	f.tasks = append(f.tasks, task)
	return task
}

// fire runs the oldest unfired, uncancelled task.
func (f *fakeScheduler) fire() bool {
	f.mu.Lock()
	var task *fakeTask
	for _, t := range f.tasks {
		if !t.fired && !t.cancelled {
			task = t
			break
		}
	}
	f.mu.Unlock()
	if task == nil {
		return false
	}
	task.fired = true
	task.fn()
	return true
}

func (f *fakeScheduler) pendingCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tasks {
		if !t.fired && !t.cancelled {
			n++
		}
	}
	return n
}

func newTestManager(t *testing.T, opts ...ManagerOption) (*Manager, *fakeScheduler) {
	t.Helper()
	sched := &fakeScheduler{}
	return NewManager(sched, DefaultConfig(), opts...), sched
}

func TestManagerOpenEachTool(t *testing.T) {
	m, _ := newTestManager(t)

	for _, info := range domain.AllTools() {
		t.Run(string(info.Tool), func(t *testing.T) {
			s := m.Open(info.Tool)
			if s == nil {
				t.Fatalf("Open(%q) returned nil session", info.Tool)
			}
			if got := s.Tool(); got != info.Tool {
				t.Errorf("session tool = %v, want %v", got, info.Tool)
			}
			if m.Active() != s {
				t.Errorf("Active() does not return the opened session")
			}
		})
	}
}

func TestManagerOpenUnknownTool(t *testing.T) {
	m, _ := newTestManager(t)

	if s := m.Open(domain.Tool("bogus")); s != nil {
		t.Errorf("Open(bogus) = %v, want nil", s)
	}
	if m.Active() != nil {
		t.Errorf("Active() = %v, want nil", m.Active())
	}
}

func TestManagerReopenGivesFreshSession(t *testing.T) {
	m, _ := newTestManager(t)

	first := m.Open(domain.ToolJournal).(*FieldSession)
	first.SetValue(0, "spilled coffee on my laptop")

	second := m.Open(domain.ToolJournal).(*FieldSession)
	if first == second {
		t.Fatalf("reopening returned the same session")
	}
	if got := second.Value(0); got != "" {
		t.Errorf("fresh session value = %q, want empty", got)
	}
}

func TestManagerOpenClosesPreviousTimers(t *testing.T) {
	m, sched := newTestManager(t)

	m.Open(domain.ToolBreathing)
	if got := sched.pendingCount(); got != 1 {
		t.Fatalf("pending after breathing open = %d, want 1", got)
	}

	m.Open(domain.ToolGrounding)
	if got := sched.pendingCount(); got != 0 {
		t.Errorf("pending after switch = %d, want 0 (breathing timer cancelled)", got)
	}
}

func TestManagerCloseCancelsTimers(t *testing.T) {
	m, sched := newTestManager(t)

	sprint := m.Open(domain.ToolFocusSprint).(*Sprint)
	sprint.Toggle()
	if got := sched.pendingCount(); got != 1 {
		t.Fatalf("pending after sprint start = %d, want 1", got)
	}

	m.Close()
	if m.Active() != nil {
		t.Errorf("Active() after Close = %v, want nil", m.Active())
	}
	if got := sched.pendingCount(); got != 0 {
		t.Errorf("pending after Close = %d, want 0", got)
	}
}

func TestManagerNotifiesObservers(t *testing.T) {
	m, _ := newTestManager(t)

	var calls int
	m.Subscribe(func() { calls++ })

	m.Open(domain.ToolReset)
	if calls == 0 {
		t.Errorf("observer not called on Open")
	}
	before := calls
	m.Close()
	if calls <= before {
		t.Errorf("observer not called on Close")
	}
}

func TestChecklistContents(t *testing.T) {
	tests := []struct {
		tool  domain.Tool
		first string
		count int
	}{
		{domain.ToolGrounding, "Name 5 things you can see", 5},
		{domain.ToolCopingCards, "Feelings are weather, not climate.", 5},
	}

	m, _ := newTestManager(t)
	for _, tt := range tests {
		t.Run(string(tt.tool), func(t *testing.T) {
			c := m.Open(tt.tool).(*Checklist)
			items := c.Items()
			if len(items) != tt.count {
				t.Fatalf("len(items) = %d, want %d", len(items), tt.count)
			}
			if items[0] != tt.first {
				t.Errorf("items[0] = %q, want %q", items[0], tt.first)
			}
		})
	}
}

func TestResetSequenceWraps(t *testing.T) {
	m, _ := newTestManager(t)
	r := m.Open(domain.ToolReset).(*ResetSequence)

	first, idx := r.Step()
	if idx != 0 {
		t.Fatalf("initial index = %d, want 0", idx)
	}
	for i := 0; i < r.Len(); i++ {
		r.Next()
	}
	got, idx := r.Step()
	if idx != 0 || got != first {
		t.Errorf("after full loop Step() = (%q, %d), want (%q, 0)", got, idx, first)
	}
}

func TestFieldSessionOutOfRange(t *testing.T) {
	m, _ := newTestManager(t)
	f := m.Open(domain.ToolThoughtChallenger).(*FieldSession)

	f.SetValue(-1, "x")
	f.SetValue(len(f.Labels()), "x")
	if got := f.Value(-1); got != "" {
		t.Errorf("Value(-1) = %q, want empty", got)
	}

	f.SetValue(1, "my boss frowned at me")
	if got := f.Value(1); got != "my boss frowned at me" {
		t.Errorf("Value(1) = %q, want stored text", got)
	}
}
