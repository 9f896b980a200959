package toolkit

import (
	"sync"

	"github.com/xvela/reframe/internal/domain"
)

// ResetSequence steps through a fixed ordered list of instructions,
// wrapping back to the first after the last.
type ResetSequence struct {
	mu    sync.Mutex
	steps []string
	index int
}

func newResetSequence(steps []string) *ResetSequence {
	return &ResetSequence{steps: steps}
}

// Tool identifies the session.
func (r *ResetSequence) Tool() domain.Tool { return domain.ToolReset }

// Close is a no-op; the sequence holds no timers.
func (r *ResetSequence) Close() {}

// Step returns the current instruction and its zero-based index.
func (r *ResetSequence) Step() (string, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.steps[r.index], r.index
}

// Len returns the number of instructions.
func (r *ResetSequence) Len() int { return len(r.steps) }

// Next advances circularly.
func (r *ResetSequence) Next() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.index = (r.index + 1) % len(r.steps)
}

// Checklist is a static read-only list session, used for the grounding
// exercise and the coping cards.
type Checklist struct {
	tool  domain.Tool
	items []string
}

func newChecklist(tool domain.Tool, items []string) *Checklist {
	return &Checklist{tool: tool, items: items}
}

// Tool identifies the session.
func (c *Checklist) Tool() domain.Tool { return c.tool }

// Close is a no-op.
func (c *Checklist) Close() {}

// Items returns the list entries.
func (c *Checklist) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}

// FieldSession holds a fixed set of labelled free-text fields with no
// validation, used by the mini journal and the thought challenger.
type FieldSession struct {
	mu     sync.Mutex
	tool   domain.Tool
	labels []string
	values []string
}

func newFieldSession(tool domain.Tool, labels []string) *FieldSession {
	return &FieldSession{
		tool:   tool,
		labels: labels,
		values: make([]string, len(labels)),
	}
}

// Tool identifies the session.
func (f *FieldSession) Tool() domain.Tool { return f.tool }

// Close is a no-op.
func (f *FieldSession) Close() {}

// Labels returns the field prompts.
func (f *FieldSession) Labels() []string {
	out := make([]string, len(f.labels))
	copy(out, f.labels)
	return out
}

// Value returns the text of field i.
func (f *FieldSession) Value(i int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.values) {
		return ""
	}
	return f.values[i]
}

// SetValue replaces the text of field i. Out-of-range indexes are a
// silent no-op.
func (f *FieldSession) SetValue(i int, v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.values) {
		return
	}
	f.values[i] = v
}
