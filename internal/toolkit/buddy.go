package toolkit

import (
	"strings"
	"sync"
	"time"

	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/ports"
)

// Buddy opening lines, appended to every fresh session transcript.
var buddyGreeting = []string{
	"Hey, I'm here. No fixing, just listening.",
	"What's circling around in your head right now?",
}

// Buddy is the supportive chat session. The transcript is append-only and
// lives only as long as the session; every user message gets a delayed
// canned reply from the reply engine.
type Buddy struct {
	mu        sync.Mutex
	scheduler ports.Scheduler
	delay     time.Duration
	reply     func(string) string

	messages []domain.ChatMessage
	handles  []ports.TimerHandle
	closed   bool
	onChange func()
}

func newBuddy(scheduler ports.Scheduler, delay time.Duration, reply func(string) string, onChange func()) *Buddy {
	b := &Buddy{
		scheduler: scheduler,
		delay:     delay,
		reply:     reply,
		onChange:  onChange,
	}
	for _, line := range buddyGreeting {
		b.messages = append(b.messages, domain.NewChatMessage(false, line))
	}
	return b
}

// Tool identifies the session.
func (b *Buddy) Tool() domain.Tool { return domain.ToolBuddy }

// Messages returns a copy of the transcript in order.
func (b *Buddy) Messages() []domain.ChatMessage {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.ChatMessage, len(b.messages))
	copy(out, b.messages)
	return out
}

// Send appends the user message immediately and schedules the buddy's
// reply after the configured delay. An empty trimmed draft is a silent
// no-op.
func (b *Buddy) Send(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.messages = append(b.messages, domain.NewChatMessage(true, trimmed))
	handle := b.scheduler.AfterFunc(b.delay, func() {
		b.appendReply(trimmed)
	})
	b.handles = append(b.handles, handle)
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

func (b *Buddy) appendReply(userText string) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.messages = append(b.messages, domain.NewChatMessage(false, b.reply(userText)))
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Close cancels pending replies and seals the transcript.
func (b *Buddy) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	for _, h := range b.handles {
		h.Cancel()
	}
	b.handles = nil
}
