// Package ports defines the interfaces between the core journey logic and
// its adapters. These are driving ports: the core calls them, the adapters
// implement them.
package ports

import "time"

// TimerHandle is a cancellable scheduled callback. Sessions keep their
// handles and cancel them on close so stale callbacks never mutate
// disposed state.
type TimerHandle interface {
	// Cancel stops the callback from firing. Cancelling an already-fired
	// or already-cancelled handle is a no-op.
	Cancel()
}

// Scheduler schedules one-shot callbacks. The production implementation
// delivers callbacks through the UI event loop; tests substitute a manual
// scheduler to simulate time.
type Scheduler interface {
	// AfterFunc runs fn once after d elapses and returns a handle that can
	// cancel it before it fires.
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

// SystemScheduler implements Scheduler with real timers.
type SystemScheduler struct{}

type systemHandle struct {
	t *time.Timer
}

func (h *systemHandle) Cancel() {
	h.t.Stop()
}

// AfterFunc schedules fn on a real timer.
func (SystemScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return &systemHandle{t: time.AfterFunc(d, fn)}
}
