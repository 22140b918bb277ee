package task

import "time"

// EventKind is a task scheduling transition.
type EventKind int

const (
	// Resumed marks a suspended-to-running transition.
	Resumed EventKind = iota

	// Suspended marks a running-to-suspended transition.
	Suspended
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case Resumed:
		return "resumed"
	case Suspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Event is one task-switch notification from a scheduler hook.
type Event struct {
	// Task identifies the task that transitioned.
	Task ID

	// Kind is the transition direction.
	Kind EventKind

	// At is the scheduler's timestamp for the transition.
	At time.Time
}

// EventSource is the integration seam to a scheduler's instrumentation:
// anything that can deliver task-switch events can drive a Tracker. The
// callback is invoked synchronously on the scheduler's own execution
// context, never concurrently for a given task.
type EventSource interface {
	Subscribe(fn func(Event))
}

// Attach subscribes the tracker to a scheduler event source. Protocol
// violations (out-of-order events) are passed to onErr; a nil onErr drops
// them. The tracker never retries or reorders — a violated event line is
// surfaced, not repaired.
func (t *Tracker) Attach(src EventSource, onErr func(error)) {
	src.Subscribe(func(ev Event) {
		var err error
		switch ev.Kind {
		case Resumed:
			err = t.MarkResumed(ev.Task, ev.At)
		case Suspended:
			err = t.MarkSuspended(ev.Task, ev.At)
		}
		if err != nil && onErr != nil {
			onErr(err)
		}
	})
}
