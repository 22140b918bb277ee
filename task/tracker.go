package task

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrInvalidState is returned when resume/suspend events for a task arrive
// out of order: a resume while already running, or a suspend while not
// running. The tracker's state is left untouched.
var ErrInvalidState = errors.New("invalid state: resume/suspend events must alternate")

// ID identifies one tracked task. The tracker imposes no structure on it;
// the scheduler hook chooses the scheme (goroutine id, task pointer string,
// uuid, ...).
type ID string

// state is the per-task accounting record.
type state struct {
	// accumulatedActive only advances on a suspend event, folding in the
	// interval since the paired resume.
	accumulatedActive time.Duration

	// lastResume is set on a resume event and meaningful only while
	// running.
	lastResume time.Time

	running bool
}

// Tracker accounts active (running) time per task.
//
// # Thread Safety
//
// The per-task event line is expected to be serialized by the scheduler
// delivering the events; the task map itself is guarded by a mutex so that
// Release and ElapsedActive may be called from a different context than the
// one issuing resume/suspend events.
type Tracker struct {
	mu    sync.Mutex
	tasks map[ID]*state
	now   func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock replaces the wall clock used for live ElapsedActive reads.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker returns an empty tracker. Task state is created on first
// observation of a task and dropped by Release.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		tasks: make(map[ID]*state),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// MarkResumed records that the task transitioned from suspended to running
// at the given instant. An unknown task id starts tracking implicitly, with
// this resume as its first event. A resume for a task already running is a
// protocol violation and returns ErrInvalidState.
func (t *Tracker) MarkResumed(id ID, at time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.lookup(id)
	if st.running {
		return fmt.Errorf("task %q: resume while running: %w", id, ErrInvalidState)
	}
	st.lastResume = at
	st.running = true
	return nil
}

// MarkSuspended records the reverse transition, folding the interval since
// the paired resume into the task's active total. A suspend for a task not
// running (including an unknown task) returns ErrInvalidState.
func (t *Tracker) MarkSuspended(id ID, at time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	st, ok := t.tasks[id]
	if !ok || !st.running {
		return fmt.Errorf("task %q: suspend while not running: %w", id, ErrInvalidState)
	}
	st.accumulatedActive += at.Sub(st.lastResume)
	st.lastResume = time.Time{}
	st.running = false
	return nil
}

// ElapsedActive returns the task's total active time so far. If the task is
// currently running, the in-progress interval is included by reading the
// tracker's clock — no suspend event is required first. An unknown task id
// starts tracking and reports zero.
//
// Over any window the returned total never exceeds wall-clock time, with
// equality only if the task was never suspended.
func (t *Tracker) ElapsedActive(id ID) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.lookup(id)
	active := st.accumulatedActive
	if st.running {
		active += t.now().Sub(st.lastResume)
	}
	return active
}

// Release drops all state for a finished task. Required to bound memory in
// a long-running process with many short-lived tasks; releasing an unknown
// task is a no-op.
func (t *Tracker) Release(id ID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tasks, id)
}

// Len returns the number of currently tracked tasks.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tasks)
}

// ActiveClock returns a monotonic clock reading the task's active time,
// suitable as a timer clock: consecutive readings differ by the task's
// active time between them, excluding suspension.
func (t *Tracker) ActiveClock(id ID) func() time.Duration {
	return func() time.Duration {
		return t.ElapsedActive(id)
	}
}

// lookup returns the task's state, creating it on first observation.
// Callers hold t.mu.
func (t *Tracker) lookup(id ID) *state {
	st, ok := t.tasks[id]
	if !ok {
		st = &state{}
		t.tasks[id] = st
	}
	return st
}
