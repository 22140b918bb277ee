// Package task measures CPU-active elapsed time of cooperatively scheduled
// tasks, excluding intervals during which a task is suspended waiting on
// I/O, a timer, or another task.
//
// A Tracker consumes resume/suspend transition events from a scheduler
// instrumentation hook and answers live elapsed-active-time queries. It has
// no dependency on any particular scheduler: the hook is modelled as an
// EventSource the tracker subscribes to, so any runtime that can report
// task-switch notifications can drive it.
//
// Events for one task must strictly alternate starting with a resume; the
// tracker reports out-of-order events as ErrInvalidState rather than
// silently double-counting.
package task
