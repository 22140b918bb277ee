// Package timer provides named measurement sites wrapping the stats
// observers: a Timer starts and stops one measurement around a region of
// code and feeds the elapsed duration to its observer.
//
//	var tm = timer.New("parse request")
//
//	func handle() {
//		defer tm.Start()()
//		// code under measurement
//	}
//
// Reporting is an explicit lifecycle step: call Report or Close on the
// timer, or Shutdown on its Registry from process teardown. Nothing is
// flushed by finalizers, so report timing is deterministic.
//
// For measuring one site from multiple goroutines use NewThread; to measure
// only the CPU-active time of a cooperatively scheduled task use NewTask
// with a task.Tracker.
package timer
