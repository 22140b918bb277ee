package timer

import (
	"fmt"
	"os"
	"sync"

	"github.com/belm0/perf-timer/internal/output"
	"github.com/belm0/perf-timer/stats"
	"github.com/belm0/perf-timer/task"
)

// Timer is a named measurement site. Each Start/stop pair feeds one duration
// to the timer's observer.
//
// # Thread Safety
//
// The base Timer is not safe for concurrent measurement: its observer has no
// locking. Use NewThread for sites measured from multiple goroutines.
type Timer struct {
	name     string
	clock    Clock
	obs      stats.Observer
	logf     func(string)
	registry *Registry

	mu         sync.Mutex
	recordErr  error
	reportOnce sync.Once
}

// StopFunc completes one measurement. The returned error reports a recording
// failure (e.g. a non-monotonic custom clock producing a negative duration);
// it is independent of anything the measured code itself did.
type StopFunc func() error

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithObserver selects the observer; the default is a StdDevObserver.
func WithObserver(obs stats.Observer) TimerOption {
	return func(t *Timer) {
		t.obs = obs
	}
}

// WithClock replaces the monotonic clock used to time measurements.
func WithClock(clock Clock) TimerOption {
	return func(t *Timer) {
		t.clock = clock
	}
}

// WithLogFunc replaces the report sink; the default writes a line to
// stderr.
func WithLogFunc(logf func(string)) TimerOption {
	return func(t *Timer) {
		t.logf = logf
	}
}

// WithRegistry registers the timer somewhere other than DefaultRegistry.
// A nil registry leaves the timer unregistered; its owner then drives
// Report/Close directly.
func WithRegistry(r *Registry) TimerOption {
	return func(t *Timer) {
		t.registry = r
	}
}

// New returns a timer named name, registered in DefaultRegistry unless
// overridden.
func New(name string, opts ...TimerOption) *Timer {
	t := &Timer{
		name:     name,
		clock:    WallClock,
		logf:     func(line string) { fmt.Fprintln(os.Stderr, line) },
		registry: DefaultRegistry,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.obs == nil {
		t.obs = stats.NewStdDev()
	}
	if t.registry != nil {
		t.registry.add(t)
	}
	return t
}

// NewThread returns a timer safe for concurrent measurement of one logical
// site from multiple goroutines: its observer is wrapped in the locking
// decorator. Single-goroutine sites should use New and skip the lock
// overhead.
func NewThread(name string, opts ...TimerOption) *Timer {
	t := New(name, opts...)
	t.obs = stats.NewLocked(t.obs)
	return t
}

// NewTask returns a timer measuring only the CPU-active time of the given
// task: its clock reads the tracker's per-task active time, so intervals
// during which the task is suspended (awaiting I/O or a timer) are excluded
// from every measurement.
func NewTask(name string, tracker *task.Tracker, id task.ID, opts ...TimerOption) *Timer {
	opts = append([]TimerOption{WithClock(tracker.ActiveClock(id))}, opts...)
	return New(name, opts...)
}

// Name returns the timer's name.
func (t *Timer) Name() string {
	return t.name
}

// Start begins one measurement and returns the StopFunc completing it:
//
//	defer tm.Start()()
//
// If the measured region panics before the StopFunc runs, no duration is
// recorded — a failed region does not pollute the statistics, and the panic
// propagates untouched.
func (t *Timer) Start() StopFunc {
	start := t.clock()
	return func() error {
		d := t.clock() - start
		err := t.obs.Record(d)
		if err != nil {
			t.mu.Lock()
			t.recordErr = err
			t.mu.Unlock()
		}
		return err
	}
}

// Measure runs fn under one measurement and returns any recording error.
// fn's own panics propagate without a duration being recorded.
func (t *Timer) Measure(fn func()) error {
	stop := t.Start()
	fn()
	return stop()
}

// Err returns the most recent recording failure, if any. Recording failures
// never interfere with the measured code; this is how they stay observable.
func (t *Timer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.recordErr
}

// Summary returns the observer's current snapshot.
func (t *Timer) Summary() (stats.Summary, error) {
	return t.obs.Summary()
}

// Reset clears measurements, starting a fresh reporting window.
func (t *Timer) Reset() {
	t.obs.Reset()
}

// Report writes the one-line summary to the timer's log sink. With zero
// observations nothing is written.
func (t *Timer) Report() {
	s, err := t.obs.Summary()
	if err != nil {
		return
	}
	t.logf(output.FormatReport(t.name, s))
}

// Close reports once and unregisters the timer. Safe to call multiple
// times; only the first call reports.
func (t *Timer) Close() {
	t.reportOnce.Do(t.Report)
	if t.registry != nil {
		t.registry.remove(t)
	}
}

// reportOnceOnly is the registry's drain hook: report without unregistering,
// at most once even if Close already reported.
func (t *Timer) reportOnceOnly() {
	t.reportOnce.Do(t.Report)
}
