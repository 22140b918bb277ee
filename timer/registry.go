package timer

import "sync"

// Registry tracks live timers so a process-level owner can drain them at a
// chosen point in teardown. Draining is explicit: there is no finalizer
// path, so reports appear exactly when Shutdown is called and in no other
// order.
type Registry struct {
	mu     sync.Mutex
	timers map[*Timer]struct{}
}

// DefaultRegistry receives timers created by New unless WithRegistry
// overrides it.
var DefaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{timers: make(map[*Timer]struct{})}
}

func (r *Registry) add(t *Timer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timers[t] = struct{}{}
}

func (r *Registry) remove(t *Timer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.timers, t)
}

// Len returns the number of registered timers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Shutdown reports every registered timer exactly once and empties the
// registry. Timers that already reported via Close are skipped.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	drained := make([]*Timer, 0, len(r.timers))
	for t := range r.timers {
		drained = append(drained, t)
	}
	r.timers = make(map[*Timer]struct{})
	r.mu.Unlock()

	for _, t := range drained {
		t.reportOnceOnly()
	}
}
