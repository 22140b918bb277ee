package stats

import (
	"sync"
	"time"
)

// LockedObserver serializes access to a wrapped observer with a mutex. It is
// the opt-in thread-safety decorator: base observers stay lock-free, and
// callers measuring one logical site from multiple goroutines wrap it once.
type LockedObserver struct {
	mu    sync.Mutex
	inner Observer
}

// NewLocked wraps obs so that Record, Summary, and Reset are safe under
// concurrent invocation.
func NewLocked(obs Observer) *LockedObserver {
	return &LockedObserver{inner: obs}
}

// Record records under the lock.
func (o *LockedObserver) Record(d time.Duration) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inner.Record(d)
}

// Summary snapshots under the lock.
func (o *LockedObserver) Summary() (Summary, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.inner.Summary()
}

// Reset resets under the lock.
func (o *LockedObserver) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.inner.Reset()
}
