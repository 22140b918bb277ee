package timer

import "time"

// Clock returns a monotonic reading; only differences between consecutive
// readings are meaningful. Timers subtract two readings per measurement.
type Clock func() time.Duration

var epoch = time.Now()

// WallClock is the default clock: monotonic wall time.
func WallClock() time.Duration {
	return time.Since(epoch)
}
