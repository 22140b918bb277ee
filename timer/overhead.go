package timer

import "time"

// overhead measurement batches; the minimum over repeats discards scheduler
// noise, as a benchmark harness would.
const (
	overheadBatch   = 10000
	overheadRepeats = 5
)

// MeasureOverhead measures the cost one timer observation adds to the
// measured code: it runs empty start/stop pairs against a timer from the
// given factory and returns the minimum observed per-measurement duration
// across several batches.
func MeasureOverhead(factory func() *Timer) time.Duration {
	best := time.Duration(1<<63 - 1)
	for r := 0; r < overheadRepeats; r++ {
		tm := factory()
		begin := time.Now()
		for i := 0; i < overheadBatch; i++ {
			tm.Start()()
		}
		per := time.Since(begin) / overheadBatch
		if per < best {
			best = per
		}
		tm.Close()
	}
	return best
}
