package stats

import "time"

// AverageObserver tracks count, mean, and max in O(1) time and memory per
// observation. It is the lowest-overhead observer kind.
type AverageObserver struct {
	count uint64
	sum   float64
	max   float64
}

// NewAverage returns an observer tracking count, mean, and max.
func NewAverage() *AverageObserver {
	return &AverageObserver{}
}

// Record folds one duration into the running sum and max.
func (o *AverageObserver) Record(d time.Duration) error {
	if d < 0 {
		return ErrInvalidMeasurement
	}
	v := d.Seconds()
	o.count++
	o.sum += v
	if v > o.max {
		o.max = v
	}
	return nil
}

// Summary returns the current count, mean, and max.
func (o *AverageObserver) Summary() (Summary, error) {
	if o.count == 0 {
		return Summary{}, ErrNoData
	}
	return Summary{
		Kind:  KindAverage,
		Count: o.count,
		Mean:  secondsToDuration(o.sum / float64(o.count)),
		Max:   secondsToDuration(o.max),
	}, nil
}

// Reset restores the zero state.
func (o *AverageObserver) Reset() {
	*o = AverageObserver{}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
