package stats

import (
	"math"
	"time"
)

// StdDevObserver tracks count, mean, standard deviation, and max using
// Welford's online algorithm, which is numerically stable over long-running
// accumulations (it avoids the catastrophic cancellation of the naive
// sum-of-squares formula).
//
// The reported standard deviation is the population estimator
// (sqrt(M2 / n)).
type StdDevObserver struct {
	count uint64
	mean  float64
	m2    float64
	max   float64
}

// NewStdDev returns an observer tracking count, mean, stddev, and max.
func NewStdDev() *StdDevObserver {
	return &StdDevObserver{}
}

// Record folds one duration into the running mean and variance.
func (o *StdDevObserver) Record(d time.Duration) error {
	if d < 0 {
		return ErrInvalidMeasurement
	}
	v := d.Seconds()
	o.count++
	delta := v - o.mean
	o.mean += delta / float64(o.count)
	o.m2 += delta * (v - o.mean)
	if v > o.max {
		o.max = v
	}
	return nil
}

// Summary returns the current count, mean, population stddev, and max.
func (o *StdDevObserver) Summary() (Summary, error) {
	if o.count == 0 {
		return Summary{}, ErrNoData
	}
	return Summary{
		Kind:   KindStdDev,
		Count:  o.count,
		Mean:   secondsToDuration(o.mean),
		StdDev: secondsToDuration(math.Sqrt(o.m2 / float64(o.count))),
		Max:    secondsToDuration(o.max),
	}, nil
}

// Reset restores the zero state.
func (o *StdDevObserver) Reset() {
	*o = StdDevObserver{}
}
