package stats

import (
	"errors"
	"time"
)

// Kind identifies an observer implementation.
type Kind string

const (
	// KindAverage tracks count, mean, and max only.
	KindAverage Kind = "average"

	// KindStdDev adds standard deviation (Welford's online algorithm).
	KindStdDev Kind = "stddev"

	// KindHistogram adds streaming quantile estimates (P² markers).
	KindHistogram Kind = "histogram"

	// KindHDR adds quantile estimates backed by an HDR histogram.
	KindHDR Kind = "hdr"
)

var (
	// ErrInvalidMeasurement is returned by Record when the duration is
	// negative. The running aggregate is left untouched.
	ErrInvalidMeasurement = errors.New("invalid measurement: duration must be non-negative")

	// ErrNoData is returned by Summary when no observations have been
	// recorded since construction or the last Reset.
	ErrNoData = errors.New("no data: zero observations recorded")
)

// Observer receives one duration per completed measurement and maintains a
// running summary in memory independent of the observation count.
type Observer interface {
	// Record folds one measured duration into the running state.
	// Negative durations are rejected with ErrInvalidMeasurement before
	// any state is touched; a rejected measurement never perturbs the
	// aggregate.
	Record(d time.Duration) error

	// Summary returns a snapshot of the running statistics. It does not
	// mutate state. With zero observations it returns ErrNoData rather
	// than a zero-filled (or NaN-filled) result.
	Summary() (Summary, error)

	// Reset restores the zero state, starting a fresh measurement window.
	Reset()
}

// Summary is a point-in-time snapshot of an observer's statistics.
//
// Mean, StdDev, and Max are meaningful only for the observer kinds that
// track them; Kind records which ones do. StdDev is the population standard
// deviation (divisor n, not n-1) — this choice is part of the reported
// numbers and is kept stable across releases.
type Summary struct {
	// Kind identifies the observer that produced this summary.
	Kind Kind `json:"kind"`

	// Count is the number of recorded observations.
	Count uint64 `json:"count"`

	// Mean is the arithmetic mean of all observations.
	Mean time.Duration `json:"mean"`

	// StdDev is the population standard deviation. Zero for KindAverage.
	StdDev time.Duration `json:"stdDev,omitempty"`

	// Max is the largest observation.
	Max time.Duration `json:"max"`

	// Quantiles holds one estimate per configured quantile, ascending.
	// Empty unless quantiles were requested at construction.
	Quantiles []QuantileValue `json:"quantiles,omitempty"`
}

// QuantileValue is one quantile estimate in a Summary.
type QuantileValue struct {
	// Q is the quantile fraction in [0, 1].
	Q float64 `json:"q"`

	// Value is the estimated duration at that quantile.
	Value time.Duration `json:"value"`
}

// validateQuantiles checks that quantiles are in [0, 1] and strictly
// increasing. Shared by the quantile-tracking observers.
func validateQuantiles(quantiles []float64) error {
	if len(quantiles) == 0 {
		return errors.New("at least one quantile is required")
	}
	for i, q := range quantiles {
		if q < 0 || q > 1 {
			return errors.New("quantile values must be in the range [0, 1]")
		}
		if i > 0 && quantiles[i-1] >= q {
			return errors.New("quantiles must be monotonically increasing")
		}
	}
	return nil
}
