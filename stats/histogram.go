package stats

import (
	"fmt"
	"time"
)

// DefaultMarkers is the marker count per tracked quantile when no explicit
// precision knob is given. Five markers is the classic P² configuration.
const DefaultMarkers = 5

// HistogramObserver estimates configured quantiles of the duration stream in
// memory proportional to the number of tracked quantiles, never to the
// observation count. Each quantile gets an independent P² marker set; all
// sets share the observation count. Mean, stddev, and max are tracked
// alongside via Welford's algorithm, so Summary is a superset of
// StdDevObserver's.
//
// Per-observation cost is O(markers) per tracked quantile — single-digit
// microseconds, higher than the scalar observers but still hot-path safe.
type HistogramObserver struct {
	quantiles  []float64
	estimators []*p2Estimator
	scalar     StdDevObserver
}

// HistogramOption configures a HistogramObserver.
type HistogramOption func(*histogramConfig)

type histogramConfig struct {
	markers int
}

// WithMarkers sets the marker count per tracked quantile. More markers give
// better accuracy at higher per-observation cost. The count must be odd and
// at least 5.
func WithMarkers(n int) HistogramOption {
	return func(c *histogramConfig) {
		c.markers = n
	}
}

// NewHistogram returns an observer estimating the given quantiles. Quantiles
// must be in [0, 1] and strictly increasing; they are never implied — an
// empty list is an error.
func NewHistogram(quantiles []float64, opts ...HistogramOption) (*HistogramObserver, error) {
	if err := validateQuantiles(quantiles); err != nil {
		return nil, err
	}
	cfg := histogramConfig{markers: DefaultMarkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.markers < 5 || cfg.markers%2 == 0 {
		return nil, fmt.Errorf("marker count must be odd and >= 5, got %d", cfg.markers)
	}

	o := &HistogramObserver{
		quantiles:  append([]float64(nil), quantiles...),
		estimators: make([]*p2Estimator, len(quantiles)),
	}
	for i, q := range quantiles {
		o.estimators[i] = newP2Estimator(q, cfg.markers)
	}
	return o, nil
}

// Record folds one duration into every marker set and the scalar state.
func (o *HistogramObserver) Record(d time.Duration) error {
	if err := o.scalar.Record(d); err != nil {
		return err
	}
	v := d.Seconds()
	for _, e := range o.estimators {
		e.feed(v)
	}
	return nil
}

// Summary returns count, mean, stddev, max, and one estimate per configured
// quantile. Estimates are clamped so that a higher quantile never reports a
// smaller value than a lower one.
func (o *HistogramObserver) Summary() (Summary, error) {
	s, err := o.scalar.Summary()
	if err != nil {
		return Summary{}, err
	}
	s.Kind = KindHistogram
	s.Quantiles = make([]QuantileValue, len(o.quantiles))
	prev := 0.0
	for i, e := range o.estimators {
		v := e.estimate()
		if i > 0 && v < prev {
			v = prev
		}
		prev = v
		s.Quantiles[i] = QuantileValue{Q: o.quantiles[i], Value: secondsToDuration(v)}
	}
	return s, nil
}

// Reset restores the zero state keeping the quantile configuration.
func (o *HistogramObserver) Reset() {
	o.scalar.Reset()
	for _, e := range o.estimators {
		e.reset()
	}
}
