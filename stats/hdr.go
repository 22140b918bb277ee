package stats

import (
	"fmt"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// HDR histogram value range: 1 microsecond to 1 hour.
const (
	hdrMinMicros = 1
	hdrMaxMicros = 3600000000
)

// HDRObserver estimates quantiles using an HDR histogram: fixed value
// precision (significant figures) rather than adaptive markers. Memory is
// bounded by the configured precision and value range, independent of the
// observation count. Compared to HistogramObserver it spends more memory for
// deterministic per-bucket accuracy.
//
// Durations are recorded at microsecond resolution, clamped to the range
// 1µs..1h.
type HDRObserver struct {
	quantiles []float64
	hist      *hdrhistogram.Histogram
	sigfigs   int
}

// HDROption configures an HDRObserver.
type HDROption func(*hdrConfig)

type hdrConfig struct {
	sigfigs int
}

// WithSignificantFigures sets the histogram's value precision (1 to 5
// significant figures, default 3).
func WithSignificantFigures(n int) HDROption {
	return func(c *hdrConfig) {
		c.sigfigs = n
	}
}

// NewHDR returns an observer estimating the given quantiles with an HDR
// histogram. Quantiles must be in [0, 1] and strictly increasing.
func NewHDR(quantiles []float64, opts ...HDROption) (*HDRObserver, error) {
	if err := validateQuantiles(quantiles); err != nil {
		return nil, err
	}
	cfg := hdrConfig{sigfigs: 3}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sigfigs < 1 || cfg.sigfigs > 5 {
		return nil, fmt.Errorf("significant figures must be 1..5, got %d", cfg.sigfigs)
	}
	return &HDRObserver{
		quantiles: append([]float64(nil), quantiles...),
		hist:      hdrhistogram.New(hdrMinMicros, hdrMaxMicros, cfg.sigfigs),
		sigfigs:   cfg.sigfigs,
	}, nil
}

// Record folds one duration into the histogram.
func (o *HDRObserver) Record(d time.Duration) error {
	if d < 0 {
		return ErrInvalidMeasurement
	}
	micros := d.Microseconds()
	if micros < hdrMinMicros {
		micros = hdrMinMicros
	}
	if micros > hdrMaxMicros {
		micros = hdrMaxMicros
	}
	return o.hist.RecordValue(micros)
}

// Summary returns count, mean, stddev, max, and one estimate per configured
// quantile.
func (o *HDRObserver) Summary() (Summary, error) {
	if o.hist.TotalCount() == 0 {
		return Summary{}, ErrNoData
	}
	s := Summary{
		Kind:   KindHDR,
		Count:  uint64(o.hist.TotalCount()),
		Mean:   time.Duration(o.hist.Mean()) * time.Microsecond,
		StdDev: time.Duration(o.hist.StdDev()) * time.Microsecond,
		Max:    time.Duration(o.hist.Max()) * time.Microsecond,
	}
	s.Quantiles = make([]QuantileValue, len(o.quantiles))
	for i, q := range o.quantiles {
		s.Quantiles[i] = QuantileValue{
			Q:     q,
			Value: time.Duration(o.hist.ValueAtQuantile(q*100)) * time.Microsecond,
		}
	}
	return s, nil
}

// Reset restores the zero state keeping the quantile configuration.
func (o *HDRObserver) Reset() {
	o.hist.Reset()
}
