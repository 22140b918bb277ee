package stats

import (
	"math"
	"testing"
	"time"

	"pgregory.net/rapid"
)

// TestProperty_MeanMatchesArithmeticMean verifies that for any sequence of
// non-negative durations the observer's count equals the number of Record
// calls and the mean equals the arithmetic mean within floating-point
// tolerance.
func TestProperty_MeanMatchesArithmeticMean(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		obs := NewStdDev()

		micros := rapid.SliceOfN(rapid.Int64Range(0, 10_000_000), 1, 200).Draw(rt, "micros")
		var sum float64
		for _, us := range micros {
			d := time.Duration(us) * time.Microsecond
			if err := obs.Record(d); err != nil {
				rt.Fatalf("Record failed: %v", err)
			}
			sum += d.Seconds()
		}

		s, err := obs.Summary()
		if err != nil {
			rt.Fatalf("Summary failed: %v", err)
		}
		if s.Count != uint64(len(micros)) {
			rt.Fatalf("Count = %d, want %d", s.Count, len(micros))
		}

		want := sum / float64(len(micros))
		if got := s.Mean.Seconds(); math.Abs(got-want) > 1e-9+want*1e-9 {
			rt.Fatalf("Mean = %g, want %g", got, want)
		}
	})
}

// TestProperty_QuantileMonotonicity verifies that for any configured
// quantiles q1 < q2 the estimate at q1 never exceeds the estimate at q2,
// for any input sequence at least as long as the marker count.
func TestProperty_QuantileMonotonicity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		q1 := rapid.Float64Range(0.01, 0.5).Draw(rt, "q1")
		q2 := rapid.Float64Range(q1+0.01, 0.99).Draw(rt, "q2")

		obs, err := NewHistogram([]float64{q1, q2})
		if err != nil {
			rt.Fatalf("NewHistogram failed: %v", err)
		}

		micros := rapid.SliceOfN(rapid.Int64Range(0, 1_000_000), DefaultMarkers, 500).Draw(rt, "micros")
		for _, us := range micros {
			if err := obs.Record(time.Duration(us) * time.Microsecond); err != nil {
				rt.Fatalf("Record failed: %v", err)
			}
		}

		s, err := obs.Summary()
		if err != nil {
			rt.Fatalf("Summary failed: %v", err)
		}
		if s.Quantiles[0].Value > s.Quantiles[1].Value {
			rt.Fatalf("estimate(%g) = %v > estimate(%g) = %v",
				q1, s.Quantiles[0].Value, q2, s.Quantiles[1].Value)
		}
	})
}

// TestProperty_MaxNeverBelowAnyObservation verifies the reported max is an
// upper bound of the recorded stream.
func TestProperty_MaxNeverBelowAnyObservation(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		obs := NewStdDev()

		micros := rapid.SliceOfN(rapid.Int64Range(0, 10_000_000), 1, 200).Draw(rt, "micros")
		var max int64
		for _, us := range micros {
			obs.Record(time.Duration(us) * time.Microsecond)
			if us > max {
				max = us
			}
		}

		s, err := obs.Summary()
		if err != nil {
			rt.Fatalf("Summary failed: %v", err)
		}
		want := time.Duration(max) * time.Microsecond
		if diff := s.Max - want; diff < -time.Nanosecond || diff > time.Nanosecond {
			rt.Fatalf("Max = %v, want %v", s.Max, want)
		}
	})
}
