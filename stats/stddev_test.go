package stats

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestStdDevObserver(t *testing.T) {
	obs := NewStdDev()

	// 1..5 seconds: mean 3, population stddev sqrt(2), max 5.
	for i := 1; i <= 5; i++ {
		if err := obs.Record(time.Duration(i) * time.Second); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.Kind != KindStdDev {
		t.Errorf("Kind = %q, want %q", s.Kind, KindStdDev)
	}
	if s.Count != 5 {
		t.Errorf("Count = %d, want 5", s.Count)
	}
	if got := s.Mean.Seconds(); math.Abs(got-3.0) > 1e-9 {
		t.Errorf("Mean = %g s, want 3.0 s", got)
	}
	if got := s.StdDev.Seconds(); math.Abs(got-1.4142) > 1e-3 {
		t.Errorf("StdDev = %g s, want ~1.4142 s (population)", got)
	}
	if got := s.Max.Seconds(); got != 5.0 {
		t.Errorf("Max = %g s, want 5.0 s", got)
	}
}

func TestStdDevObserver_CountMatchesRecords(t *testing.T) {
	obs := NewStdDev()

	const n = 137
	for i := 0; i < n; i++ {
		obs.Record(time.Duration(i) * time.Millisecond)
	}

	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.Count != n {
		t.Errorf("Count = %d, want %d", s.Count, n)
	}
}

func TestStdDevObserver_RejectsNegative(t *testing.T) {
	obs := NewStdDev()

	obs.Record(time.Second)
	if err := obs.Record(-time.Second); !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("Record(-1s) error = %v, want ErrInvalidMeasurement", err)
	}

	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.Count != 1 {
		t.Errorf("Count after rejected measurement = %d, want 1", s.Count)
	}
	if s.Mean != time.Second {
		t.Errorf("Mean after rejected measurement = %v, want 1s", s.Mean)
	}
}

func TestStdDevObserver_Reset(t *testing.T) {
	obs := NewStdDev()

	for i := 0; i < 10; i++ {
		obs.Record(time.Millisecond)
	}
	obs.Reset()

	if _, err := obs.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("Summary() after Reset error = %v, want ErrNoData", err)
	}

	// The observer remains usable after a reset.
	obs.Record(2 * time.Second)
	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.Count != 1 || s.Mean != 2*time.Second {
		t.Errorf("after Reset: Count = %d, Mean = %v, want 1 and 2s", s.Count, s.Mean)
	}
}

func TestStdDevObserver_SingleObservation(t *testing.T) {
	obs := NewStdDev()

	obs.Record(time.Second)
	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.StdDev != 0 {
		t.Errorf("StdDev of one observation = %v, want 0", s.StdDev)
	}
}
