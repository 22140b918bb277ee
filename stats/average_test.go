package stats

import (
	"errors"
	"testing"
	"time"
)

func TestAverageObserver(t *testing.T) {
	obs := NewAverage()

	for _, d := range []time.Duration{time.Second, 3 * time.Second} {
		if err := obs.Record(d); err != nil {
			t.Fatalf("Record(%v) returned error: %v", d, err)
		}
	}

	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.Kind != KindAverage {
		t.Errorf("Kind = %q, want %q", s.Kind, KindAverage)
	}
	if s.Count != 2 {
		t.Errorf("Count = %d, want 2", s.Count)
	}
	if s.Mean != 2*time.Second {
		t.Errorf("Mean = %v, want 2s", s.Mean)
	}
	if s.Max != 3*time.Second {
		t.Errorf("Max = %v, want 3s", s.Max)
	}
}

func TestAverageObserver_NoData(t *testing.T) {
	obs := NewAverage()

	if _, err := obs.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("Summary() error = %v, want ErrNoData", err)
	}
}

func TestAverageObserver_RejectsNegative(t *testing.T) {
	obs := NewAverage()

	if err := obs.Record(-time.Second); !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("Record(-1s) error = %v, want ErrInvalidMeasurement", err)
	}
	if _, err := obs.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("rejected measurement must not change count: Summary() error = %v, want ErrNoData", err)
	}
}

func TestAverageObserver_Reset(t *testing.T) {
	obs := NewAverage()

	obs.Record(time.Second)
	obs.Reset()

	if _, err := obs.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("Summary() after Reset error = %v, want ErrNoData", err)
	}
}
