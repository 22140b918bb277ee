package stats

import (
	"errors"
	"testing"
	"time"
)

func TestHDRObserver(t *testing.T) {
	obs, err := NewHDR([]float64{0.5, 0.9})
	if err != nil {
		t.Fatal(err)
	}

	// 10..100 ms in 10 ms steps.
	for i := 1; i <= 10; i++ {
		if err := obs.Record(time.Duration(i) * 10 * time.Millisecond); err != nil {
			t.Fatalf("Record returned error: %v", err)
		}
	}

	s, err := obs.Summary()
	if err != nil {
		t.Fatalf("Summary() returned error: %v", err)
	}
	if s.Kind != KindHDR {
		t.Errorf("Kind = %q, want %q", s.Kind, KindHDR)
	}
	if s.Count != 10 {
		t.Errorf("Count = %d, want 10", s.Count)
	}

	// HDR histogram binning gives ~0.1% precision at 3 sig figs.
	p50 := s.Quantiles[0].Value
	if p50 < 40*time.Millisecond || p50 > 60*time.Millisecond {
		t.Errorf("P50 = %v, want ~50ms (±10ms)", p50)
	}
	if s.Max < 99*time.Millisecond || s.Max > 101*time.Millisecond {
		t.Errorf("Max = %v, want ~100ms", s.Max)
	}
}

func TestHDRObserver_Validation(t *testing.T) {
	if _, err := NewHDR(nil); err == nil {
		t.Error("NewHDR(nil) succeeded, want error")
	}
	if _, err := NewHDR([]float64{0.9, 0.5}); err == nil {
		t.Error("NewHDR with non-increasing quantiles succeeded, want error")
	}
	if _, err := NewHDR([]float64{0.5}, WithSignificantFigures(9)); err == nil {
		t.Error("NewHDR with 9 significant figures succeeded, want error")
	}
}

func TestHDRObserver_RejectsNegative(t *testing.T) {
	obs, err := NewHDR([]float64{0.5})
	if err != nil {
		t.Fatal(err)
	}

	if err := obs.Record(-time.Millisecond); !errors.Is(err, ErrInvalidMeasurement) {
		t.Errorf("Record(-1ms) error = %v, want ErrInvalidMeasurement", err)
	}
	if _, err := obs.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("Summary() error = %v, want ErrNoData", err)
	}
}

func TestHDRObserver_Reset(t *testing.T) {
	obs, err := NewHDR([]float64{0.5})
	if err != nil {
		t.Fatal(err)
	}

	obs.Record(time.Millisecond)
	obs.Reset()

	if _, err := obs.Summary(); !errors.Is(err, ErrNoData) {
		t.Errorf("Summary() after Reset error = %v, want ErrNoData", err)
	}
}
