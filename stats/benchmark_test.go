package stats

import (
	"testing"
	"time"
)

func BenchmarkAverageObserver_Record(b *testing.B) {
	obs := NewAverage()
	for i := 0; i < b.N; i++ {
		obs.Record(time.Microsecond)
	}
}

func BenchmarkStdDevObserver_Record(b *testing.B) {
	obs := NewStdDev()
	for i := 0; i < b.N; i++ {
		obs.Record(time.Microsecond)
	}
}

func BenchmarkHistogramObserver_Record(b *testing.B) {
	obs, err := NewHistogram([]float64{0.5, 0.9, 0.98})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obs.Record(time.Duration(i%1000) * time.Microsecond)
	}
}

func BenchmarkHDRObserver_Record(b *testing.B) {
	obs, err := NewHDR([]float64{0.5, 0.9, 0.98})
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		obs.Record(time.Duration(i%1000) * time.Microsecond)
	}
}

func BenchmarkLockedObserver_Record(b *testing.B) {
	obs := NewLocked(NewStdDev())
	for i := 0; i < b.N; i++ {
		obs.Record(time.Microsecond)
	}
}
