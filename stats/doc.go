// Package stats provides bounded-memory streaming observers for duration
// measurements.
//
// An Observer ingests one duration per completed measurement and maintains a
// running statistical summary in constant memory. Four observer kinds are
// provided, forming a closed set selected at construction:
//
//   - AverageObserver: running count, mean, and max (O(1) per observation)
//   - StdDevObserver: adds standard deviation via Welford's online algorithm
//   - HistogramObserver: adds streaming quantile estimates using a fixed set
//     of adaptive markers (the P² algorithm)
//   - HDRObserver: quantiles via HDR histogram at fixed value precision
//
// # Thread Safety
//
// Base observers are NOT safe for concurrent use and carry no locking
// overhead. For concurrent recording from multiple goroutines, wrap any
// observer with NewLocked.
package stats
