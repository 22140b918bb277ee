// Package output renders observer summaries for humans and machines: human
// duration formatting with automatic unit selection, one-line timer reports,
// optional ANSI coloring with TTY detection, and JSON output with field
// extraction.
//
// The statistics core never depends on this package; it is the reporting
// collaborator layered on top of read-only summaries.
package output
