package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/belm0/perf-timer/internal/output"
	"github.com/belm0/perf-timer/stats"
	"github.com/belm0/perf-timer/timer"
)

var overheadCmd = &cobra.Command{
	Use:   "overhead",
	Short: "Measure per-observation overhead of each observer kind",
	Long: `Overhead runs empty measurements against each observer kind and prints
the cost one observation adds to the measured code. Expect the scalar
observers to cost fractions of a microsecond and the quantile estimators
single-digit microseconds.`,
	RunE: runOverhead,
}

func runOverhead(cmd *cobra.Command, args []string) error {
	discard := func(string) {}

	kinds := []struct {
		name    string
		factory func() stats.Observer
	}{
		{"average", func() stats.Observer { return stats.NewAverage() }},
		{"stddev", func() stats.Observer { return stats.NewStdDev() }},
		{"histogram", func() stats.Observer {
			obs, err := stats.NewHistogram([]float64{0.5, 0.9, 0.98})
			if err != nil {
				panic(err)
			}
			return obs
		}},
		{"hdr", func() stats.Observer {
			obs, err := stats.NewHDR([]float64{0.5, 0.9, 0.98})
			if err != nil {
				panic(err)
			}
			return obs
		}},
	}

	for _, kind := range kinds {
		factory := kind.factory
		per := timer.MeasureOverhead(func() *timer.Timer {
			return timer.New("overhead",
				timer.WithObserver(factory()),
				timer.WithRegistry(nil),
				timer.WithLogFunc(discard),
			)
		})
		fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s per observation\n",
			kind.name, output.FormatDuration(per))
	}
	return nil
}
